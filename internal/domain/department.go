package domain

import "time"

// Department represents a high-level organizational unit.
type Department struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
