package domain

import "time"

// Employee models a member of the organization. DepartmentID is nullable;
// an employee may be unassigned. Department is resolved lazily by services
// for read responses and is never persisted from here.
type Employee struct {
	ID           int64
	FullName     string
	Email        string
	Phone        *string
	Role         *string
	Salary       *float64
	IsActive     bool
	DateJoined   time.Time
	DepartmentID *int64
	Department   *Department
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
