package dto

import (
	"time"

	"github.com/spec-kit/employee-erp-service/internal/domain"
)

// CheckInRequest payload. The calendar date is derived server-side from the
// check-in timestamp, never supplied by clients.
type CheckInRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required"`
	CheckIn    string `json:"check_in" validate:"required"`
}

// CheckOutRequest payload.
type CheckOutRequest struct {
	CheckOut string `json:"check_out" validate:"required"`
}

// AttendanceResponse payload.
type AttendanceResponse struct {
	ID         int64                   `json:"id"`
	EmployeeID int64                   `json:"employee_id"`
	Date       string                  `json:"date"`
	CheckIn    time.Time               `json:"check_in"`
	CheckOut   *time.Time              `json:"check_out"`
	TotalHours *float64                `json:"total_hours"`
	Status     domain.AttendanceStatus `json:"status"`
}

// NewAttendanceResponse maps a domain attendance record.
func NewAttendanceResponse(record *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date.Format(time.DateOnly),
		CheckIn:    record.CheckIn,
		CheckOut:   record.CheckOut,
		TotalHours: record.TotalHours,
		Status:     record.Status(),
	}
}
