package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated      EventType = "employee_created"
	EventEmployeeDeleted      EventType = "employee_deleted"
	EventAttendanceCheckedIn  EventType = "attendance_checked_in"
	EventAttendanceCheckedOut EventType = "attendance_checked_out"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  int64       `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	Email        string `json:"email"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	Email string `json:"email"`
}

// AttendanceCheckedInPayload payload.
type AttendanceCheckedInPayload struct {
	EmployeeID int64     `json:"employee_id"`
	Date       time.Time `json:"date"`
}

// AttendanceCheckedOutPayload payload.
type AttendanceCheckedOutPayload struct {
	EmployeeID int64   `json:"employee_id"`
	TotalHours float64 `json:"total_hours"`
}
