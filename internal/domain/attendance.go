package domain

import "time"

// AttendanceStatus enumerates lifecycle states for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusOpen   AttendanceStatus = "OPEN"
	AttendanceStatusClosed AttendanceStatus = "CLOSED"
)

// Attendance is one employee's work session for a single calendar day.
// Date is derived from CheckIn, never supplied by clients. A record is
// OPEN until CheckOut is recorded, after which it is CLOSED for good.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	TotalHours *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Status reports the lifecycle state of the record.
func (a *Attendance) Status() AttendanceStatus {
	if a.CheckOut != nil {
		return AttendanceStatusClosed
	}
	return AttendanceStatusOpen
}

// DayOf truncates a timestamp to its calendar date component, keeping the
// original location so day boundaries follow the check-in's own clock.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
