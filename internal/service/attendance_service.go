package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-erp-service/internal/domain"
	"github.com/spec-kit/employee-erp-service/internal/events"
	"github.com/spec-kit/employee-erp-service/internal/repository"
	apperrors "github.com/spec-kit/employee-erp-service/pkg/util"
)

// AttendanceService coordinates daily check-in/check-out workflows.
type AttendanceService struct {
	attendance repository.AttendanceRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// AttendanceDependencies bundles repositories for the attendance service.
type AttendanceDependencies struct {
	AttendanceRepo repository.AttendanceRepository
	EmployeeRepo   repository.EmployeeRepository
	Dispatcher     events.Dispatcher
}

// AttendanceListFilters define listing parameters.
type AttendanceListFilters struct {
	EmployeeID *int64
	Date       *time.Time
}

// NewAttendanceService constructs the service.
func NewAttendanceService(deps AttendanceDependencies) *AttendanceService {
	return &AttendanceService{
		attendance: deps.AttendanceRepo,
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// CheckIn opens an attendance record for the calendar day derived from the
// check-in timestamp. One record per employee per day, OPEN or CLOSED alike;
// the unique (employee_id, work_date) constraint backs the existence check.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID int64, checkIn time.Time) (*domain.Attendance, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"employee_id": employeeID})
		}
		return nil, apperrors.MapError(err)
	}

	day := domain.DayOf(checkIn)
	exists, err := s.attendance.ExistsForDay(ctx, employeeID, day)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if exists {
		return nil, apperrors.NewDuplicate("attendance already recorded for this day", map[string]any{
			"employee_id": employeeID,
			"date":        day.Format(time.DateOnly),
		})
	}

	record := &domain.Attendance{
		EmployeeID: employeeID,
		Date:       day,
		CheckIn:    checkIn,
	}
	if err := s.attendance.Create(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventAttendanceCheckedIn,
		EntityID: record.ID,
		Payload: events.AttendanceCheckedInPayload{
			EmployeeID: record.EmployeeID,
			Date:       record.Date,
		},
	})
	return record, nil
}

// CheckOut closes an OPEN record and computes total hours. CLOSED is
// terminal; a second checkout is rejected without touching the store.
// Check-out equal to check-in is allowed (zero hours), earlier is not.
func (s *AttendanceService) CheckOut(ctx context.Context, attendanceID int64, checkOut time.Time) (*domain.Attendance, error) {
	record, err := s.attendance.GetByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("attendance record", map[string]any{"attendance_id": attendanceID})
		}
		return nil, apperrors.MapError(err)
	}
	if record.CheckOut != nil {
		return nil, apperrors.NewInvalidState("attendance record is already checked out", map[string]any{"attendance_id": attendanceID})
	}
	if checkOut.Before(record.CheckIn) {
		return nil, apperrors.NewInvalidOrder("check-out cannot be earlier than check-in", map[string]any{
			"check_in":  record.CheckIn,
			"check_out": checkOut,
		})
	}

	hours := RoundHours(checkOut.Sub(record.CheckIn))
	record.CheckOut = &checkOut
	record.TotalHours = &hours
	if err := s.attendance.Update(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventAttendanceCheckedOut,
		EntityID: record.ID,
		Payload: events.AttendanceCheckedOutPayload{
			EmployeeID: record.EmployeeID,
			TotalHours: hours,
		},
	})
	return record, nil
}

// List returns attendance records ordered most recent day first.
func (s *AttendanceService) List(ctx context.Context, filters AttendanceListFilters) ([]domain.Attendance, error) {
	var day *time.Time
	if filters.Date != nil {
		d := domain.DayOf(*filters.Date)
		day = &d
	}
	records, err := s.attendance.List(ctx, repository.AttendanceFilter{
		EmployeeID: filters.EmployeeID,
		Date:       day,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// RoundHours converts a worked duration to hours rounded half away from
// zero to two decimals.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Seconds()/3600*100) / 100
}

func (s *AttendanceService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
