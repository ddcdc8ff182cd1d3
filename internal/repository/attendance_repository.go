package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-erp-service/internal/domain"
)

// AttendanceFilter defines query params for attendance listing.
type AttendanceFilter struct {
	EmployeeID *int64
	Date       *time.Time
}

// AttendanceRepository handles persistence for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, record *domain.Attendance) error
	Update(ctx context.Context, record *domain.Attendance) error
	GetByID(ctx context.Context, id int64) (*domain.Attendance, error)
	ExistsForDay(ctx context.Context, employeeID int64, day time.Time) (bool, error)
	List(ctx context.Context, filter AttendanceFilter) ([]domain.Attendance, error)
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository instantiates the repository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

func (r *attendanceRepository) Create(ctx context.Context, record *domain.Attendance) error {
	const query = `
        INSERT INTO attendance_records (employee_id, work_date, check_in, check_out, total_hours)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.TotalHours,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func (r *attendanceRepository) Update(ctx context.Context, record *domain.Attendance) error {
	const query = `
        UPDATE attendance_records
        SET check_out=$1, total_hours=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		record.CheckOut,
		record.TotalHours,
		record.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (*domain.Attendance, error) {
	const query = `
        SELECT id, employee_id, work_date, check_in, check_out, total_hours, created_at, updated_at
        FROM attendance_records WHERE id=$1`

	var record domain.Attendance
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.EmployeeID,
		&record.Date,
		&record.CheckIn,
		&record.CheckOut,
		&record.TotalHours,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) ExistsForDay(ctx context.Context, employeeID int64, day time.Time) (bool, error) {
	const query = `
        SELECT EXISTS (SELECT 1 FROM attendance_records WHERE employee_id=$1 AND work_date=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, employeeID, day).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]domain.Attendance, error) {
	base := `SELECT id, employee_id, work_date, check_in, check_out, total_hours, created_at, updated_at
             FROM attendance_records`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("employee_id=$%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		clauses = append(clauses, fmt.Sprintf("work_date=$%d", len(args)))
	}

	// id DESC is the documented tie-break among same-day records
	query := fmt.Sprintf(`%s WHERE %s ORDER BY work_date DESC, id DESC`, base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttendance(rows)
}

func scanAttendance(rows pgx.Rows) ([]domain.Attendance, error) {
	var result []domain.Attendance
	for rows.Next() {
		var record domain.Attendance
		if err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.CheckIn,
			&record.CheckOut,
			&record.TotalHours,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
