package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-erp-service/internal/config"
	"github.com/spec-kit/employee-erp-service/internal/domain"
	"github.com/spec-kit/employee-erp-service/internal/repository"
	"github.com/spec-kit/employee-erp-service/pkg/util"
)

// In-memory repository fakes mirroring the store contract the SQL layer
// provides: surrogate ids, unique lookups returning pgx.ErrNoRows, and the
// delete cascade from employees to their attendance records.

type fakeAttendanceRepo struct {
	byID map[int64]domain.Attendance
	seq  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{byID: map[int64]domain.Attendance{}}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record *domain.Attendance) error {
	f.seq++
	record.ID = f.seq
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	f.byID[record.ID] = *record
	return nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, record *domain.Attendance) error {
	if _, ok := f.byID[record.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[record.ID] = *record
	return nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id int64) (*domain.Attendance, error) {
	record, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := record
	return &out, nil
}

func (f *fakeAttendanceRepo) ExistsForDay(_ context.Context, employeeID int64, day time.Time) (bool, error) {
	for _, record := range f.byID {
		if record.EmployeeID == employeeID && record.Date.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter repository.AttendanceFilter) ([]domain.Attendance, error) {
	var result []domain.Attendance
	for _, record := range f.byID {
		if filter.EmployeeID != nil && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && !record.Date.Equal(*filter.Date) {
			continue
		}
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

type fakeEmployeeRepo struct {
	byID       map[int64]domain.Employee
	seq        int64
	attendance *fakeAttendanceRepo
}

func newFakeEmployeeRepo(attendance *fakeAttendanceRepo) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[int64]domain.Employee{}, attendance: attendance}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	f.seq++
	emp.ID = f.seq
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	f.byID[emp.ID] = *emp
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	if _, ok := f.byID[emp.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[emp.ID] = *emp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := emp
	out.Department = nil
	return &out, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, emp := range f.byID {
		if emp.Email == email {
			out := emp
			out.Department = nil
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	var result []domain.Employee
	for _, emp := range f.byID {
		if filter.IsActive != nil && emp.IsActive != *filter.IsActive {
			continue
		}
		if filter.DepartmentID != nil && (emp.DepartmentID == nil || *emp.DepartmentID != *filter.DepartmentID) {
			continue
		}
		result = append(result, emp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	if f.attendance != nil {
		for recordID, record := range f.attendance.byID {
			if record.EmployeeID == id {
				delete(f.attendance.byID, recordID)
			}
		}
	}
	return nil
}

type fakeDepartmentRepo struct {
	byID      map[int64]domain.Department
	seq       int64
	employees *fakeEmployeeRepo
}

func newFakeDepartmentRepo(employees *fakeEmployeeRepo) *fakeDepartmentRepo {
	return &fakeDepartmentRepo{byID: map[int64]domain.Department{}, employees: employees}
}

func (f *fakeDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	f.seq++
	dept.ID = f.seq
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt
	f.byID[dept.ID] = *dept
	return nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	dept, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := dept
	return &out, nil
}

func (f *fakeDepartmentRepo) GetByName(_ context.Context, name string) (*domain.Department, error) {
	for _, dept := range f.byID {
		if dept.Name == name {
			out := dept
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	var result []domain.Department
	for _, dept := range f.byID {
		result = append(result, dept)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id int64, policy config.DepartmentDeletePolicy) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	var assigned []int64
	for _, emp := range f.employees.byID {
		if emp.DepartmentID != nil && *emp.DepartmentID == id {
			assigned = append(assigned, emp.ID)
		}
	}
	switch policy {
	case config.DeletePolicyBlock:
		if len(assigned) > 0 {
			return repository.ErrDepartmentInUse
		}
	case config.DeletePolicyDetach:
		for _, empID := range assigned {
			emp := f.employees.byID[empID]
			emp.DepartmentID = nil
			f.employees.byID[empID] = emp
		}
	case config.DeletePolicyCascade:
		for _, empID := range assigned {
			if err := f.employees.Delete(ctx, empID); err != nil {
				return err
			}
		}
	}
	delete(f.byID, id)
	return nil
}

// newFakeStores wires the three fakes together the way the schema relates
// the tables.
func newFakeStores() (*fakeDepartmentRepo, *fakeEmployeeRepo, *fakeAttendanceRepo) {
	attendance := newFakeAttendanceRepo()
	employees := newFakeEmployeeRepo(attendance)
	departments := newFakeDepartmentRepo(employees)
	return departments, employees, attendance
}

func requireDomainErr(t *testing.T, err error, code string) *util.DomainError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var domainErr *util.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T: %v", err, err)
	}
	if domainErr.Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, domainErr.Code, domainErr)
	}
	return domainErr
}

func ptr[T any](v T) *T {
	return &v
}
