package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-erp-service/internal/domain"
	"github.com/spec-kit/employee-erp-service/internal/events"
	"github.com/spec-kit/employee-erp-service/internal/repository"
	"github.com/spec-kit/employee-erp-service/pkg/util"
)

// EmployeeService manages employee records.
type EmployeeService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
	now         func() time.Time
}

// EmployeeDependencies bundles repositories for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo   repository.EmployeeRepository
	DepartmentRepo repository.DepartmentRepository
	Dispatcher     events.Dispatcher
}

// EmployeeCreateInput describes employee creation payload.
type EmployeeCreateInput struct {
	FullName     string
	Email        string
	Phone        *string
	Role         *string
	Salary       *float64
	IsActive     *bool
	DateJoined   *time.Time
	DepartmentID *int64
}

// EmployeeUpdateInput carries partial-update fields. Only fields with
// Set=true are applied; pointer-typed values distinguish an explicit null
// (clear) from an omitted field (leave untouched).
type EmployeeUpdateInput struct {
	FullName     util.Optional[string]
	Email        util.Optional[string]
	Phone        util.Optional[*string]
	Role         util.Optional[*string]
	Salary       util.Optional[*float64]
	IsActive     util.Optional[bool]
	DepartmentID util.Optional[*int64]
}

// EmployeeListFilters define listing parameters.
type EmployeeListFilters struct {
	IsActive     *bool
	DepartmentID *int64
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees:   deps.EmployeeRepo,
		departments: deps.DepartmentRepo,
		dispatcher:  deps.Dispatcher,
		now:         time.Now,
	}
}

// Create persists a new employee. The email must be unused and the
// department, when given, must exist. DateJoined defaults to today.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeCreateInput) (*domain.Employee, error) {
	if existing, err := s.employees.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, util.NewDuplicate("employee with this email already exists", map[string]any{"email": input.Email})
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, util.MapError(err)
	}

	var dept *domain.Department
	if input.DepartmentID != nil {
		var err error
		dept, err = s.resolveDepartment(ctx, *input.DepartmentID)
		if err != nil {
			return nil, err
		}
	}

	emp := &domain.Employee{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
		Salary:       input.Salary,
		IsActive:     true,
		DepartmentID: input.DepartmentID,
	}
	if input.IsActive != nil {
		emp.IsActive = *input.IsActive
	}
	if input.DateJoined != nil {
		emp.DateJoined = domain.DayOf(*input.DateJoined)
	} else {
		emp.DateJoined = domain.DayOf(s.now())
	}

	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, util.MapError(err)
	}
	emp.Department = dept

	s.publishEvent(ctx, events.Event{
		Type:     events.EventEmployeeCreated,
		EntityID: emp.ID,
		Payload: events.EmployeeCreatedPayload{
			Email:        emp.Email,
			DepartmentID: emp.DepartmentID,
		},
	})
	return emp, nil
}

// List returns employees matching all provided filters.
func (s *EmployeeService) List(ctx context.Context, filters EmployeeListFilters) ([]domain.Employee, error) {
	emps, err := s.employees.List(ctx, repository.EmployeeFilter{
		IsActive:     filters.IsActive,
		DepartmentID: filters.DepartmentID,
	})
	if err != nil {
		return nil, util.MapError(err)
	}
	if err := s.attachDepartments(ctx, emps); err != nil {
		return nil, err
	}
	return emps, nil
}

// GetByID fetches an employee with its department resolved.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("employee", map[string]any{"employee_id": id})
		}
		return nil, util.MapError(err)
	}
	if emp.DepartmentID != nil {
		dept, err := s.resolveDepartment(ctx, *emp.DepartmentID)
		if err != nil {
			return nil, err
		}
		emp.Department = dept
	}
	return emp, nil
}

// Update applies only the fields present in the input, leaving the rest
// untouched. Email changes re-check uniqueness; department changes re-check
// existence.
func (s *EmployeeService) Update(ctx context.Context, id int64, input EmployeeUpdateInput) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("employee", map[string]any{"employee_id": id})
		}
		return nil, util.MapError(err)
	}

	if input.Email.Set && input.Email.Value != emp.Email {
		if existing, err := s.employees.GetByEmail(ctx, input.Email.Value); err == nil && existing != nil && existing.ID != emp.ID {
			return nil, util.NewDuplicate("employee with this email already exists", map[string]any{"email": input.Email.Value})
		} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, util.MapError(err)
		}
		emp.Email = input.Email.Value
	}
	if input.DepartmentID.Set {
		if input.DepartmentID.Value != nil {
			if _, err := s.resolveDepartment(ctx, *input.DepartmentID.Value); err != nil {
				return nil, err
			}
		}
		emp.DepartmentID = input.DepartmentID.Value
	}
	if input.FullName.Set {
		emp.FullName = input.FullName.Value
	}
	if input.Phone.Set {
		emp.Phone = input.Phone.Value
	}
	if input.Role.Set {
		emp.Role = input.Role.Value
	}
	if input.Salary.Set {
		emp.Salary = input.Salary.Value
	}
	if input.IsActive.Set {
		emp.IsActive = input.IsActive.Value
	}

	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, util.MapError(err)
	}
	if emp.DepartmentID != nil {
		dept, err := s.resolveDepartment(ctx, *emp.DepartmentID)
		if err != nil {
			return nil, err
		}
		emp.Department = dept
	} else {
		emp.Department = nil
	}
	return emp, nil
}

// Delete removes an employee; the store cascades deletion to exactly that
// employee's attendance records.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("employee", map[string]any{"employee_id": id})
		}
		return util.MapError(err)
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("employee", map[string]any{"employee_id": id})
		}
		return util.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventEmployeeDeleted,
		EntityID: id,
		Payload:  events.EmployeeDeletedPayload{Email: emp.Email},
	})
	return nil
}

func (s *EmployeeService) resolveDepartment(ctx context.Context, id int64) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("department", map[string]any{"department_id": id})
		}
		return nil, util.MapError(err)
	}
	return dept, nil
}

func (s *EmployeeService) attachDepartments(ctx context.Context, emps []domain.Employee) error {
	cache := map[int64]*domain.Department{}
	for i := range emps {
		if emps[i].DepartmentID == nil {
			continue
		}
		id := *emps[i].DepartmentID
		dept, ok := cache[id]
		if !ok {
			var err error
			dept, err = s.resolveDepartment(ctx, id)
			if err != nil {
				return err
			}
			cache[id] = dept
		}
		emps[i].Department = dept
	}
	return nil
}

func (s *EmployeeService) publishEvent(ctx context.Context, event events.Event) {
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
