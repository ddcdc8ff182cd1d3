package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-erp-service/internal/config"
	"github.com/spec-kit/employee-erp-service/internal/domain"
	"github.com/spec-kit/employee-erp-service/internal/repository"
	apperrors "github.com/spec-kit/employee-erp-service/pkg/util"
)

// DepartmentService manages department records.
type DepartmentService struct {
	departments  repository.DepartmentRepository
	deletePolicy config.DepartmentDeletePolicy
}

// NewDepartmentService constructs the service.
func NewDepartmentService(cfg config.OrgConfig, departments repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departments:  departments,
		deletePolicy: cfg.DepartmentDelete,
	}
}

// Create persists a new department. Names are unique with a case-sensitive
// exact match; the existence check here is a friendly pre-check, the
// database unique constraint is the authoritative guard.
func (s *DepartmentService) Create(ctx context.Context, name string, description *string) (*domain.Department, error) {
	if existing, err := s.departments.GetByName(ctx, name); err == nil && existing != nil {
		return nil, apperrors.NewDuplicate("department with this name already exists", map[string]any{"name": name})
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	dept := &domain.Department{
		Name:        name,
		Description: description,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// List returns all departments.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return depts, nil
}

// GetByID fetches a department.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"department_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// Delete removes a department applying the configured policy for dependent
// employees.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.departments.Delete(ctx, id, s.deletePolicy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("department", map[string]any{"department_id": id})
		}
		if errors.Is(err, repository.ErrDepartmentInUse) {
			return apperrors.NewConflict("department still has assigned employees", map[string]any{"department_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
