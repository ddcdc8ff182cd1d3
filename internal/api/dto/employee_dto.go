package dto

import (
	"time"

	"github.com/spec-kit/employee-erp-service/internal/domain"
	"github.com/spec-kit/employee-erp-service/pkg/util"
)

// CreateEmployeeRequest payload. DateJoined uses the YYYY-MM-DD calendar
// form and defaults to today when omitted.
type CreateEmployeeRequest struct {
	FullName     string   `json:"full_name" validate:"required,max=150"`
	Email        string   `json:"email" validate:"required,email,max=150"`
	Phone        *string  `json:"phone" validate:"omitempty,max=20"`
	Role         *string  `json:"role" validate:"omitempty,max=100"`
	Salary       *float64 `json:"salary"`
	IsActive     *bool    `json:"is_active"`
	DateJoined   *string  `json:"date_joined" validate:"omitempty,datetime=2006-01-02"`
	DepartmentID *int64   `json:"department_id"`
}

// UpdateEmployeeRequest carries partial-update fields. Absent keys decode
// with Set=false and leave the stored value untouched; an explicit null on a
// nullable field clears it.
type UpdateEmployeeRequest struct {
	FullName     util.Optional[string]   `json:"full_name"`
	Email        util.Optional[string]   `json:"email"`
	Phone        util.Optional[*string]  `json:"phone"`
	Role         util.Optional[*string]  `json:"role"`
	Salary       util.Optional[*float64] `json:"salary"`
	IsActive     util.Optional[bool]     `json:"is_active"`
	DepartmentID util.Optional[*int64]   `json:"department_id"`
}

// EmployeeResponse payload with the resolved department embedded.
type EmployeeResponse struct {
	ID           int64               `json:"id"`
	FullName     string              `json:"full_name"`
	Email        string              `json:"email"`
	Phone        *string             `json:"phone"`
	Role         *string             `json:"role"`
	Salary       *float64            `json:"salary"`
	IsActive     bool                `json:"is_active"`
	DateJoined   string              `json:"date_joined"`
	DepartmentID *int64              `json:"department_id"`
	Department   *DepartmentResponse `json:"department,omitempty"`
}

// NewEmployeeResponse maps a domain employee.
func NewEmployeeResponse(emp *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           emp.ID,
		FullName:     emp.FullName,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Role:         emp.Role,
		Salary:       emp.Salary,
		IsActive:     emp.IsActive,
		DateJoined:   emp.DateJoined.Format(time.DateOnly),
		DepartmentID: emp.DepartmentID,
	}
	if emp.Department != nil {
		dept := NewDepartmentResponse(emp.Department)
		resp.Department = &dept
	}
	return resp
}
