package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-erp-service/internal/api/dto"
	"github.com/spec-kit/employee-erp-service/internal/service"
	apperrors "github.com/spec-kit/employee-erp-service/pkg/util"
)

// EmployeesHandler manages employee endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// Create POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details, ok := dto.Validate(req); !ok {
		return apperrors.NewValidationError("invalid employee payload", details)
	}

	input := service.EmployeeCreateInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Salary:       req.Salary,
		IsActive:     req.IsActive,
		DepartmentID: req.DepartmentID,
	}
	if req.DateJoined != nil {
		joined, err := time.Parse(time.DateOnly, *req.DateJoined)
		if err != nil {
			return apperrors.NewValidationError("invalid date_joined", map[string]any{"date_joined": *req.DateJoined})
		}
		input.DateJoined = &joined
	}

	emp, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEmployeeResponse(emp)})
}

// List GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	filters := service.EmployeeListFilters{}
	if val := c.Query("is_active"); val != "" {
		active, err := strconv.ParseBool(val)
		if err != nil {
			return apperrors.NewValidationError("invalid is_active filter", map[string]any{"is_active": val})
		}
		filters.IsActive = &active
	}
	if val := c.Query("department_id"); val != "" {
		deptID, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return apperrors.NewValidationError("invalid department_id filter", map[string]any{"department_id": val})
		}
		filters.DepartmentID = &deptID
	}

	emps, err := h.service.List(c.UserContext(), filters)
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		items = append(items, dto.NewEmployeeResponse(&emps[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	emp, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(emp)})
}

// Update PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email.Set && !dto.ValidEmail(req.Email.Value) {
		return apperrors.NewValidationError("invalid email", map[string]any{"email": req.Email.Value})
	}
	if req.FullName.Set && req.FullName.Value == "" {
		return apperrors.NewValidationError("full_name cannot be empty", nil)
	}

	emp, err := h.service.Update(c.UserContext(), id, service.EmployeeUpdateInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Salary:       req.Salary,
		IsActive:     req.IsActive,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(emp)})
}

// Delete DELETE /employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
