package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-erp-service/internal/api/dto"
	"github.com/spec-kit/employee-erp-service/internal/service"
	apperrors "github.com/spec-kit/employee-erp-service/pkg/util"
)

// AttendanceHandler manages check-in/check-out endpoints.
type AttendanceHandler struct {
	service *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: attendanceService}
}

// CheckIn POST /attendance/check-in.
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details, ok := dto.Validate(req); !ok {
		return apperrors.NewValidationError("invalid check-in payload", details)
	}
	checkIn, err := parseTimestamp(req.CheckIn)
	if err != nil {
		return apperrors.NewValidationError("invalid check_in timestamp", map[string]any{"check_in": req.CheckIn})
	}

	record, err := h.service.CheckIn(c.UserContext(), req.EmployeeID, checkIn)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewAttendanceResponse(record)})
}

// CheckOut POST /attendance/:id/check-out.
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details, ok := dto.Validate(req); !ok {
		return apperrors.NewValidationError("invalid check-out payload", details)
	}
	checkOut, err := parseTimestamp(req.CheckOut)
	if err != nil {
		return apperrors.NewValidationError("invalid check_out timestamp", map[string]any{"check_out": req.CheckOut})
	}

	record, err := h.service.CheckOut(c.UserContext(), id, checkOut)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAttendanceResponse(record)})
}

// List GET /attendance.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	filters := service.AttendanceListFilters{}
	if val := c.Query("employee_id"); val != "" {
		employeeID, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return apperrors.NewValidationError("invalid employee_id filter", map[string]any{"employee_id": val})
		}
		filters.EmployeeID = &employeeID
	}
	if val := c.Query("date"); val != "" {
		day, err := time.Parse(time.DateOnly, val)
		if err != nil {
			return apperrors.NewValidationError("invalid date filter", map[string]any{"date": val})
		}
		filters.Date = &day
	}

	records, err := h.service.List(c.UserContext(), filters)
	if err != nil {
		return err
	}
	items := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.NewAttendanceResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseTimestamp accepts RFC3339 and the zone-less form; zone-less
// timestamps are read as local wall-clock time.
func parseTimestamp(val string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, val, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
