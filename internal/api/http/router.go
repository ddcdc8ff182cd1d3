package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-erp-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Departments *handlers.DepartmentsHandler
	Employees   *handlers.EmployeesHandler
	Attendance  *handlers.AttendanceHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	departments := app.Group("/departments")
	departments.Post("", cfg.Departments.Create)
	departments.Get("", cfg.Departments.List)
	departments.Get("/:id", cfg.Departments.Get)
	departments.Delete("/:id", cfg.Departments.Delete)

	employees := app.Group("/employees")
	employees.Post("", cfg.Employees.Create)
	employees.Get("", cfg.Employees.List)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)

	attendance := app.Group("/attendance")
	attendance.Post("/check-in", cfg.Attendance.CheckIn)
	attendance.Post("/:id/check-out", cfg.Attendance.CheckOut)
	attendance.Get("", cfg.Attendance.List)
}
