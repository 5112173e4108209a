package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/dayflow/hr-service/internal/api/http/handlers"
	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Admin    *handlers.AdminHandler
	Leave    *handlers.LeaveHandler
	Employee *handlers.EmployeeHandler
	Gate     *auth.Gate
	Metrics  *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Each protected route declares the roles
// its gate admits.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	adminOnly := cfg.Gate.Protect(auth.Roles(domain.RoleAdmin))
	employeeOnly := cfg.Gate.Protect(auth.Roles(domain.RoleEmployee))
	authenticated := cfg.Gate.Protect(auth.AnyRole)

	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)

	// Gated per route so rejections are attributed to the endpoint.
	admin := app.Group("/admin")
	admin.Get("/pending-employees", adminOnly, cfg.Admin.PendingEmployees)
	admin.Post("/approve-employee/:id", adminOnly, cfg.Admin.ApproveEmployee)
	admin.Post("/reject-employee/:id", adminOnly, cfg.Admin.RejectEmployee)

	leave := app.Group("/leave")
	leave.Post("/apply", employeeOnly, cfg.Leave.Apply)
	leave.Get("/pending", adminOnly, cfg.Leave.Pending)
	leave.Post("/approve/:id", adminOnly, cfg.Leave.Approve)
	leave.Post("/reject/:id", adminOnly, cfg.Leave.Reject)
	leave.Get("/my-leaves", authenticated, cfg.Leave.MyLeaves)

	app.Get("/employee/dashboard", authenticated, cfg.Employee.Dashboard)
	app.Get("/payroll/me", cfg.Employee.Payroll)
	app.Post("/attendance/check-in", cfg.Employee.CheckIn)
}
