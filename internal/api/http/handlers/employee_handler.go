package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/hr-service/internal/api/dto"
	"github.com/dayflow/hr-service/internal/auth"
	apperrors "github.com/dayflow/hr-service/pkg/util/errorutil"
)

// EmployeeHandler serves the employee self-service area plus the payroll and
// attendance placeholders.
type EmployeeHandler struct{}

// NewEmployeeHandler constructs handler.
func NewEmployeeHandler() *EmployeeHandler {
	return &EmployeeHandler{}
}

// Dashboard handles GET /employee/dashboard.
func (h *EmployeeHandler) Dashboard(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized")
	}
	return c.JSON(fiber.Map{"data": dto.DashboardResponse{
		Message: "Protected employee dashboard",
		ID:      claims.ID,
		Email:   claims.Email,
		Role:    claims.Role,
	}})
}

// Payroll handles GET /payroll/me. Placeholder: no payroll data exists yet.
func (h *EmployeeHandler) Payroll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Payroll info"}})
}

// CheckIn handles POST /attendance/check-in. Placeholder: nothing is recorded.
func (h *EmployeeHandler) CheckIn(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Check-in endpoint"}})
}
