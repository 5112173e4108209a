package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/hr-service/internal/api/dto"
	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/service"
)

// AdminHandler exposes the employee approval workflow.
type AdminHandler struct {
	employees *service.EmployeeService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(employees *service.EmployeeService) *AdminHandler {
	return &AdminHandler{employees: employees}
}

// PendingEmployees handles GET /admin/pending-employees.
func (h *AdminHandler) PendingEmployees(c *fiber.Ctx) error {
	list, err := h.employees.ListPending(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, employeeResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// ApproveEmployee handles POST /admin/approve-employee/:id.
func (h *AdminHandler) ApproveEmployee(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	claims, _ := auth.ClaimsFromContext(c)
	if err := h.employees.Approve(c.UserContext(), claims, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": domain.EmployeeStatusApproved}})
}

// RejectEmployee handles POST /admin/reject-employee/:id.
func (h *AdminHandler) RejectEmployee(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	claims, _ := auth.ClaimsFromContext(c)
	if err := h.employees.Reject(c.UserContext(), claims, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": domain.EmployeeStatusRejected}})
}

func employeeResponse(employee *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:     employee.ID,
		Name:   employee.DisplayName(),
		Email:  employee.Email,
		Role:   employee.Role,
		Status: employee.Status,
	}
	if !employee.CreatedAt.IsZero() {
		createdAt := employee.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}
