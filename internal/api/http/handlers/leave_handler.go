package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/hr-service/internal/api/dto"
	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/service"
	apperrors "github.com/dayflow/hr-service/pkg/util/errorutil"
)

// LeaveHandler exposes leave request endpoints.
type LeaveHandler struct {
	leaves *service.LeaveService
}

// NewLeaveHandler constructs handler.
func NewLeaveHandler(leaves *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaves: leaves}
}

// Apply handles POST /leave/apply.
func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized")
	}

	var req dto.ApplyLeaveRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	start, err := time.Parse(service.DateLayout, req.StartDate)
	if err != nil {
		return apperrors.NewValidationError("invalid start_date", nil)
	}
	end, err := time.Parse(service.DateLayout, req.EndDate)
	if err != nil {
		return apperrors.NewValidationError("invalid end_date", nil)
	}

	leave, err := h.leaves.Apply(c.UserContext(), claims, service.LeaveApplication{
		Type:      req.Type,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leaveResponse(leave)})
}

// Pending handles GET /leave/pending.
func (h *LeaveHandler) Pending(c *fiber.Ctx) error {
	list, err := h.leaves.ListPending(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponses(list)})
}

// MyLeaves handles GET /leave/my-leaves.
func (h *LeaveHandler) MyLeaves(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized")
	}
	list, err := h.leaves.ListMine(c.UserContext(), claims)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponses(list)})
}

// Approve handles POST /leave/approve/:id.
func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	claims, _ := auth.ClaimsFromContext(c)
	if err := h.leaves.Approve(c.UserContext(), claims, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": domain.LeaveStatusApproved}})
}

// Reject handles POST /leave/reject/:id.
func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	claims, _ := auth.ClaimsFromContext(c)
	if err := h.leaves.Reject(c.UserContext(), claims, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": domain.LeaveStatusRejected}})
}

func leaveResponses(list []domain.Leave) []dto.LeaveResponse {
	resp := make([]dto.LeaveResponse, 0, len(list))
	for i := range list {
		resp = append(resp, leaveResponse(&list[i]))
	}
	return resp
}

func leaveResponse(leave *domain.Leave) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:            leave.ID,
		EmployeeID:    leave.EmployeeID,
		EmployeeEmail: leave.EmployeeEmail,
		Type:          leave.Type,
		StartDate:     leave.StartDate.Format(service.DateLayout),
		EndDate:       leave.EndDate.Format(service.DateLayout),
		Days:          leave.Days(),
		Reason:        leave.Reason,
		Status:        leave.Status,
		CreatedAt:     leave.CreatedAt,
	}
}
