package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dayflow/hr-service/internal/api/dto"
	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/service"
	apperrors "github.com/dayflow/hr-service/pkg/util/errorutil"
)

// AuthHandler exposes login and registration.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	session, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return loginRejection(err)
	}

	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			Employee: dto.EmployeeResponse{
				ID:    session.Employee.ID,
				Name:  session.Employee.DisplayName(),
				Email: session.Employee.Email,
				Role:  session.Employee.Role,
			},
		},
	})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	employee, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(employee)})
}

// loginRejection keeps unknown-account and wrong-password failures identical.
func loginRejection(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return apperrors.NewUnauthorized("invalid email or password")
	case errors.Is(err, auth.ErrNotApproved):
		return apperrors.NewForbidden("account not approved yet")
	case errors.Is(err, auth.ErrRoleMissing):
		return apperrors.NewForbidden("account has no role assigned")
	case errors.Is(err, auth.ErrStoreUnavailable):
		return apperrors.NewUpstreamError(err)
	default:
		return apperrors.NewInternalError(err)
	}
}
