package dto

import (
	"time"

	"github.com/dayflow/hr-service/internal/domain"
)

// EmployeeResponse is the public view of an account; the hash never leaves the service.
type EmployeeResponse struct {
	ID        int64                 `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Role      domain.Role           `json:"role"`
	Status    domain.EmployeeStatus `json:"status,omitempty"`
	CreatedAt *time.Time            `json:"created_at,omitempty"`
}

// DashboardResponse echoes the verified identity.
type DashboardResponse struct {
	Message string      `json:"message"`
	ID      int64       `json:"id"`
	Email   string      `json:"email"`
	Role    domain.Role `json:"role"`
}
