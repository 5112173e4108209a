package dto

import (
	"time"

	"github.com/dayflow/hr-service/internal/domain"
)

// ApplyLeaveRequest payload for POST /leave/apply.
type ApplyLeaveRequest struct {
	Type      string `json:"type" validate:"required,max=64"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"max=2000"`
}

// LeaveResponse is a leave as rendered to clients.
type LeaveResponse struct {
	ID            int64              `json:"id"`
	EmployeeID    int64              `json:"employee_id"`
	EmployeeEmail string             `json:"employee_email,omitempty"`
	Type          string             `json:"type"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	Days          int                `json:"days"`
	Reason        string             `json:"reason"`
	Status        domain.LeaveStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}
