package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/dayflow/hr-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeRegistered EventType = "employee_registered"
	EventEmployeeApproved   EventType = "employee_approved"
	EventEmployeeRejected   EventType = "employee_rejected"
	EventLeaveApplied       EventType = "leave_applied"
	EventLeaveApproved      EventType = "leave_approved"
	EventLeaveRejected      EventType = "leave_rejected"
)

// AllTypes lists every event the services emit.
func AllTypes() []EventType {
	return []EventType{
		EventEmployeeRegistered,
		EventEmployeeApproved,
		EventEmployeeRejected,
		EventLeaveApplied,
		EventLeaveApproved,
		EventLeaveRejected,
	}
}

// Actor identifies who triggered an event; zero for anonymous registration.
type Actor struct {
	EmployeeID int64       `json:"employee_id,omitempty"`
	Role       domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID int64       `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, subjectID int64, actor Actor, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// EmployeeStatusPayload accompanies registration and approval decisions.
type EmployeeStatusPayload struct {
	Email  string                `json:"email,omitempty"`
	Status domain.EmployeeStatus `json:"status"`
}

// LeavePayload accompanies leave lifecycle events.
type LeavePayload struct {
	EmployeeID int64              `json:"employee_id,omitempty"`
	Type       string             `json:"type,omitempty"`
	StartDate  string             `json:"start_date,omitempty"`
	EndDate    string             `json:"end_date,omitempty"`
	Status     domain.LeaveStatus `json:"status"`
}
