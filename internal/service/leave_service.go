package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/events"
	"github.com/dayflow/hr-service/internal/repository"
	apperrors "github.com/dayflow/hr-service/pkg/util/errorutil"
)

// DateLayout is the wire format of leave dates.
const DateLayout = "2006-01-02"

// LeaveApplication is the input for a new leave request.
type LeaveApplication struct {
	Type      string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// LeaveService manages leave requests.
type LeaveService struct {
	leaves     repository.LeaveRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewLeaveService constructs the service.
func NewLeaveService(leaves repository.LeaveRepository, dispatcher events.Dispatcher, logger *zap.Logger) *LeaveService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaveService{leaves: leaves, dispatcher: dispatcher, logger: logger}
}

// Apply stores a PENDING leave for the calling employee.
func (s *LeaveService) Apply(ctx context.Context, actor *auth.Claims, app LeaveApplication) (*domain.Leave, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("unauthorized")
	}
	leaveType := strings.TrimSpace(app.Type)
	if leaveType == "" {
		return nil, apperrors.NewValidationError("type is required", nil)
	}
	if app.StartDate.IsZero() || app.EndDate.IsZero() {
		return nil, apperrors.NewValidationError("start_date and end_date are required", nil)
	}
	if app.EndDate.Before(app.StartDate) {
		return nil, apperrors.NewValidationError("end_date must not be before start_date", map[string]any{
			"start_date": app.StartDate.Format(DateLayout),
			"end_date":   app.EndDate.Format(DateLayout),
		})
	}

	leave := &domain.Leave{
		EmployeeID: actor.ID,
		Type:       leaveType,
		StartDate:  app.StartDate,
		EndDate:    app.EndDate,
		Reason:     strings.TrimSpace(app.Reason),
		Status:     domain.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, apperrors.MapError(err)
	}

	emit(ctx, s.dispatcher, s.logger, events.New(events.EventLeaveApplied, leave.ID, actorOf(actor), events.LeavePayload{
		EmployeeID: leave.EmployeeID,
		Type:       leave.Type,
		StartDate:  leave.StartDate.Format(DateLayout),
		EndDate:    leave.EndDate.Format(DateLayout),
		Status:     leave.Status,
	}))
	return leave, nil
}

// ListPending returns all PENDING leaves with the requesting employee's email.
func (s *LeaveService) ListPending(ctx context.Context) ([]domain.Leave, error) {
	list, err := s.leaves.ListByStatus(ctx, domain.LeaveStatusPending)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// ListMine returns the caller's leaves, latest start date first.
func (s *LeaveService) ListMine(ctx context.Context, actor *auth.Claims) ([]domain.Leave, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("unauthorized")
	}
	list, err := s.leaves.ListByEmployee(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Approve marks a leave APPROVED.
func (s *LeaveService) Approve(ctx context.Context, actor *auth.Claims, id int64) error {
	return s.decide(ctx, actor, id, domain.LeaveStatusApproved, events.EventLeaveApproved)
}

// Reject marks a leave REJECTED.
func (s *LeaveService) Reject(ctx context.Context, actor *auth.Claims, id int64) error {
	return s.decide(ctx, actor, id, domain.LeaveStatusRejected, events.EventLeaveRejected)
}

func (s *LeaveService) decide(ctx context.Context, actor *auth.Claims, id int64, status domain.LeaveStatus, eventType events.EventType) error {
	if err := s.leaves.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("leave", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	emit(ctx, s.dispatcher, s.logger, events.New(eventType, id, actorOf(actor), events.LeavePayload{Status: status}))
	return nil
}
