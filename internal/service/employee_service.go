package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/events"
	"github.com/dayflow/hr-service/internal/repository"
	apperrors "github.com/dayflow/hr-service/pkg/util/errorutil"
)

// EmployeeService runs the admin approval workflow.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository, dispatcher events.Dispatcher, logger *zap.Logger) *EmployeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{employees: employees, dispatcher: dispatcher, logger: logger}
}

// ListPending returns accounts awaiting approval.
func (s *EmployeeService) ListPending(ctx context.Context) ([]domain.Employee, error) {
	list, err := s.employees.ListByStatus(ctx, domain.EmployeeStatusPending)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Approve marks an account APPROVED so it can log in.
func (s *EmployeeService) Approve(ctx context.Context, actor *auth.Claims, id int64) error {
	return s.decide(ctx, actor, id, domain.EmployeeStatusApproved, events.EventEmployeeApproved)
}

// Reject marks an account REJECTED.
func (s *EmployeeService) Reject(ctx context.Context, actor *auth.Claims, id int64) error {
	return s.decide(ctx, actor, id, domain.EmployeeStatusRejected, events.EventEmployeeRejected)
}

// Get returns one account.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}

func (s *EmployeeService) decide(ctx context.Context, actor *auth.Claims, id int64, status domain.EmployeeStatus, eventType events.EventType) error {
	if err := s.employees.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	emit(ctx, s.dispatcher, s.logger, events.New(eventType, id, actorOf(actor),
		events.EmployeeStatusPayload{Status: status}))
	return nil
}
