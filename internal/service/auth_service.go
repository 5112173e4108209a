package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/config"
	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/events"
	"github.com/dayflow/hr-service/internal/repository"
	apperrors "github.com/dayflow/hr-service/pkg/util/errorutil"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	employees  repository.EmployeeRepository
	gate       *auth.Gate
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Gate         *auth.Gate
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		employees:  deps.EmployeeRepo,
		gate:       deps.Gate,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login authenticates through the gate. Errors are the gate's sentinels.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	session, err := s.gate.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			s.logger.Error("login lookup failed", zap.Error(err))
		}
		return nil, err
	}
	s.logger.Info("login succeeded",
		zap.Int64("employee_id", session.Employee.ID),
		zap.String("role", string(session.Employee.Role)))
	return session, nil
}

// Register creates a PENDING employee account awaiting admin approval.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Employee, error) {
	email = auth.NormalizeEmail(email)

	if _, err := s.employees.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	employee := &domain.Employee{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		Status:       domain.EmployeeStatusPending,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, apperrors.MapError(err)
	}

	emit(ctx, s.dispatcher, s.logger, events.New(events.EventEmployeeRegistered, employee.ID, events.Actor{},
		events.EmployeeStatusPayload{Email: employee.Email, Status: employee.Status}))
	return employee, nil
}
