package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/observability"
)

// CredentialStore is the lookup the gate needs from the account table.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Employee  *domain.Employee
}

// Gate authenticates logins and guards protected requests. It keeps no
// per-request state.
type Gate struct {
	store   CredentialStore
	tokens  *TokenCodec
	metrics *observability.Metrics
}

// NewGate wires the gate to its store and codec. metrics may be nil.
func NewGate(store CredentialStore, tokens *TokenCodec, metrics *observability.Metrics) *Gate {
	return &Gate{store: store, tokens: tokens, metrics: metrics}
}

// Tokens exposes the codec the gate issues with.
func (g *Gate) Tokens() *TokenCodec {
	return g.tokens
}

// Authenticate checks email/password against the store and issues a token for
// approved accounts. Unknown accounts and wrong passwords both match
// ErrInvalidCredentials.
func (g *Gate) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	employee, err := g.store.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			g.metrics.RecordAuthDecision("login_invalid")
			return nil, ErrAccountNotFound
		}
		g.metrics.RecordAuthDecision("login_store_unavailable")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if employee.Status != domain.EmployeeStatusApproved {
		g.metrics.RecordAuthDecision("login_not_approved")
		return nil, ErrNotApproved
	}

	if err := ComparePassword(employee.PasswordHash, password); err != nil {
		g.metrics.RecordAuthDecision("login_invalid")
		return nil, err
	}

	// Verify rejects tokens without a role, so never issue one.
	if employee.Role.Normalize() == "" {
		g.metrics.RecordAuthDecision("login_role_missing")
		return nil, ErrRoleMissing
	}

	token, expiresAt, err := g.tokens.Issue(Claims{
		ID:    employee.ID,
		Role:  employee.Role,
		Email: employee.Email,
	}, g.tokens.TTL())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	g.metrics.RecordAuthDecision("login_ok")
	return &Session{Token: token, ExpiresAt: expiresAt, Employee: employee}, nil
}

// Require verifies token and checks its role against allowed.
// Failures wrap ErrUnauthorized (bad token) or are ErrForbidden (role mismatch).
func (g *Gate) Require(token string, allowed RoleRequirement) (*Claims, error) {
	claims, err := g.tokens.Verify(token)
	if err != nil {
		g.metrics.RecordAuthDecision("unauthorized")
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if !allowed.Allows(claims.Role) {
		g.metrics.RecordAuthDecision("forbidden")
		return nil, ErrForbidden
	}
	g.metrics.RecordAuthDecision("allowed")
	return claims, nil
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
