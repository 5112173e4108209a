package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow/hr-service/internal/domain"
)

type stubStore struct {
	employees map[string]*domain.Employee
	err       error
	lookups   []string
}

func (s *stubStore) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	s.lookups = append(s.lookups, email)
	if s.err != nil {
		return nil, s.err
	}
	e, ok := s.employees[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return e, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func newTestGate(t *testing.T) (*Gate, *stubStore) {
	t.Helper()
	store := &stubStore{employees: map[string]*domain.Employee{
		"a@x.com": {ID: 1, Name: "Ada", Email: "a@x.com", PasswordHash: mustHash(t, "pw1"), Role: "ADMIN", Status: domain.EmployeeStatusApproved},
		"e@x.com": {ID: 2, Name: "Eve", Email: "e@x.com", PasswordHash: mustHash(t, "pw2"), Role: domain.RoleEmployee, Status: domain.EmployeeStatusApproved},
		"p@x.com": {ID: 3, Name: "Pat", Email: "p@x.com", PasswordHash: mustHash(t, "pw3"), Role: domain.RoleEmployee, Status: domain.EmployeeStatusPending},
		"n@x.com": {ID: 5, Name: "Nil", Email: "n@x.com", PasswordHash: mustHash(t, "pw5"), Role: " ", Status: domain.EmployeeStatusApproved},
		"r@x.com": {ID: 4, Name: "Rex", Email: "r@x.com", PasswordHash: mustHash(t, "pw4"), Role: domain.RoleEmployee, Status: domain.EmployeeStatusRejected},
	}}
	return NewGate(store, NewTokenCodec("gate-secret", time.Hour), nil), store
}

func TestAuthenticate_ApprovedAccountGetsToken(t *testing.T) {
	gate, store := newTestGate(t)

	session, err := gate.Authenticate(context.Background(), "  A@X.com ", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, int64(1), session.Employee.ID)
	assert.Equal(t, []string{"a@x.com"}, store.lookups)

	claims, err := gate.Tokens().Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.ID)
	assert.True(t, claims.Role.Is(domain.RoleAdmin))
	assert.Equal(t, "a@x.com", claims.Email)
	assert.WithinDuration(t, session.ExpiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestAuthenticate_Rejections(t *testing.T) {
	gate, _ := newTestGate(t)

	cases := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{name: "unknown email", email: "nobody@x.com", password: "pw1", want: ErrAccountNotFound},
		{name: "wrong password", email: "a@x.com", password: "nope", want: ErrBadCredentials},
		{name: "pending with correct password", email: "p@x.com", password: "pw3", want: ErrNotApproved},
		{name: "pending with wrong password", email: "p@x.com", password: "nope", want: ErrNotApproved},
		{name: "rejected account", email: "r@x.com", password: "pw4", want: ErrNotApproved},
		{name: "approved account without role", email: "n@x.com", password: "pw5", want: ErrRoleMissing},
		{name: "account without role, wrong password", email: "n@x.com", password: "nope", want: ErrBadCredentials},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := gate.Authenticate(context.Background(), tc.email, tc.password)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAuthenticate_UnknownAndWrongPasswordAreIndistinguishable(t *testing.T) {
	gate, _ := newTestGate(t)

	_, unknown := gate.Authenticate(context.Background(), "ghost@x.com", "pw1")
	_, wrong := gate.Authenticate(context.Background(), "a@x.com", "bad")

	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.ErrorIs(t, wrong, ErrInvalidCredentials)
	assert.NotErrorIs(t, unknown, ErrNotApproved)
	assert.NotErrorIs(t, wrong, ErrNotApproved)
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	gate, store := newTestGate(t)
	store.err = errors.New("connection refused")

	_, err := gate.Authenticate(context.Background(), "a@x.com", "pw1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequire(t *testing.T) {
	gate, _ := newTestGate(t)
	codec := gate.Tokens()

	adminToken, _, err := codec.Issue(Claims{ID: 1, Role: "Admin"}, time.Hour)
	require.NoError(t, err)
	employeeToken, _, err := codec.Issue(Claims{ID: 2, Role: domain.RoleEmployee}, time.Hour)
	require.NoError(t, err)

	claims, err := gate.Require(adminToken, Roles(domain.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.ID)

	_, err = gate.Require(employeeToken, Roles(domain.RoleAdmin))
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	claims, err = gate.Require(employeeToken, AnyRole)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.ID)

	_, err = gate.Require(employeeToken, Roles(domain.RoleAdmin, domain.RoleEmployee))
	assert.NoError(t, err)
}

func TestRequire_BadTokens(t *testing.T) {
	gate, _ := newTestGate(t)

	_, err := gate.Require("garbage", AnyRole)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	foreign, _, err := NewTokenCodec("other", time.Hour).Issue(Claims{ID: 1, Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	_, err = gate.Require(foreign, Roles(domain.RoleAdmin))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)

	past := time.Now().Add(-2 * time.Hour)
	stale, _, err := gate.Tokens().WithClock(func() time.Time { return past }).Issue(Claims{ID: 1, Role: domain.RoleAdmin}, time.Minute)
	require.NoError(t, err)
	_, err = gate.Require(stale, Roles(domain.RoleAdmin))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRoleRequirement(t *testing.T) {
	t.Parallel()

	admin := Roles(domain.RoleAdmin)
	assert.True(t, admin.Allows("admin"))
	assert.True(t, admin.Allows("ADMIN"))
	assert.False(t, admin.Allows("employee"))
	assert.False(t, admin.Allows(""))

	assert.False(t, Roles().Allows("admin"))
	assert.True(t, AnyRole.Allows("contractor"))

	assert.Equal(t, "admin|employee", Roles("Admin", domain.RoleEmployee).String())
	assert.Equal(t, "any", AnyRole.String())
}

func TestComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1", 1)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.NoError(t, ComparePassword(hash, "pw1"))
	assert.ErrorIs(t, ComparePassword(hash, "pw2"), ErrBadCredentials)
	assert.ErrorIs(t, ComparePassword("plaintext-in-db", "pw1"), ErrBadCredentials)
}
