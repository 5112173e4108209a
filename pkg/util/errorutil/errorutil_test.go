package errorutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "domain error passes through", err: NewConflict("email taken", nil), status: http.StatusConflict, code: "CONFLICT"},
		{name: "wrapped domain error", err: fmt.Errorf("ctx: %w", NewForbidden("nope")), status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "fiber not found", err: fiber.ErrNotFound, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "fiber method not allowed", err: fiber.ErrMethodNotAllowed, status: http.StatusMethodNotAllowed, code: "METHOD_NOT_ALLOWED"},
		{name: "no rows", err: fmt.Errorf("get: %w", pgx.ErrNoRows), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), status: http.StatusServiceUnavailable, code: "UPSTREAM_UNAVAILABLE"},
		{name: "anything else", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			require.NotNil(t, got)
			assert.Equal(t, tc.status, got.HTTPStatus)
			assert.Equal(t, tc.code, got.Code)
			assert.Equal(t, tc.status, StatusOf(tc.err))
		})
	}

	assert.Nil(t, ToDomainError(nil))
	assert.NoError(t, MapError(nil))
	assert.Equal(t, http.StatusOK, StatusOf(nil))
}

func TestInternalErrorHidesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("password column missing")
	got := ToDomainError(cause)
	assert.Equal(t, "internal server error", got.Message)
	assert.ErrorIs(t, got, cause)
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}

func TestNotFoundMessage(t *testing.T) {
	t.Parallel()

	err := NewNotFound("employee", map[string]any{"id": int64(7)})
	got := ToDomainError(err)
	assert.Equal(t, "employee not found", got.Message)
	assert.Equal(t, int64(7), got.Details["id"])
}
