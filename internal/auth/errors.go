package auth

import (
	"errors"
	"fmt"
)

// Token verification failures. Exactly one of these is wrapped by a failed Verify.
var (
	ErrTokenMalformed        = errors.New("auth: token malformed")
	ErrTokenInvalidSignature = errors.New("auth: token signature invalid")
	ErrTokenExpired          = errors.New("auth: token expired")
)

// Login failures.
var (
	// ErrInvalidCredentials is the single externally visible login rejection for
	// both unknown accounts and wrong passwords.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrAccountNotFound    = fmt.Errorf("%w: account not found", ErrInvalidCredentials)
	ErrBadCredentials     = fmt.Errorf("%w: password mismatch", ErrInvalidCredentials)
	ErrNotApproved        = errors.New("auth: account not approved")
	ErrRoleMissing        = errors.New("auth: account has no role")
	ErrStoreUnavailable   = errors.New("auth: credential store unavailable")
)

// Request gate failures.
var (
	ErrMissingToken = errors.New("auth: missing bearer token")
	ErrUnauthorized = errors.New("auth: unauthorized")
	ErrForbidden    = errors.New("auth: access denied")
)
