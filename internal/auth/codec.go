package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/dayflow/hr-service/internal/domain"
)

const defaultTokenTTL = time.Hour

// Claims is the identity payload carried by an access token.
type Claims struct {
	ID    int64       `json:"id"`
	Role  domain.Role `json:"role"`
	Email string      `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256 access tokens. It holds only read-only
// state and is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec builds a codec signing with secret. A non-positive ttl falls back to one hour.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the codec that reads the current time from now.
func (tc *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	cp := *tc
	cp.now = now
	return &cp
}

// TTL returns the default token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue signs claims with a fresh issued-at and an expiry ttl from now.
func (tc *TokenCodec) Issue(claims Claims, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = tc.ttl
	}
	now := tc.now()
	expiresAt := ceilSecond(now.Add(ttl))

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(claims.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature then expiry and returns the embedded claims.
func (tc *TokenCodec) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return tc.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tc.now),
	)
	if err != nil {
		return nil, classify(err)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("%w: role claim missing", ErrTokenMalformed)
	}
	return claims, nil
}

// classify folds jwt parser errors into the three verification failures.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}

// ceilSecond rounds up to the next whole second; NumericDate truncates, which
// would otherwise let a sub-second ttl expire at issuance.
func ceilSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Second)
}
