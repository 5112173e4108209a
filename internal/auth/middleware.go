package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/dayflow/hr-service/pkg/util/errorutil"
)

const claimsKey = "auth_claims"

// Protect returns a handler that admits only bearers of a valid token whose
// role satisfies allowed. Rejections carry no verification detail.
func (g *Gate) Protect(allowed RoleRequirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			g.metrics.RecordAuthDecision("unauthorized")
			return apperrors.NewUnauthorized("unauthorized")
		}

		claims, err := g.Require(token, allowed)
		if err != nil {
			return rejection(err)
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext retrieves the verified claims stored by Protect.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok && claims != nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

func rejection(err error) error {
	if errors.Is(err, ErrForbidden) {
		return apperrors.NewForbidden("insufficient role")
	}
	return apperrors.NewUnauthorized("unauthorized")
}
