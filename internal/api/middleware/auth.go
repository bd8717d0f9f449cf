package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fastbites/fastbites-api/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the resolved
// *domain.Identity.
const IdentityKey = "identity"

// Auth extracts the bearer token, resolves it through the verifier, and
// injects the identity into context. Requests without a well-formed
// Authorization header are rejected before any handler runs.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			ident, err := verifier.Verify(parts[1])
			if err != nil {
				return err
			}

			c.Set(IdentityKey, ident)
			return next(c)
		}
	}
}
