package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbites/fastbites-api/internal/api/middleware"
	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing identity means the
// middleware did not run on this route, which is a wiring bug surfaced as 401
// rather than a panic deeper down.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	ident, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	if ident == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}
