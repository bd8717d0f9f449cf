package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fastbites/fastbites-api/internal/core/domain"
)

type stubVerifier struct {
	ident *domain.Identity
	err   error

	gotToken string
}

func (v *stubVerifier) Verify(token string) (*domain.Identity, error) {
	v.gotToken = token
	if v.err != nil {
		return nil, v.err
	}
	return v.ident, nil
}

func runAuth(t *testing.T, verifier *stubVerifier, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(verifier)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, &stubVerifier{}, "")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	_, err := runAuth(t, &stubVerifier{}, "Basic dXNlcjpwYXNz")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_NoToken(t *testing.T) {
	_, err := runAuth(t, &stubVerifier{}, "Bearer")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_VerifierErrorPropagates(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrUnauthenticated}
	_, err := runAuth(t, verifier, "Bearer bad-token")

	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	verifier := &stubVerifier{ident: &domain.Identity{ID: "u1", Email: "alice@example.com"}}
	c, err := runAuth(t, verifier, "Bearer good-token")
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if verifier.gotToken != "good-token" {
		t.Fatalf("verifier received %q", verifier.gotToken)
	}

	ident, ok := c.Get(IdentityKey).(*domain.Identity)
	if !ok || ident.ID != "u1" {
		t.Fatalf("identity not stored in context: %#v", c.Get(IdentityKey))
	}
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	verifier := &stubVerifier{ident: &domain.Identity{ID: "u1"}}
	if _, err := runAuth(t, verifier, "bearer good-token"); err != nil {
		t.Fatalf("lowercase scheme must be accepted: %v", err)
	}
}
