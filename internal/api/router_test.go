package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fastbites/fastbites-api/internal/infrastructure/config"
)

var (
	routerOnce sync.Once
	router     *echo.Echo
)

// testRouter builds the full route table once per test binary. The
// prometheus middleware registers collectors globally, so constructing a
// second router in the same process would panic on duplicate registration.
func testRouter() *echo.Echo {
	routerOnce.Do(func() {
		cfg := &config.Config{
			Env: "development",
			Supabase: config.SupabaseConfig{
				URL: "https://example-project.supabase.co",
			},
		}
		router = NewRouter(nil, cfg, zerolog.Nop())
	})
	return router
}

func doRequest(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)
	return rec
}

func TestRouter_Root(t *testing.T) {
	rec := doRequest(http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "Fast Bites API" {
		t.Fatalf("unexpected root message %q", resp["message"])
	}
}

func TestRouter_Health(t *testing.T) {
	rec := doRequest(http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ReadinessWithoutDatabase(t *testing.T) {
	rec := doRequest(http.MethodGet, "/health/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a database, got %d", rec.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	rec := doRequest(http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ProfileRequiresAuth(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := doRequest(method, "/users/profile")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s /users/profile: expected 401 without a token, got %d", method, rec.Code)
		}

		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode error envelope: %v", err)
		}
		if resp.Error == "" {
			t.Fatalf("%s /users/profile: expected an error message", method)
		}
	}
}

func TestRouter_ProfileRejectsBadToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a malformed token, got %d", rec.Code)
	}
}

// With persistence disabled the catalog routes stay registered but fail
// per-request with an opaque 500.
func TestRouter_CatalogWithoutDatabase(t *testing.T) {
	rec := doRequest(http.MethodGet, "/menu/restaurants")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without a database, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("unexpected message %q", resp.Error)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := doRequest(http.MethodGet, "/no-such-route")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
