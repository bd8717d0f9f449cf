package ports

import (
	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// TokenVerifier resolves a caller identity from a raw bearer token.
// Verification is a pure local operation (claim checks only, no network
// round-trip), so no context is threaded through.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}
