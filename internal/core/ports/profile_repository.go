package ports

import (
	"context"

	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for user profiles.
// All lookups are keyed by the provider-assigned identity id.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update persists the full row as given; field selection happens in the
	// service layer, which merges the partial input into the stored row first.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
