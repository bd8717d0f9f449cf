package ports

import (
	"context"
	"time"

	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// CreateProfileInput carries the profile fields supplied on first signup.
// Identity id and email come from the resolved token, not from this input.
type CreateProfileInput struct {
	FirstName string
	LastName  string
	Phone     *string
	DOB       *time.Time
	Role      string // defaults to "customer" when empty
}

// UpdateProfileInput is a sparse field set: only non-nil fields are applied
// to the stored row, everything else keeps its current value.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	DOB          *time.Time
	Role         *string
	ProfileImage *string
	Address      *string
	City         *string
	State        *string
}

// ProfileService defines use-case operations on the caller's own profile.
type ProfileService interface {
	Create(ctx context.Context, ident domain.Identity, input CreateProfileInput) (*domain.User, error)
	Get(ctx context.Context, identityID string) (*domain.User, error)
	Update(ctx context.Context, identityID string, input UpdateProfileInput) (*domain.User, error)
	Delete(ctx context.Context, identityID string) error
}
