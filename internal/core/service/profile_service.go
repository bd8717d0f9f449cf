package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/fastbites/fastbites-api/internal/api/metrics"
	"github.com/fastbites/fastbites-api/internal/core/domain"
	"github.com/fastbites/fastbites-api/internal/core/ports"
)

// ProfileService implements CRUD over the caller's own profile row.
type ProfileService struct {
	repo ports.ProfileRepository
	log  zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log}
}

// Create persists a new profile for the resolved identity. The identity must
// carry both id and email; exactly one row may exist per identity id.
func (s *ProfileService) Create(ctx context.Context, ident domain.Identity, input ports.CreateProfileInput) (*domain.User, error) {
	if ident.ID == "" || ident.Email == "" {
		metrics.ProfileOperationsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, domain.ErrInvalidIdentity
	}

	existing, err := s.repo.FindByID(ctx, ident.ID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		metrics.ProfileOperationsTotal.WithLabelValues("create", "error").Inc()
		return nil, wrapProfileErr("create profile", err)
	}
	if existing != nil {
		metrics.ProfileOperationsTotal.WithLabelValues("create", "conflict").Inc()
		return nil, domain.ErrProfileExists
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	user := &domain.User{
		ID:        ident.ID,
		Email:     ident.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		DOB:       toDate(input.DOB),
		Role:      role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("identity_id", ident.ID).Msg("failed to create profile")
		metrics.ProfileOperationsTotal.WithLabelValues("create", "error").Inc()
		return nil, wrapProfileErr("create profile", err)
	}

	s.log.Info().Str("identity_id", created.ID).Str("email", created.Email).Msg("profile created")
	metrics.ProfileOperationsTotal.WithLabelValues("create", "ok").Inc()
	return created, nil
}

// Get returns the caller's profile row.
func (s *ProfileService) Get(ctx context.Context, identityID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, identityID)
	if err != nil {
		metrics.ProfileOperationsTotal.WithLabelValues("get", outcomeLabel(err)).Inc()
		return nil, wrapProfileErr("get profile", err)
	}
	metrics.ProfileOperationsTotal.WithLabelValues("get", "ok").Inc()
	return user, nil
}

// Update applies a sparse merge: only fields present in input overwrite the
// stored row, everything else keeps its current value. The updated-at
// timestamp moves even when the field set is empty.
func (s *ProfileService) Update(ctx context.Context, identityID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, identityID)
	if err != nil {
		metrics.ProfileOperationsTotal.WithLabelValues("update", outcomeLabel(err)).Inc()
		return nil, wrapProfileErr("update profile", err)
	}

	applyProfileUpdate(user, input)

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("identity_id", identityID).Msg("failed to update profile")
		metrics.ProfileOperationsTotal.WithLabelValues("update", "error").Inc()
		return nil, wrapProfileErr("update profile", err)
	}

	s.log.Info().Str("identity_id", identityID).Msg("profile updated")
	metrics.ProfileOperationsTotal.WithLabelValues("update", "ok").Inc()
	return updated, nil
}

// Delete removes the caller's profile row permanently.
func (s *ProfileService) Delete(ctx context.Context, identityID string) error {
	if err := s.repo.Delete(ctx, identityID); err != nil {
		metrics.ProfileOperationsTotal.WithLabelValues("delete", outcomeLabel(err)).Inc()
		return wrapProfileErr("delete profile", err)
	}

	s.log.Info().Str("identity_id", identityID).Msg("profile deleted")
	metrics.ProfileOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return nil
}

// applyProfileUpdate merges the sparse input into the stored row, field by
// field. Absent (nil) fields never touch the stored value.
func applyProfileUpdate(u *domain.User, in ports.UpdateProfileInput) {
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if in.DOB != nil {
		u.DOB = toDate(in.DOB)
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.ProfileImage != nil {
		u.ProfileImage = in.ProfileImage
	}
	if in.Address != nil {
		u.Address = in.Address
	}
	if in.City != nil {
		u.City = in.City
	}
	if in.State != nil {
		u.State = in.State
	}
}

// wrapProfileErr re-raises domain errors unchanged and wraps everything else
// so that persistence failures surface as internal errors without masking
// deliberate domain outcomes.
func wrapProfileErr(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrProfileExists),
		errors.Is(err, domain.ErrInvalidIdentity):
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrProfileExists):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidIdentity):
		return "invalid"
	}
	return "error"
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}
