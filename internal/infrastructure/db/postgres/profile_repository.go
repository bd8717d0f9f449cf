package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// ProfileRepository persists user profiles in the users table.
// A nil db means persistence was disabled at startup (no DATABASE_URL);
// every call then fails with domain.ErrDatabaseUnavailable.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if r.db == nil {
		return nil, domain.ErrDatabaseUnavailable
	}

	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *ProfileRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if r.db == nil {
		return nil, domain.ErrDatabaseUnavailable
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *ProfileRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if r.db == nil {
		return nil, domain.ErrDatabaseUnavailable
	}

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return domain.ErrDatabaseUnavailable
	}

	res := r.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
