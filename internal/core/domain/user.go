package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

const (
	RoleCustomer   = "customer"
	RoleRider      = "rider"
	RoleRestaurant = "restaurant"
)

var ErrUnauthenticated = errors.New("unauthenticated")
var ErrInvalidIdentity = errors.New("invalid identity")
var ErrProfileExists = errors.New("profile already exists")
var ErrProfileNotFound = errors.New("profile not found")
var ErrDatabaseUnavailable = errors.New("database unavailable")

// ValidRole reports whether role is one of the known profile roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleRider, RoleRestaurant:
		return true
	}
	return false
}

// Identity is the caller identity resolved from a bearer token. The identity
// provider owns the account; this service only keeps the profile row keyed by ID.
type Identity struct {
	ID            string
	Email         string
	Phone         string
	Role          string
	EmailVerified bool
}

// User is an application profile linked 1:1 to a provider-issued identity.
// The primary key is assigned by the identity provider, never generated here.
type User struct {
	ID           string          `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string          `json:"email" gorm:"size:255;not null"`
	FirstName    string          `json:"first_name" gorm:"size:100;not null"`
	LastName     string          `json:"last_name" gorm:"size:100;not null"`
	Phone        *string         `json:"phone,omitempty" gorm:"size:20"`
	DOB          *datatypes.Date `json:"dob,omitempty" gorm:"column:dob"`
	GoogleID     *string         `json:"google_id,omitempty" gorm:"size:255;uniqueIndex"`
	Role         string          `json:"role" gorm:"size:20;default:customer"`
	ProfileImage *string         `json:"profile_image,omitempty" gorm:"type:text"`
	Address      *string         `json:"address,omitempty" gorm:"type:text"`
	City         *string         `json:"city,omitempty" gorm:"size:100"`
	State        *string         `json:"state,omitempty" gorm:"size:100"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }
