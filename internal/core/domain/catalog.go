package domain

import (
	"errors"
	"time"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")
var ErrMenuItemNotFound = errors.New("menu item not found")

// Restaurant is catalog reference data. Rows are owned by an external
// management process; this service only reads them.
type Restaurant struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"type:text;not null"`
	Address   *string    `json:"address,omitempty" gorm:"type:text"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	ImageURL  *string    `json:"image_url,omitempty" gorm:"type:text"`
	Rating    *float64   `json:"rating,omitempty"`
	IsOpen    *bool      `json:"is_open,omitempty" gorm:"default:true"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func (Restaurant) TableName() string { return "restaurants" }

// MenuItem is an orderable item. RestaurantID may be nil (unassigned item).
type MenuItem struct {
	ID           string     `json:"id" gorm:"type:uuid;primaryKey"`
	MenuID       *string    `json:"menu_id,omitempty" gorm:"type:uuid"`
	RestaurantID *string    `json:"restaurant_id,omitempty" gorm:"type:uuid"`
	Name         string     `json:"name" gorm:"type:text;not null"`
	Description  *string    `json:"description,omitempty" gorm:"type:text"`
	Price        float64    `json:"price" gorm:"not null"`
	ImageURL     *string    `json:"image_url,omitempty" gorm:"type:text"`
	IsAvailable  *bool      `json:"is_available,omitempty" gorm:"default:true"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	DeliveryTime *int       `json:"delivery_time,omitempty"` // minutes
}

func (MenuItem) TableName() string { return "menu_items" }

// MenuItemView is a menu item joined with the owning restaurant's name.
// RestaurantName is nil when the item has no restaurant or the restaurant
// row is missing (LEFT JOIN semantics).
type MenuItemView struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	Price          float64 `json:"price"`
	ImageURL       *string `json:"image_url"`
	IsAvailable    *bool   `json:"is_available"`
	RestaurantID   *string `json:"restaurant_id"`
	RestaurantName *string `json:"restaurant_name"`
	DeliveryTime   *int    `json:"delivery_time"`
}
