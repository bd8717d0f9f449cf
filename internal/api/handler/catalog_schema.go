package handler

import "time"

// Response-only types owned by the transport layer; the JSON contract stays
// decoupled from the domain structs.

type restaurantResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   *string    `json:"address"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	ImageURL  *string    `json:"image_url"`
	Rating    *float64   `json:"rating"`
	IsOpen    *bool      `json:"is_open"`
	CreatedAt *time.Time `json:"created_at"`
}

type menuItemResponse struct {
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
