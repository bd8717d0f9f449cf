package ports

import (
	"context"

	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// ListRestaurantsInput carries pagination for the restaurant list.
// Zero values fall back to the service defaults.
type ListRestaurantsInput struct {
	Limit  int
	Offset int
}

// ListMenuItemsInput carries pagination and the optional restaurant filter.
type ListMenuItemsInput struct {
	Limit        int
	Offset       int
	RestaurantID string
}

// CatalogService defines the public, read-only catalog use cases.
type CatalogService interface {
	ListRestaurants(ctx context.Context, input ListRestaurantsInput) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListMenuItems(ctx context.Context, input ListMenuItemsInput) ([]domain.MenuItemView, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItemView, error)
}
