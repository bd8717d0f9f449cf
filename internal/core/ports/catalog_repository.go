package ports

import (
	"context"

	"github.com/fastbites/fastbites-api/internal/core/domain"
)

// MenuItemFilter carries the query parameters for listing menu items.
// The repository always restricts the list to available items; direct id
// lookup does not (an unavailable item stays retrievable by id).
type MenuItemFilter struct {
	RestaurantID string // empty = all restaurants
	Limit        int
	Offset       int
}

// CatalogRepository defines read-only persistence operations over the
// externally curated restaurant/menu-item dataset.
type CatalogRepository interface {
	ListRestaurants(ctx context.Context, limit, offset int) ([]domain.Restaurant, error)
	FindRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListMenuItems(ctx context.Context, filter MenuItemFilter) ([]domain.MenuItemView, error)
	FindMenuItem(ctx context.Context, id string) (*domain.MenuItemView, error)
}
