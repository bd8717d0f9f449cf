package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fastbites/fastbites-api/internal/core/domain"
	"github.com/fastbites/fastbites-api/internal/core/ports"
)

// menuItemColumns is the projection shared by the item list and the single
// item lookup: the item's own columns plus the joined restaurant name.
const menuItemColumns = "menu_items.id, menu_items.name, menu_items.description, " +
	"menu_items.price, menu_items.image_url, menu_items.is_available, " +
	"menu_items.restaurant_id, menu_items.delivery_time, " +
	"restaurants.name AS restaurant_name"

// CatalogRepository reads the externally curated restaurants/menu_items
// tables. It never writes to them.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListRestaurants(ctx context.Context, limit, offset int) ([]domain.Restaurant, error) {
	if r.db == nil {
		return nil, domain.ErrDatabaseUnavailable
	}

	restaurants := []domain.Restaurant{}
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *CatalogRepository) FindRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	if r.db == nil {
		return nil, domain.ErrDatabaseUnavailable
	}

	var restaurant domain.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// ListMenuItems returns available items joined with their restaurant's name.
// The LEFT JOIN keeps items without a restaurant; their restaurant_name
// comes back NULL.
func (r *CatalogRepository) ListMenuItems(ctx context.Context, filter ports.MenuItemFilter) ([]domain.MenuItemView, error) {
	if r.db == nil {
		return nil, domain.ErrDatabaseUnavailable
	}

	q := r.db.WithContext(ctx).
		Table("menu_items").
		Select(menuItemColumns).
		Joins("LEFT JOIN restaurants ON restaurants.id = menu_items.restaurant_id").
		Where("menu_items.is_available = ?", true)

	if filter.RestaurantID != "" {
		q = q.Where("menu_items.restaurant_id = ?", filter.RestaurantID)
	}

	items := []domain.MenuItemView{}
	err := q.Order("menu_items.name ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindMenuItem looks up a single item by id with the same join. No
// availability filter: an unavailable item is still retrievable here.
func (r *CatalogRepository) FindMenuItem(ctx context.Context, id string) (*domain.MenuItemView, error) {
	if r.db == nil {
		return nil, domain.ErrDatabaseUnavailable
	}

	var item domain.MenuItemView
	res := r.db.WithContext(ctx).
		Table("menu_items").
		Select(menuItemColumns).
		Joins("LEFT JOIN restaurants ON restaurants.id = menu_items.restaurant_id").
		Where("menu_items.id = ?", id).
		Limit(1).
		Scan(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrMenuItemNotFound
	}
	return &item, nil
}
