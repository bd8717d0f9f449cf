package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fastbites/fastbites-api/internal/api/metrics"
	"github.com/fastbites/fastbites-api/internal/core/domain"
	"github.com/fastbites/fastbites-api/internal/core/ports"
)

const (
	defaultRestaurantLimit = 10
	defaultMenuItemLimit   = 100
)

// CatalogService exposes the public, read-only restaurant/menu-item views.
// The dataset is curated by an external management process; nothing here
// writes to it.
type CatalogService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// ListRestaurants returns a page of restaurants ordered by name.
func (s *CatalogService) ListRestaurants(ctx context.Context, input ports.ListRestaurantsInput) ([]domain.Restaurant, error) {
	limit, offset := normalizePage(input.Limit, input.Offset, defaultRestaurantLimit)

	metrics.CatalogQueriesTotal.WithLabelValues("list_restaurants").Inc()
	restaurants, err := s.repo.ListRestaurants(ctx, limit, offset)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list restaurants")
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

// GetRestaurant returns a single restaurant by id.
func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	metrics.CatalogQueriesTotal.WithLabelValues("get_restaurant").Inc()
	restaurant, err := s.repo.FindRestaurant(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Str("restaurant_id", id).Msg("failed to get restaurant")
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return restaurant, nil
}

// ListMenuItems returns a page of available items ordered by name, each
// joined with its restaurant's name. A filter with no matches yields an
// empty page, not an error.
func (s *CatalogService) ListMenuItems(ctx context.Context, input ports.ListMenuItemsInput) ([]domain.MenuItemView, error) {
	limit, offset := normalizePage(input.Limit, input.Offset, defaultMenuItemLimit)

	metrics.CatalogQueriesTotal.WithLabelValues("list_items").Inc()
	items, err := s.repo.ListMenuItems(ctx, ports.MenuItemFilter{
		RestaurantID: input.RestaurantID,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

// GetMenuItem returns a single item by id, joined with its restaurant's
// name. Unlike the list view, availability is not filtered here: an
// unavailable item stays retrievable by direct lookup.
func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*domain.MenuItemView, error) {
	metrics.CatalogQueriesTotal.WithLabelValues("get_item").Inc()
	item, err := s.repo.FindMenuItem(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Str("item_id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func normalizePage(limit, offset, fallback int) (int, int) {
	if limit <= 0 {
		limit = fallback
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
