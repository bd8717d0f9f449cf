package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fastbites/fastbites-api/internal/core/domain"
	"github.com/fastbites/fastbites-api/internal/core/ports"
)

type stubCatalogRepo struct {
	restaurants []domain.Restaurant
	items       []domain.MenuItemView
	failWith    error

	lastLimit  int
	lastOffset int
	lastFilter ports.MenuItemFilter
}

func (r *stubCatalogRepo) ListRestaurants(_ context.Context, limit, offset int) ([]domain.Restaurant, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.lastLimit, r.lastOffset = limit, offset
	return r.restaurants, nil
}

func (r *stubCatalogRepo) FindRestaurant(_ context.Context, id string) (*domain.Restaurant, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for i := range r.restaurants {
		if r.restaurants[i].ID == id {
			return &r.restaurants[i], nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

func (r *stubCatalogRepo) ListMenuItems(_ context.Context, filter ports.MenuItemFilter) ([]domain.MenuItemView, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.lastFilter = filter
	return r.items, nil
}

func (r *stubCatalogRepo) FindMenuItem(_ context.Context, id string) (*domain.MenuItemView, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, domain.ErrMenuItemNotFound
}

func TestCatalogService_ListRestaurants_DefaultPage(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.ListRestaurants(context.Background(), ports.ListRestaurantsInput{}); err != nil {
		t.Fatalf("ListRestaurants returned error: %v", err)
	}
	if repo.lastLimit != defaultRestaurantLimit {
		t.Fatalf("expected default limit %d, got %d", defaultRestaurantLimit, repo.lastLimit)
	}
	if repo.lastOffset != 0 {
		t.Fatalf("expected offset 0, got %d", repo.lastOffset)
	}
}

func TestCatalogService_ListRestaurants_ExplicitPage(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.ListRestaurants(context.Background(), ports.ListRestaurantsInput{Limit: 5, Offset: 20}); err != nil {
		t.Fatalf("ListRestaurants returned error: %v", err)
	}
	if repo.lastLimit != 5 || repo.lastOffset != 20 {
		t.Fatalf("page not forwarded: limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}
}

func TestCatalogService_ListRestaurants_NegativeOffsetClamped(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.ListRestaurants(context.Background(), ports.ListRestaurantsInput{Offset: -3}); err != nil {
		t.Fatalf("ListRestaurants returned error: %v", err)
	}
	if repo.lastOffset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", repo.lastOffset)
	}
}

func TestCatalogService_ListMenuItems_DefaultPage(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.ListMenuItems(context.Background(), ports.ListMenuItemsInput{}); err != nil {
		t.Fatalf("ListMenuItems returned error: %v", err)
	}
	if repo.lastFilter.Limit != defaultMenuItemLimit {
		t.Fatalf("expected default limit %d, got %d", defaultMenuItemLimit, repo.lastFilter.Limit)
	}
}

func TestCatalogService_ListMenuItems_ForwardsRestaurantFilter(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.ListMenuItems(context.Background(), ports.ListMenuItemsInput{RestaurantID: "r1"}); err != nil {
		t.Fatalf("ListMenuItems returned error: %v", err)
	}
	if repo.lastFilter.RestaurantID != "r1" {
		t.Fatalf("restaurant filter not forwarded: %+v", repo.lastFilter)
	}
}

func TestCatalogService_ListMenuItems_EmptyIsNotError(t *testing.T) {
	repo := &stubCatalogRepo{items: []domain.MenuItemView{}}
	svc := NewCatalogService(repo, zerolog.Nop())

	items, err := svc.ListMenuItems(context.Background(), ports.ListMenuItemsInput{RestaurantID: "no-such"})
	if err != nil {
		t.Fatalf("empty page must not be an error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(items))
	}
}

func TestCatalogService_GetRestaurant_NotFound(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.GetRestaurant(context.Background(), "missing"); !errors.Is(err, domain.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestCatalogService_GetMenuItem_NotFound(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.GetMenuItem(context.Background(), "missing"); !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestCatalogService_GetMenuItem_RepoErrorWrapped(t *testing.T) {
	repo := &stubCatalogRepo{failWith: errors.New("connection refused")}
	svc := NewCatalogService(repo, zerolog.Nop())

	_, err := svc.GetMenuItem(context.Background(), "m1")
	if !errors.Is(err, repo.failWith) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	if errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("repo failure must not surface as not-found: %v", err)
	}
}
