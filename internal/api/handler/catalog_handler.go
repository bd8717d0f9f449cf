package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fastbites/fastbites-api/internal/core/ports"
)

// CatalogHandler handles the public, read-only catalog routes.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListRestaurants handles GET /menu/restaurants.
//
// @Summary      List restaurants
// @Tags         menu
// @Produce      json
// @Param        limit   query     int  false  "Page size (default 10)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {array}   restaurantResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /menu/restaurants [get]
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return err
	}

	restaurants, err := h.service.ListRestaurants(c.Request().Context(), ports.ListRestaurantsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRestaurantResponses(restaurants))
}

// GetRestaurant handles GET /menu/restaurants/:id.
//
// @Summary      Get a restaurant by id
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Restaurant id (uuid)"
// @Success      200  {object}  restaurantResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /menu/restaurants/{id} [get]
func (h *CatalogHandler) GetRestaurant(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	restaurant, err := h.service.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRestaurantResponse(*restaurant))
}

// ListMenuItems handles GET /menu/items. Only available items are listed.
//
// @Summary      List available menu items with restaurant names
// @Tags         menu
// @Produce      json
// @Param        limit          query     int     false  "Page size (default 100)"
// @Param        offset         query     int     false  "Rows to skip"
// @Param        restaurant_id  query     string  false  "Filter by restaurant (uuid)"
// @Success      200            {array}   menuItemResponse
// @Failure      400            {object}  errorResponse
// @Failure      500            {object}  errorResponse
// @Router       /menu/items [get]
func (h *CatalogHandler) ListMenuItems(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return err
	}

	restaurantID := c.QueryParam("restaurant_id")
	if restaurantID != "" {
		if _, err := uuid.Parse(restaurantID); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant_id")
		}
	}

	items, err := h.service.ListMenuItems(c.Request().Context(), ports.ListMenuItemsInput{
		Limit:        limit,
		Offset:       offset,
		RestaurantID: restaurantID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// GetMenuItem handles GET /menu/items/:id. Availability is not filtered
// here: an unavailable item is still retrievable by direct id lookup.
//
// @Summary      Get a menu item by id with its restaurant name
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Menu item id (uuid)"
// @Success      200  {object}  menuItemResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /menu/items/{id} [get]
func (h *CatalogHandler) GetMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.service.GetMenuItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// queryInt parses an optional integer query parameter; absent means zero
// (the service applies its own defaults).
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return n, nil
}

func pathUUID(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return raw, nil
}
