package handler

import (
	"github.com/fastbites/fastbites-api/internal/core/domain"
)

func toRestaurantResponse(r domain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		ImageURL:  r.ImageURL,
		Rating:    r.Rating,
		IsOpen:    r.IsOpen,
		CreatedAt: r.CreatedAt,
	}
}

func toRestaurantResponses(rs []domain.Restaurant) []restaurantResponse {
	out := make([]restaurantResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRestaurantResponse(r))
	}
	return out
}

func toMenuItemResponse(v domain.MenuItemView) menuItemResponse {
	return menuItemResponse{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		Price:          v.Price,
		ImageURL:       v.ImageURL,
		IsAvailable:    v.IsAvailable,
		RestaurantID:   v.RestaurantID,
		RestaurantName: v.RestaurantName,
		DeliveryTime:   v.DeliveryTime,
	}
}

func toMenuItemResponses(vs []domain.MenuItemView) []menuItemResponse {
	out := make([]menuItemResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toMenuItemResponse(v))
	}
	return out
}
