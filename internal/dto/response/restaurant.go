package response

import (
	"time"

	"restaurant-booking/internal/data/entity"
)

type RestaurantResponse struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ServiceFee  int       `json:"service_fee"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

type BalanceResponse struct {
	RestaurantID string  `json:"restaurant_id"`
	Balance      float64 `json:"balance"`
}

type StatisticsResponse struct {
	TotalBookings int64   `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
}

func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          restaurant.ID.String(),
		AuthorID:    restaurant.AuthorID.String(),
		Name:        restaurant.Name,
		Description: restaurant.Description,
		ServiceFee:  restaurant.ServiceFee,
		Address:     restaurant.Address,
		Phone:       restaurant.Phone,
		Email:       restaurant.Email,
		CreatedAt:   restaurant.CreatedAt,
	}
}
