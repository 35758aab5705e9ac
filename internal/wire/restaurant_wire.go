package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/adaptor"
	"restaurant-booking/pkg/middleware"
	"restaurant-booking/pkg/utils"
)

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/restaurants - List all restaurants (public)
	r.Get("/api/restaurants", restaurantHandler.GetRestaurants)

	// GET /api/restaurants/{id} - Get specific restaurant details (public)
	r.Get("/api/restaurants/{id}", restaurantHandler.GetRestaurantByID)

	// ==================== AUTHENTICATED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/restaurants - Create restaurant (any authenticated user)
		r.Post("/api/restaurants", restaurantHandler.CreateRestaurant)

		// DELETE /api/restaurants/{id} - Delete restaurant (staff of that restaurant)
		r.Delete("/api/restaurants/{id}", restaurantHandler.DeleteRestaurant)

		// GET /api/restaurants/{id}/balance - Balance read (staff of that restaurant)
		r.Get("/api/restaurants/{id}/balance", restaurantHandler.GetBalance)

		// GET /api/restaurants/{id}/statistics?start_date=&end_date= (staff)
		r.Get("/api/restaurants/{id}/statistics", restaurantHandler.GetStatistics)
	})
}
