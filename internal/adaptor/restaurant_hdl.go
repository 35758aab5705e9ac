package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"
)

type RestaurantHandler struct {
	service usecase.RestaurantService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		log:     log.With(zap.String("handler", "restaurant")),
	}
}

// GetRestaurants handles GET /api/restaurants (public)
func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.GetRestaurants(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetRestaurantByID handles GET /api/restaurants/{id} (public)
func (h *RestaurantHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	restaurant, err := h.service.GetRestaurantByID(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(h.log, w, err, "get restaurant by ID")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// CreateRestaurant handles POST /api/restaurants
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	var req request.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	restaurant, err := h.service.CreateRestaurant(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create restaurant")
		return
	}

	utils.ResponseCreated(w, "Restaurant created successfully", restaurant)
}

// DeleteRestaurant handles DELETE /api/restaurants/{id}
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}
	role := utils.GetRoleFromContext(r.Context())

	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	if err := h.service.DeleteRestaurant(r.Context(), userID, role, restaurantID); err != nil {
		handleServiceError(h.log, w, err, "delete restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetBalance handles GET /api/restaurants/{id}/balance (staff only)
func (h *RestaurantHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}
	role := utils.GetRoleFromContext(r.Context())

	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	balance, err := h.service.GetBalance(r.Context(), userID, role, restaurantID)
	if err != nil {
		handleServiceError(h.log, w, err, "get balance")
		return
	}

	utils.ResponseSuccess(w, "success", balance)
}

// GetStatistics handles GET /api/restaurants/{id}/statistics (staff only)
// Requires query params: ?start_date=2024-01-01&end_date=2024-01-31
func (h *RestaurantHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}
	role := utils.GetRoleFromContext(r.Context())

	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	query := r.URL.Query()
	rangeQuery := &request.DateRangeQuery{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	stats, err := h.service.GetStatistics(r.Context(), userID, role, restaurantID, rangeQuery)
	if err != nil {
		handleServiceError(h.log, w, err, "get statistics")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
