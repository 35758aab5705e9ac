package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/restaurants/{id}/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID.String(), restaurantID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// GetBookings handles GET /api/restaurants/{id}/bookings
// Accepts an optional ?date=2024-01-16 query, defaulting to today.
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	bookings, err := h.service.GetBookingsByDate(r.Context(), restaurantID, date)
	if err != nil {
		handleServiceError(h.log, w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/restaurants/{id}/bookings/{bookingID}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	bookingID := chi.URLParam(r, "bookingID")
	if restaurantID == "" || bookingID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID and booking ID are required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), restaurantID, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/restaurants/{id}/bookings/{bookingID}/cancel (staff only)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}
	role := utils.GetRoleFromContext(r.Context())

	restaurantID := chi.URLParam(r, "id")
	bookingID := chi.URLParam(r, "bookingID")
	if restaurantID == "" || bookingID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID and booking ID are required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), userID, role, restaurantID, bookingID); err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// DeleteBooking handles DELETE /api/restaurants/{id}/bookings/{bookingID} (staff only)
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}
	role := utils.GetRoleFromContext(r.Context())

	restaurantID := chi.URLParam(r, "id")
	bookingID := chi.URLParam(r, "bookingID")
	if restaurantID == "" || bookingID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID and booking ID are required", nil)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), userID, role, restaurantID, bookingID); err != nil {
		handleServiceError(h.log, w, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
