package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/adaptor"
	"restaurant-booking/pkg/middleware"
	"restaurant-booking/pkg/utils"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All booking routes require authentication
	r.Route("/api/restaurants/{id}/bookings", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST / - Create booking with order items
		r.Post("/", bookingHandler.CreateBooking)

		// GET /?date=2024-01-16 - List bookings for a day
		r.Get("/", bookingHandler.GetBookings)

		// GET /{bookingID} - Booking detail with order items
		r.Get("/{bookingID}", bookingHandler.GetBookingByID)

		// PUT /{bookingID}/cancel - Cancel booking (staff of that restaurant)
		r.Put("/{bookingID}/cancel", bookingHandler.CancelBooking)

		// DELETE /{bookingID} - Hard delete (staff of that restaurant)
		r.Delete("/{bookingID}", bookingHandler.DeleteBooking)
	})
}
