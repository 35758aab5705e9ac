package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/adaptor"
	"restaurant-booking/pkg/middleware"
	"restaurant-booking/pkg/utils"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/pay - Capture a payment (Idempotency-Key header supported)
		r.Post("/api/pay", paymentHandler.Capture)

		// POST /api/pay-back - Refund a payment minus the fine
		r.Post("/api/pay-back", paymentHandler.Refund)
	})
}
