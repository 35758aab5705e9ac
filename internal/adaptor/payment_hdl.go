package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Capture handles POST /api/pay
// An optional Idempotency-Key header guards against double charges on retry.
func (h *PaymentHandler) Capture(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	var req request.CapturePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")

	payment, err := h.service.Capture(r.Context(), userID.String(), idempotencyKey, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "capture payment")
		return
	}

	utils.ResponseCreated(w, "Payment captured successfully", payment)
}

// Refund handles POST /api/pay-back
func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	var req request.RefundPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")

	payment, err := h.service.Refund(r.Context(), userID.String(), idempotencyKey, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "refund payment")
		return
	}

	utils.ResponseCreated(w, "Payment refunded successfully", payment)
}
