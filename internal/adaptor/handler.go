package adaptor

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"
)

type Handler struct {
	Restaurant *RestaurantHandler
	Booking    *BookingHandler
	Payment    *PaymentHandler
	Management *ManagementHandler
	Telegram   *TelegramHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Restaurant: NewRestaurantHandler(service.Restaurant, log),
		Booking:    NewBookingHandler(service.Booking, log),
		Payment:    NewPaymentHandler(service.Payment, log),
		Management: NewManagementHandler(service.Management, log),
		Telegram:   NewTelegramHandler(service.Telegram, log),
	}
}

// handleServiceError maps service errors to HTTP responses by message class.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "forbidden"):
		log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "duplicate"),
		strings.Contains(errMsg, "not in restaurant"),
		strings.Contains(errMsg, "has no paid payment"),
		strings.Contains(errMsg, "gateway rejected"):
		log.Warn(operation+" failed - bad request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
