package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"
)

type TelegramHandler struct {
	service usecase.TelegramService
	log     *zap.Logger
}

func NewTelegramHandler(service usecase.TelegramService, log *zap.Logger) *TelegramHandler {
	return &TelegramHandler{
		service: service,
		log:     log.With(zap.String("handler", "telegram")),
	}
}

// RegisterUser handles POST /api/telegram/users (public, called by the bot)
func (h *TelegramHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTelegramUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.RegisterUser(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register telegram user")
		return
	}

	utils.ResponseCreated(w, "Telegram user registered successfully", user)
}
