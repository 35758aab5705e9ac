package wire

import (
	"github.com/go-chi/chi/v5"

	"restaurant-booking/internal/adaptor"
)

func wireTelegram(r chi.Router, telegramHandler *adaptor.TelegramHandler) {
	// POST /api/telegram/users - Register a Telegram user (called by the bot)
	r.Post("/api/telegram/users", telegramHandler.RegisterUser)
}
