package response

import (
	"time"

	"restaurant-booking/internal/data/entity"
)

type TelegramUserResponse struct {
	ID          string    `json:"id"`
	TelegramID  string    `json:"user_id"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Username    string    `json:"username,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func TelegramUserToResponse(user *entity.TelegramUser) TelegramUserResponse {
	return TelegramUserResponse{
		ID:          user.ID.String(),
		TelegramID:  user.TelegramID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Username:    user.Username,
		CreatedAt:   user.CreatedAt,
	}
}
