package request

type CreateTelegramUserRequest struct {
	TelegramID  string `json:"user_id" validate:"required,max=20"`
	FirstName   string `json:"first_name" validate:"omitempty,max=50"`
	LastName    string `json:"last_name" validate:"omitempty,max=50"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=14"`
	Username    string `json:"username" validate:"omitempty,max=50"`
}
