package entity

type TelegramUser struct {
	BaseSimple
	TelegramID  string `db:"telegram_id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	PhoneNumber string `db:"phone_number"`
	Username    string `db:"username"`
}
