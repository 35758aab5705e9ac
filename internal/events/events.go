package events

import "time"

// Queue names shared by the API server and the notifier binary.
const (
	QueueBookingCreated      = "booking.created"
	QueueTelegramUserCreated = "telegram.user.created"
)

type BookingCreatedEvent struct {
	BookingID     string    `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	RestaurantID  string    `json:"restaurant_id"`
	ClientName    string    `json:"client_name"`
	PlannedFrom   time.Time `json:"planned_from"`
	PlannedTo     time.Time `json:"planned_to"`
	TotalSum      float64   `json:"total_sum"`
	CreatedAt     time.Time `json:"created_at"`
}

type TelegramUserCreatedEvent struct {
	TelegramID  string    `json:"telegram_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}
