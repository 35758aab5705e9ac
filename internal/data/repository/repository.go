package repository

import (
	"go.uber.org/zap"

	"restaurant-booking/pkg/database"
)

type Repository struct {
	Restaurant    RestaurantRepository
	Room          RoomRepository
	Menu          MenuRepository
	Booking       BookingRepository
	OrderItem     OrderItemRepository
	Payment       PaymentRepository
	Manager       ManagerRepository
	Administrator AdministratorRepository
	TelegramUser  TelegramUserRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Restaurant:    NewRestaurantRepository(db, log),
		Room:          NewRoomRepository(db, log),
		Menu:          NewMenuRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		OrderItem:     NewOrderItemRepository(db, log),
		Payment:       NewPaymentRepository(db, log),
		Manager:       NewManagerRepository(db, log),
		Administrator: NewAdministratorRepository(db, log),
		TelegramUser:  NewTelegramUserRepository(db, log),
	}
}
