package usecase

import (
	"go.uber.org/zap"

	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/events"
	"restaurant-booking/pkg/utils"
)

type Service struct {
	Access     AccessService
	Restaurant RestaurantService
	Booking    BookingService
	Payment    PaymentService
	Management ManagementService
	Telegram   TelegramService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	gw Gateway,
	idem IdempotencyStore,
	publisher events.Publisher,
	log *zap.Logger,
) *Service {
	access := NewAccessService(repo, log)

	return &Service{
		Access:     access,
		Restaurant: NewRestaurantService(repo, access, log),
		Booking:    NewBookingService(repo, access, config, publisher, log),
		Payment:    NewPaymentService(repo, gw, idem, config, log),
		Management: NewManagementService(repo, access, log),
		Telegram:   NewTelegramService(repo, publisher, log),
	}
}
