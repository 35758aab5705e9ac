package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/dto/response"
	"restaurant-booking/internal/events"
	"restaurant-booking/pkg/utils"
)

type TelegramService interface {
	RegisterUser(ctx context.Context, req *request.CreateTelegramUserRequest) (*response.TelegramUserResponse, error)
}

type telegramService struct {
	repo      *repository.Repository
	publisher events.Publisher
	log       *zap.Logger
}

func NewTelegramService(repo *repository.Repository, publisher events.Publisher, log *zap.Logger) TelegramService {
	return &telegramService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "telegram")),
	}
}

func (s *telegramService) RegisterUser(ctx context.Context, req *request.CreateTelegramUserRequest) (*response.TelegramUserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register telegram user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.TelegramUser.FindByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("check telegram user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("telegram user %s already exists", req.TelegramID)
	}

	user := &entity.TelegramUser{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TelegramID:  req.TelegramID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Username:    req.Username,
	}

	if err := s.repo.TelegramUser.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create telegram user: %w", err)
	}

	s.log.Info("Telegram user registered",
		zap.String("telegram_id", user.TelegramID),
		zap.String("username", user.Username),
	)

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.QueueTelegramUserCreated, events.TelegramUserCreatedEvent{
			TelegramID:  user.TelegramID,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			PhoneNumber: user.PhoneNumber,
			Username:    user.Username,
			CreatedAt:   user.CreatedAt,
		})
	}

	resp := response.TelegramUserToResponse(user)
	return &resp, nil
}
