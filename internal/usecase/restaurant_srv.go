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
	"restaurant-booking/pkg/utils"
)

type RestaurantService interface {
	CreateRestaurant(ctx context.Context, userID string, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error)
	GetRestaurants(ctx context.Context) ([]response.RestaurantResponse, error)
	GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error)
	DeleteRestaurant(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string) error

	GetBalance(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string) (*response.BalanceResponse, error)
	GetStatistics(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string, query *request.DateRangeQuery) (*response.StatisticsResponse, error)
}

type restaurantService struct {
	repo   *repository.Repository
	access AccessService
	log    *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, access AccessService, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo:   repo,
		access: access,
		log:    log.With(zap.String("service", "restaurant")),
	}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, userID string, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create restaurant validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	now := time.Now()
	restaurant := &entity.Restaurant{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AuthorID:    userUUID,
		Name:        req.Name,
		Description: req.Description,
		ServiceFee:  req.ServiceFee,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	s.log.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("name", restaurant.Name),
		zap.String("author_id", userID),
	)

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]response.RestaurantResponse, error) {
	restaurants, err := s.repo.Restaurant.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get restaurants: %w", err)
	}

	responses := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		responses[i] = response.RestaurantToResponse(restaurant)
	}

	return responses, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error) {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, id)
	if err != nil || restaurant == nil {
		return nil, fmt.Errorf("restaurant %s not found", restaurantID)
	}

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string) error {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	if err := s.access.AuthorizeRestaurant(ctx, userID, role, id); err != nil {
		return err
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, id)
	if err != nil || restaurant == nil {
		return fmt.Errorf("restaurant %s not found", restaurantID)
	}

	if err := s.repo.Restaurant.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete restaurant %s: %w", restaurantID, err)
	}

	return nil
}

func (s *restaurantService) GetBalance(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string) (*response.BalanceResponse, error) {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	if err := s.access.AuthorizeRestaurant(ctx, userID, role, id); err != nil {
		return nil, err
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, id)
	if err != nil || restaurant == nil {
		return nil, fmt.Errorf("restaurant %s not found", restaurantID)
	}

	return &response.BalanceResponse{
		RestaurantID: restaurantID,
		Balance:      restaurant.Balance,
	}, nil
}

func (s *restaurantService) GetStatistics(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string, query *request.DateRangeQuery) (*response.StatisticsResponse, error) {
	if errs := utils.ValidateStruct(query); len(errs) > 0 {
		s.log.Warn("Statistics validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	if err := s.access.AuthorizeRestaurant(ctx, userID, role, id); err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", query.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", query.StartDate, err)
	}
	endDate, err := time.Parse("2006-01-02", query.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", query.EndDate, err)
	}

	if startDate.After(endDate) {
		return nil, fmt.Errorf("invalid date range: start date cannot be after end date")
	}

	total, revenue, err := s.repo.Booking.StatsByDateRange(ctx, id, startDate, endDate)
	if err != nil {
		s.log.Error("Failed to compute statistics",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("compute statistics: %w", err)
	}

	return &response.StatisticsResponse{
		TotalBookings: total,
		TotalRevenue:  revenue,
	}, nil
}
