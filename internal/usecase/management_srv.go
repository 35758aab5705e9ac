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

type ManagementService interface {
	CreateManager(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string, req *request.CreateManagerRequest) (*response.ManagerResponse, error)
	GetManagers(ctx context.Context) ([]response.ManagerResponse, error)
	CreateAdministrator(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string, req *request.CreateAdministratorRequest) (*response.AdministratorResponse, error)
	DeleteAdministrator(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID, adminID string) error
}

type managementService struct {
	repo   *repository.Repository
	access AccessService
	log    *zap.Logger
}

func NewManagementService(repo *repository.Repository, access AccessService, log *zap.Logger) ManagementService {
	return &managementService{
		repo:   repo,
		access: access,
		log:    log.With(zap.String("service", "management")),
	}
}

// authorizeStaff lets administrators through unconditionally and managers
// through for their own restaurant only, mirroring the role scheme where an
// administrator outranks a manager for staff changes.
func (s *managementService) authorizeStaff(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID uuid.UUID) error {
	if role == entity.RoleAdministrator {
		return nil
	}
	if role == entity.RoleManager {
		return s.access.AuthorizeRestaurant(ctx, userID, role, restaurantID)
	}
	return fmt.Errorf("forbidden: role %s cannot manage staff", role)
}

func (s *managementService) CreateManager(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string, req *request.CreateManagerRequest) (*response.ManagerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create manager validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	if err := s.authorizeStaff(ctx, userID, role, restaurantUUID); err != nil {
		return nil, err
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil || restaurant == nil {
		return nil, fmt.Errorf("restaurant %s not found", restaurantID)
	}

	managerUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	// One user holds at most one manager role per restaurant.
	exists, err := s.repo.Manager.ExistsByUserAndRestaurant(ctx, managerUserID, restaurantUUID)
	if err != nil {
		return nil, fmt.Errorf("check existing manager: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("user %s is already a manager of restaurant %s", req.UserID, restaurantID)
	}

	now := time.Now()
	manager := &entity.Manager{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       managerUserID,
		RestaurantID: restaurantUUID,
		PhoneNumber:  req.PhoneNumber,
		HireDate:     now,
	}

	if err := s.repo.Manager.Create(ctx, manager); err != nil {
		return nil, fmt.Errorf("create manager: %w", err)
	}

	s.log.Info("Manager created",
		zap.String("manager_id", manager.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("restaurant_id", restaurantID),
	)

	resp := response.ManagerToResponse(manager)
	return &resp, nil
}

func (s *managementService) GetManagers(ctx context.Context) ([]response.ManagerResponse, error) {
	managers, err := s.repo.Manager.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get managers: %w", err)
	}

	responses := make([]response.ManagerResponse, len(managers))
	for i, manager := range managers {
		responses[i] = response.ManagerToResponse(manager)
	}

	return responses, nil
}

func (s *managementService) CreateAdministrator(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID string, req *request.CreateAdministratorRequest) (*response.AdministratorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create administrator validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	if err := s.authorizeStaff(ctx, userID, role, restaurantUUID); err != nil {
		return nil, err
	}

	managerID, err := uuid.Parse(req.ManagerID)
	if err != nil {
		return nil, fmt.Errorf("invalid manager ID format %s: %w", req.ManagerID, err)
	}

	manager, err := s.repo.Manager.FindByID(ctx, managerID)
	if err != nil || manager == nil {
		return nil, fmt.Errorf("manager %s not found", req.ManagerID)
	}
	if manager.RestaurantID != restaurantUUID {
		return nil, fmt.Errorf("manager %s not in restaurant %s", req.ManagerID, restaurantID)
	}

	adminUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	now := time.Now()
	admin := &entity.Administrator{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      adminUserID,
		ManagerID:   &managerID,
		Title:       req.Title,
		PhoneNumber: req.PhoneNumber,
		HireDate:    now,
	}

	if err := s.repo.Administrator.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create administrator: %w", err)
	}

	s.log.Info("Administrator created",
		zap.String("administrator_id", admin.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("restaurant_id", restaurantID),
	)

	resp := response.AdministratorToResponse(admin)
	return &resp, nil
}

func (s *managementService) DeleteAdministrator(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID, adminID string) error {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	if err := s.authorizeStaff(ctx, userID, role, restaurantUUID); err != nil {
		return err
	}

	id, err := uuid.Parse(adminID)
	if err != nil {
		return fmt.Errorf("invalid administrator ID format %s: %w", adminID, err)
	}

	if err := s.repo.Administrator.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete administrator %s: %w", adminID, err)
	}

	return nil
}
