package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
)

// AccessService gates restaurant-scoped operations. A manager passes only
// for a restaurant they manage; an administrator passes when their manager
// manages the target restaurant. Anyone else is denied.
type AccessService interface {
	AuthorizeRestaurant(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID uuid.UUID) error
}

type accessService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAccessService(repo *repository.Repository, log *zap.Logger) AccessService {
	return &accessService{
		repo: repo,
		log:  log.With(zap.String("service", "access")),
	}
}

func (s *accessService) AuthorizeRestaurant(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID uuid.UUID) error {
	switch role {
	case entity.RoleManager:
		exists, err := s.repo.Manager.ExistsByUserAndRestaurant(ctx, userID, restaurantID)
		if err != nil {
			return fmt.Errorf("check manager access: %w", err)
		}
		if !exists {
			s.log.Warn("Manager access denied",
				zap.String("user_id", userID.String()),
				zap.String("restaurant_id", restaurantID.String()),
			)
			return fmt.Errorf("forbidden: not a manager of restaurant %s", restaurantID.String())
		}
		return nil

	case entity.RoleAdministrator:
		admin, err := s.repo.Administrator.FindByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("check administrator access: %w", err)
		}
		if admin == nil || admin.ManagerID == nil {
			s.log.Warn("Administrator access denied - no manager link",
				zap.String("user_id", userID.String()),
			)
			return fmt.Errorf("forbidden: administrator %s has no manager link", userID.String())
		}

		manager, err := s.repo.Manager.FindByID(ctx, *admin.ManagerID)
		if err != nil {
			return fmt.Errorf("resolve administrator's manager: %w", err)
		}
		if manager == nil || manager.RestaurantID != restaurantID {
			s.log.Warn("Administrator access denied - wrong restaurant",
				zap.String("user_id", userID.String()),
				zap.String("restaurant_id", restaurantID.String()),
			)
			return fmt.Errorf("forbidden: administrator %s not linked to restaurant %s", userID.String(), restaurantID.String())
		}
		return nil

	default:
		return fmt.Errorf("forbidden: role %s cannot manage restaurant %s", role, restaurantID.String())
	}
}
