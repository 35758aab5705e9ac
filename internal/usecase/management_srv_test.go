package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/dto/request"
)

func TestCreateManagerAsAdministrator(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)

	access := NewAccessService(repo, zap.NewNop())
	svc := NewManagementService(repo, access, zap.NewNop())

	req := &request.CreateManagerRequest{
		UserID:      uuid.NewString(),
		PhoneNumber: "+79990001122",
	}

	resp, err := svc.CreateManager(context.Background(), uuid.New(), entity.RoleAdministrator, restaurant.ID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, req.UserID, resp.UserID)
	assert.Equal(t, restaurant.ID.String(), resp.RestaurantID)

	// A second appointment of the same user for the same restaurant is refused
	_, err = svc.CreateManager(context.Background(), uuid.New(), entity.RoleAdministrator, restaurant.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")
}

func TestCreateManagerForbiddenForCustomer(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)

	access := NewAccessService(repo, zap.NewNop())
	svc := NewManagementService(repo, access, zap.NewNop())

	_, err := svc.CreateManager(context.Background(), uuid.New(), entity.RoleCustomer, restaurant.ID.String(), &request.CreateManagerRequest{
		UserID:      uuid.NewString(),
		PhoneNumber: "+79990001122",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestCreateAdministratorUnderManager(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)

	managerUserID := uuid.New()
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       managerUserID,
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	access := NewAccessService(repo, zap.NewNop())
	svc := NewManagementService(repo, access, zap.NewNop())

	resp, err := svc.CreateAdministrator(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String(), &request.CreateAdministratorRequest{
		UserID:    uuid.NewString(),
		ManagerID: manager.ID.String(),
		Title:     "Shift lead",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ManagerID)
	assert.Equal(t, manager.ID.String(), *resp.ManagerID)
}

func TestCreateAdministratorManagerMismatch(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	other := seedRestaurant(t, repo)

	// Manager belongs to a different restaurant than the one in the path
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       uuid.New(),
		RestaurantID: other.ID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	access := NewAccessService(repo, zap.NewNop())
	svc := NewManagementService(repo, access, zap.NewNop())

	_, err := svc.CreateAdministrator(context.Background(), uuid.New(), entity.RoleAdministrator, restaurant.ID.String(), &request.CreateAdministratorRequest{
		UserID:    uuid.NewString(),
		ManagerID: manager.ID.String(),
		Title:     "Shift lead",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in restaurant")
}

func TestDeleteAdministrator(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)

	admin := &entity.Administrator{
		Base:   entity.Base{ID: uuid.New()},
		UserID: uuid.New(),
	}
	require.NoError(t, repo.Administrator.Create(context.Background(), admin))

	access := NewAccessService(repo, zap.NewNop())
	svc := NewManagementService(repo, access, zap.NewNop())

	err := svc.DeleteAdministrator(context.Background(), uuid.New(), entity.RoleAdministrator, restaurant.ID.String(), admin.ID.String())
	require.NoError(t, err)

	found, err := repo.Administrator.FindByUserID(context.Background(), admin.UserID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
