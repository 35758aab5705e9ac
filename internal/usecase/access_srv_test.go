package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
)

func TestAuthorizeRestaurantManager(t *testing.T) {
	repo, _ := newTestRepository()
	access := NewAccessService(repo, zap.NewNop())

	restaurantID := uuid.New()
	managerUserID := uuid.New()
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       managerUserID,
		RestaurantID: restaurantID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	// Manager of the restaurant passes
	err := access.AuthorizeRestaurant(context.Background(), managerUserID, entity.RoleManager, restaurantID)
	assert.NoError(t, err)

	// Same role against another restaurant is denied
	err = access.AuthorizeRestaurant(context.Background(), managerUserID, entity.RoleManager, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	// A user who merely claims the manager role is denied
	err = access.AuthorizeRestaurant(context.Background(), uuid.New(), entity.RoleManager, restaurantID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestAuthorizeRestaurantAdministrator(t *testing.T) {
	repo, _ := newTestRepository()
	access := NewAccessService(repo, zap.NewNop())

	restaurantID := uuid.New()
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       uuid.New(),
		RestaurantID: restaurantID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	adminUserID := uuid.New()
	admin := &entity.Administrator{
		Base:      entity.Base{ID: uuid.New()},
		UserID:    adminUserID,
		ManagerID: &manager.ID,
	}
	require.NoError(t, repo.Administrator.Create(context.Background(), admin))

	// Administrator resolves transitively through their manager
	err := access.AuthorizeRestaurant(context.Background(), adminUserID, entity.RoleAdministrator, restaurantID)
	assert.NoError(t, err)

	// The same administrator cannot touch a different restaurant
	err = access.AuthorizeRestaurant(context.Background(), adminUserID, entity.RoleAdministrator, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	// An administrator without a record is denied
	err = access.AuthorizeRestaurant(context.Background(), uuid.New(), entity.RoleAdministrator, restaurantID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestAuthorizeRestaurantCustomerDenied(t *testing.T) {
	repo, _ := newTestRepository()
	access := NewAccessService(repo, zap.NewNop())

	err := access.AuthorizeRestaurant(context.Background(), uuid.New(), entity.RoleCustomer, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestRoleFromStatusClaim(t *testing.T) {
	assert.Equal(t, entity.RoleManager, entity.RoleFromStatusClaim(3))
	assert.Equal(t, entity.RoleAdministrator, entity.RoleFromStatusClaim(4))
	assert.Equal(t, entity.RoleCustomer, entity.RoleFromStatusClaim(0))
	assert.Equal(t, entity.RoleCustomer, entity.RoleFromStatusClaim(7))

	assert.True(t, entity.RoleManager.IsStaff())
	assert.True(t, entity.RoleAdministrator.IsStaff())
	assert.False(t, entity.RoleCustomer.IsStaff())
}
