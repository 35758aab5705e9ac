package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/dto/request"
)

func TestCreateRestaurant(t *testing.T) {
	repo, _ := newTestRepository()
	access := NewAccessService(repo, zap.NewNop())
	svc := NewRestaurantService(repo, access, zap.NewNop())

	userID := uuid.New()
	resp, err := svc.CreateRestaurant(context.Background(), userID.String(), &request.CreateRestaurantRequest{
		Name:        "La Trattoria",
		Description: "Italian food",
		ServiceFee:  5,
		Address:     "Main st. 1",
		Phone:       "+79990001122",
		Email:       "info@trattoria.example",
	})
	require.NoError(t, err)

	assert.Equal(t, userID.String(), resp.AuthorID)
	assert.Equal(t, "La Trattoria", resp.Name)

	all, err := svc.GetRestaurants(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateRestaurantValidation(t *testing.T) {
	repo, _ := newTestRepository()
	access := NewAccessService(repo, zap.NewNop())
	svc := NewRestaurantService(repo, access, zap.NewNop())

	_, err := svc.CreateRestaurant(context.Background(), uuid.NewString(), &request.CreateRestaurantRequest{
		Name:  "No Email",
		Email: "not-an-email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetBalanceRequiresStaffRole(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	restaurant.Balance = 420.5

	access := NewAccessService(repo, zap.NewNop())
	svc := NewRestaurantService(repo, access, zap.NewNop())

	// Customer role is refused outright
	_, err := svc.GetBalance(context.Background(), uuid.New(), entity.RoleCustomer, restaurant.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	// Manager of the restaurant reads the balance
	managerUserID := uuid.New()
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       managerUserID,
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	balance, err := svc.GetBalance(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 420.5, balance.Balance)
}

func TestGetStatistics(t *testing.T) {
	repo, bookingRepo := newTestRepository()
	restaurant := seedRestaurant(t, repo)

	managerUserID := uuid.New()
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       managerUserID,
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	seed := func(booked time.Time, total float64) {
		b := &entity.Booking{
			Base:         entity.Base{ID: uuid.New()},
			RestaurantID: restaurant.ID,
			BookedTime:   booked,
			TotalSum:     total,
		}
		bookingRepo.bookings[b.ID] = b
	}
	seed(time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC), 100)
	seed(time.Date(2026, 1, 20, 18, 30, 0, 0, time.UTC), 250)
	seed(time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC), 999) // outside the range

	access := NewAccessService(repo, zap.NewNop())
	svc := NewRestaurantService(repo, access, zap.NewNop())

	stats, err := svc.GetStatistics(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String(), &request.DateRangeQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, 350.0, stats.TotalRevenue)
}

func TestGetStatisticsRangeBoundariesAreInclusive(t *testing.T) {
	repo, bookingRepo := newTestRepository()
	restaurant := seedRestaurant(t, repo)

	managerUserID := uuid.New()
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       managerUserID,
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	seed := func(booked time.Time, total float64) {
		b := &entity.Booking{
			Base:         entity.Base{ID: uuid.New()},
			RestaurantID: restaurant.ID,
			BookedTime:   booked,
			TotalSum:     total,
		}
		bookingRepo.bookings[b.ID] = b
	}
	// Bookings sit exactly on the range ends
	seed(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), 100)
	seed(time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC), 20)

	access := NewAccessService(repo, zap.NewNop())
	svc := NewRestaurantService(repo, access, zap.NewNop())

	// Both boundary days count
	stats, err := svc.GetStatistics(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String(), &request.DateRangeQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-05",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, 120.0, stats.TotalRevenue)

	// The interior of the same range holds nothing
	stats, err = svc.GetStatistics(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String(), &request.DateRangeQuery{
		StartDate: "2026-01-02",
		EndDate:   "2026-01-04",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalBookings)
	assert.Equal(t, 0.0, stats.TotalRevenue)
}

func TestGetStatisticsRejectsInvertedRange(t *testing.T) {
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
	svc := NewRestaurantService(repo, access, zap.NewNop())

	_, err := svc.GetStatistics(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String(), &request.DateRangeQuery{
		StartDate: "2026-02-01",
		EndDate:   "2026-01-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot")
}

func TestDeleteRestaurantGated(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)

	access := NewAccessService(repo, zap.NewNop())
	svc := NewRestaurantService(repo, access, zap.NewNop())

	err := svc.DeleteRestaurant(context.Background(), uuid.New(), entity.RoleCustomer, restaurant.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	managerUserID := uuid.New()
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       managerUserID,
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	require.NoError(t, svc.DeleteRestaurant(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String()))

	_, err = svc.GetRestaurantByID(context.Background(), restaurant.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
