package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/request"
	"restaurant-booking/pkg/utils"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{OverlapPolicy: utils.OverlapPolicyAllow},
		Payment: utils.PaymentConfig{FinePercent: 10},
	}
}

func seedRestaurant(t *testing.T, repo *repository.Repository) *entity.Restaurant {
	t.Helper()
	restaurant := &entity.Restaurant{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		AuthorID: uuid.New(),
		Name:     "La Trattoria",
		Email:    "info@trattoria.example",
	}
	require.NoError(t, repo.Restaurant.Create(context.Background(), restaurant))
	return restaurant
}

func seedRoom(t *testing.T, repo *repository.Repository, restaurantID uuid.UUID, capacity int) *entity.Room {
	t.Helper()
	room := &entity.Room{
		Base:         entity.Base{ID: uuid.New()},
		RestaurantID: restaurantID,
		Name:         "Main Hall",
		PeopleNumber: capacity,
	}
	repo.Room.(*fakeRoomRepo).rooms[room.ID] = room
	return room
}

func seedMenuItem(t *testing.T, repo *repository.Repository, restaurantID uuid.UUID, name string, price float64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		Base:         entity.Base{ID: uuid.New()},
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
	}
	repo.Menu.(*fakeMenuRepo).items[item.ID] = item
	return item
}

func validBookingRequest(roomID uuid.UUID, items []request.OrderItemRequest) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		RoomID:         roomID.String(),
		ClientName:     "Ivan Petrov",
		ClientNumber:   "+79990001122",
		NumberOfPeople: 4,
		PlannedFrom:    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		PlannedTo:      time.Now().Add(26 * time.Hour).Format(time.RFC3339),
		OrderItems:     items,
	}
}

func TestCreateBooking(t *testing.T) {
	repo, bookingRepo := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	room := seedRoom(t, repo, restaurant.ID, 10)
	pasta := seedMenuItem(t, repo, restaurant.ID, "Pasta", 12.5)
	wine := seedMenuItem(t, repo, restaurant.ID, "Wine", 30)

	publisher := &fakePublisher{}
	access := NewAccessService(repo, zap.NewNop())
	svc := NewBookingService(repo, access, testConfig(), publisher, zap.NewNop())

	userID := uuid.New()
	req := validBookingRequest(room.ID, []request.OrderItemRequest{
		{MenuID: pasta.ID.String(), Amount: 2},
		{MenuID: wine.ID.String(), Amount: 1},
	})

	resp, err := svc.CreateBooking(context.Background(), userID.String(), restaurant.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, 55.0, resp.TotalSum) // 2*12.5 + 1*30
	assert.NotEmpty(t, resp.BookingNumber)
	assert.Equal(t, room.Name, resp.RoomName)
	assert.Len(t, resp.OrderItems, 2)

	// Booking and items persisted together
	assert.Len(t, bookingRepo.bookings, 1)
	for id := range bookingRepo.bookings {
		assert.Len(t, bookingRepo.items[id], 2)
	}

	// Event emitted for the notifier
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "booking.created", publisher.events[0].queue)
}

func TestCreateBookingRoomNotInRestaurant(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	other := seedRestaurant(t, repo)
	room := seedRoom(t, repo, other.ID, 10)
	pasta := seedMenuItem(t, repo, restaurant.ID, "Pasta", 12.5)

	access := NewAccessService(repo, zap.NewNop())
	svc := NewBookingService(repo, access, testConfig(), nil, zap.NewNop())

	req := validBookingRequest(room.ID, []request.OrderItemRequest{{MenuID: pasta.ID.String(), Amount: 1}})

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in restaurant")
}

func TestCreateBookingExceedsRoomCapacity(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	room := seedRoom(t, repo, restaurant.ID, 2)
	pasta := seedMenuItem(t, repo, restaurant.ID, "Pasta", 12.5)

	access := NewAccessService(repo, zap.NewNop())
	svc := NewBookingService(repo, access, testConfig(), nil, zap.NewNop())

	req := validBookingRequest(room.ID, []request.OrderItemRequest{{MenuID: pasta.ID.String(), Amount: 1}})
	req.NumberOfPeople = 8

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot seat")
}

func TestCreateBookingOverlapPolicy(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	room := seedRoom(t, repo, restaurant.ID, 10)
	pasta := seedMenuItem(t, repo, restaurant.ID, "Pasta", 12.5)

	access := NewAccessService(repo, zap.NewNop())

	config := testConfig()
	config.Booking.OverlapPolicy = utils.OverlapPolicyReject
	svc := NewBookingService(repo, access, config, nil, zap.NewNop())

	req := validBookingRequest(room.ID, []request.OrderItemRequest{{MenuID: pasta.ID.String(), Amount: 1}})

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	require.NoError(t, err)

	// Same window in the same room is refused under the reject policy
	_, err = svc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")

	// The allow policy keeps double booking possible
	allowSvc := NewBookingService(repo, access, testConfig(), nil, zap.NewNop())
	_, err = allowSvc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	assert.NoError(t, err)
}

func TestCancelBookingIsIdempotent(t *testing.T) {
	repo, bookingRepo := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	room := seedRoom(t, repo, restaurant.ID, 10)
	pasta := seedMenuItem(t, repo, restaurant.ID, "Pasta", 12.5)

	managerUserID := uuid.New()
	manager := &entity.Manager{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       managerUserID,
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, repo.Manager.Create(context.Background(), manager))

	access := NewAccessService(repo, zap.NewNop())
	svc := NewBookingService(repo, access, testConfig(), nil, zap.NewNop())

	req := validBookingRequest(room.ID, []request.OrderItemRequest{{MenuID: pasta.ID.String(), Amount: 1}})
	resp, err := svc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	require.NoError(t, err)

	err = svc.CancelBooking(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String(), resp.ID)
	require.NoError(t, err)

	bookingID := uuid.MustParse(resp.ID)
	assert.Equal(t, entity.BookingStatusCancelled, bookingRepo.bookings[bookingID].Status)

	// Second cancel is a no-op, not an error
	err = svc.CancelBooking(context.Background(), managerUserID, entity.RoleManager, restaurant.ID.String(), resp.ID)
	assert.NoError(t, err)
}

func TestCancelBookingForbiddenForCustomer(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	room := seedRoom(t, repo, restaurant.ID, 10)
	pasta := seedMenuItem(t, repo, restaurant.ID, "Pasta", 12.5)

	access := NewAccessService(repo, zap.NewNop())
	svc := NewBookingService(repo, access, testConfig(), nil, zap.NewNop())

	req := validBookingRequest(room.ID, []request.OrderItemRequest{{MenuID: pasta.ID.String(), Amount: 1}})
	resp, err := svc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	require.NoError(t, err)

	err = svc.CancelBooking(context.Background(), uuid.New(), entity.RoleCustomer, restaurant.ID.String(), resp.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

type erroringRoomRepo struct{}

func (erroringRoomRepo) FindByID(context.Context, uuid.UUID) (*entity.Room, error) {
	return nil, errors.New("connection reset")
}

func (erroringRoomRepo) FindByRestaurantID(context.Context, uuid.UUID) ([]*entity.Room, error) {
	return nil, errors.New("connection reset")
}

func TestGetBookingByIDLogsFailedEnrichment(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	room := seedRoom(t, repo, restaurant.ID, 10)
	pasta := seedMenuItem(t, repo, restaurant.ID, "Pasta", 12.5)

	core, logs := observer.New(zapcore.WarnLevel)
	access := NewAccessService(repo, zap.NewNop())
	svc := NewBookingService(repo, access, testConfig(), nil, zap.New(core))

	req := validBookingRequest(room.ID, []request.OrderItemRequest{{MenuID: pasta.ID.String(), Amount: 1}})
	created, err := svc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	require.NoError(t, err)

	// A failing room lookup degrades the detail instead of failing it
	repo.Room = erroringRoomRepo{}

	got, err := svc.GetBookingByID(context.Background(), restaurant.ID.String(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RoomName)
	require.Len(t, got.OrderItems, 1)

	// The lookup failure is not swallowed silently
	assert.Equal(t, 1, logs.FilterMessage("Failed to load room for booking detail").Len())
}

func TestGetBookingByIDIncludesItems(t *testing.T) {
	repo, _ := newTestRepository()
	restaurant := seedRestaurant(t, repo)
	room := seedRoom(t, repo, restaurant.ID, 10)
	pasta := seedMenuItem(t, repo, restaurant.ID, "Pasta", 12.5)

	access := NewAccessService(repo, zap.NewNop())
	svc := NewBookingService(repo, access, testConfig(), nil, zap.NewNop())

	req := validBookingRequest(room.ID, []request.OrderItemRequest{{MenuID: pasta.ID.String(), Amount: 3}})
	created, err := svc.CreateBooking(context.Background(), uuid.NewString(), restaurant.ID.String(), req)
	require.NoError(t, err)

	got, err := svc.GetBookingByID(context.Background(), restaurant.ID.String(), created.ID)
	require.NoError(t, err)

	require.Len(t, got.OrderItems, 1)
	assert.Equal(t, "Pasta", got.OrderItems[0].MenuName)
	assert.Equal(t, 37.5, got.OrderItems[0].TotalPrice)
	assert.Equal(t, room.Name, got.RoomName)
}
