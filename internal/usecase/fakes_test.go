package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
)

// In-memory repository fakes. Each one implements the corresponding
// repository interface over plain maps so services can be exercised without
// a database.

type fakeRestaurantRepo struct {
	restaurants map[uuid.UUID]*entity.Restaurant
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: make(map[uuid.UUID]*entity.Restaurant)}
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return f.restaurants[id], nil
}

func (f *fakeRestaurantRepo) FindAll(_ context.Context) ([]*entity.Restaurant, error) {
	out := make([]*entity.Restaurant, 0, len(f.restaurants))
	for _, r := range f.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.restaurants[id]; !ok {
		return errors.New("restaurant not found")
	}
	delete(f.restaurants, id)
	return nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		if r.RestaurantID == restaurantID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMenuRepo struct {
	items map[uuid.UUID]*entity.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[uuid.UUID]*entity.MenuItem)}
}

func (f *fakeMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return f.items[id], nil
}

func (f *fakeMenuRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	for _, m := range f.items {
		if m.RestaurantID == restaurantID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
	items    map[uuid.UUID][]*entity.OrderItem
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*entity.Booking),
		items:    make(map[uuid.UUID][]*entity.OrderItem),
	}
}

func (f *fakeBookingRepo) CreateWithItems(_ context.Context, booking *entity.Booking, items []*entity.OrderItem) error {
	f.bookings[booking.ID] = booking
	f.items[booking.ID] = items
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByRestaurantAndDate(_ context.Context, restaurantID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.RestaurantID == restaurantID && b.BookedTime.Format("2006-01-02") == date.Format("2006-01-02") {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return errors.New("booking not found")
	}
	delete(f.bookings, id)
	delete(f.items, id)
	return nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, roomID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.RoomID != roomID || b.Status == entity.BookingStatusCancelled {
			continue
		}
		if b.PlannedFrom.Before(to) && b.PlannedTo.After(from) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) StatsByDateRange(_ context.Context, restaurantID uuid.UUID, from, to time.Time) (int64, float64, error) {
	var count int64
	var sum float64
	for _, b := range f.bookings {
		if b.RestaurantID != restaurantID {
			continue
		}
		day := b.BookedTime.Truncate(24 * time.Hour)
		if day.Before(from) || day.After(to) {
			continue
		}
		count++
		sum += b.TotalSum
	}
	return count, sum, nil
}

type fakeOrderItemRepo struct {
	booking *fakeBookingRepo
}

func (f *fakeOrderItemRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.OrderItem, error) {
	return f.booking.items[bookingID], nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	cp := *payment
	f.payments[payment.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindPaidByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.BookingID != nil && *p.BookingID == bookingID && p.Status == entity.PaymentStatusPaid {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) MarkFailed(_ context.Context, id uuid.UUID) error {
	p, ok := f.payments[id]
	if !ok {
		return errors.New("payment not found")
	}
	p.Status = entity.PaymentStatusFailed
	return nil
}

func (f *fakePaymentRepo) MarkPaid(_ context.Context, id uuid.UUID, _ *uuid.UUID) error {
	p, ok := f.payments[id]
	if !ok {
		return errors.New("payment not found")
	}
	p.Status = entity.PaymentStatusPaid
	return nil
}

func (f *fakePaymentRepo) MarkReturned(_ context.Context, id uuid.UUID, refundedAmount float64) error {
	p, ok := f.payments[id]
	if !ok {
		return errors.New("payment not found")
	}
	p.Status = entity.PaymentStatusReturned
	p.RefundedAmount = &refundedAmount
	return nil
}

type fakeManagerRepo struct {
	managers map[uuid.UUID]*entity.Manager
}

func newFakeManagerRepo() *fakeManagerRepo {
	return &fakeManagerRepo{managers: make(map[uuid.UUID]*entity.Manager)}
}

func (f *fakeManagerRepo) Create(_ context.Context, manager *entity.Manager) error {
	f.managers[manager.ID] = manager
	return nil
}

func (f *fakeManagerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Manager, error) {
	return f.managers[id], nil
}

func (f *fakeManagerRepo) FindAll(_ context.Context) ([]*entity.Manager, error) {
	out := make([]*entity.Manager, 0, len(f.managers))
	for _, m := range f.managers {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeManagerRepo) ExistsByUserAndRestaurant(_ context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	for _, m := range f.managers {
		if m.UserID == userID && m.RestaurantID == restaurantID {
			return true, nil
		}
	}
	return false, nil
}

type fakeAdministratorRepo struct {
	admins map[uuid.UUID]*entity.Administrator
}

func newFakeAdministratorRepo() *fakeAdministratorRepo {
	return &fakeAdministratorRepo{admins: make(map[uuid.UUID]*entity.Administrator)}
}

func (f *fakeAdministratorRepo) Create(_ context.Context, admin *entity.Administrator) error {
	f.admins[admin.ID] = admin
	return nil
}

func (f *fakeAdministratorRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Administrator, error) {
	for _, a := range f.admins {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdministratorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.admins[id]; !ok {
		return errors.New("administrator not found")
	}
	delete(f.admins, id)
	return nil
}

type fakeTelegramUserRepo struct {
	users map[string]*entity.TelegramUser
}

func newFakeTelegramUserRepo() *fakeTelegramUserRepo {
	return &fakeTelegramUserRepo{users: make(map[string]*entity.TelegramUser)}
}

func (f *fakeTelegramUserRepo) Create(_ context.Context, user *entity.TelegramUser) error {
	f.users[user.TelegramID] = user
	return nil
}

func (f *fakeTelegramUserRepo) FindByTelegramID(_ context.Context, telegramID string) (*entity.TelegramUser, error) {
	return f.users[telegramID], nil
}

// newTestRepository bundles the fakes into the aggregate the services take.
func newTestRepository() (*repository.Repository, *fakeBookingRepo) {
	bookingRepo := newFakeBookingRepo()
	return &repository.Repository{
		Restaurant:    newFakeRestaurantRepo(),
		Room:          newFakeRoomRepo(),
		Menu:          newFakeMenuRepo(),
		Booking:       bookingRepo,
		OrderItem:     &fakeOrderItemRepo{booking: bookingRepo},
		Payment:       newFakePaymentRepo(),
		Manager:       newFakeManagerRepo(),
		Administrator: newFakeAdministratorRepo(),
		TelegramUser:  newFakeTelegramUserRepo(),
	}, bookingRepo
}

type gatewayCall struct {
	pan    string
	amount float64
}

type fakeGateway struct {
	failReceive bool
	failReturn  bool
	received    []gatewayCall
	returned    []gatewayCall
}

func (f *fakeGateway) ReceiveMoney(_ context.Context, pan string, amount float64) error {
	if f.failReceive {
		return errors.New("unexpected status 500")
	}
	f.received = append(f.received, gatewayCall{pan: pan, amount: amount})
	return nil
}

func (f *fakeGateway) ReturnMoney(_ context.Context, pan string, amount float64) error {
	if f.failReturn {
		return errors.New("unexpected status 500")
	}
	f.returned = append(f.returned, gatewayCall{pan: pan, amount: amount})
	return nil
}

type fakeIdemStore struct {
	reserved map[string]bool
}

func newFakeIdemStore() *fakeIdemStore {
	return &fakeIdemStore{reserved: make(map[string]bool)}
}

func (f *fakeIdemStore) Reserve(_ context.Context, key string) (bool, error) {
	if f.reserved[key] {
		return false, nil
	}
	f.reserved[key] = true
	return true, nil
}

func (f *fakeIdemStore) Release(_ context.Context, key string) {
	delete(f.reserved, key)
}

type publishedEvent struct {
	queue string
	event any
}

type fakePublisher struct {
	events []publishedEvent
}

func (f *fakePublisher) Publish(_ context.Context, queue string, event any) error {
	f.events = append(f.events, publishedEvent{queue: queue, event: event})
	return nil
}
