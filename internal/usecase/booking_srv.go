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

type BookingService interface {
	CreateBooking(ctx context.Context, userID, restaurantID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingsByDate(ctx context.Context, restaurantID, date string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, restaurantID, bookingID string) (*response.BookingResponse, error)

	// Role-gated operations; the caller's role is resolved at request entry
	// and passed explicitly.
	CancelBooking(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID, bookingID string) error
	DeleteBooking(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID, bookingID string) error
}

type bookingService struct {
	repo          *repository.Repository
	access        AccessService
	overlapPolicy string
	publisher     events.Publisher
	log           *zap.Logger
}

func NewBookingService(repo *repository.Repository, access AccessService, config *utils.Config, publisher events.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:          repo,
		access:        access,
		overlapPolicy: config.Booking.OverlapPolicy,
		publisher:     publisher,
		log:           log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, restaurantID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	plannedFrom, err := time.Parse(time.RFC3339, req.PlannedFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid planned_from %s: %w", req.PlannedFrom, err)
	}
	plannedTo, err := time.Parse(time.RFC3339, req.PlannedTo)
	if err != nil {
		return nil, fmt.Errorf("invalid planned_to %s: %w", req.PlannedTo, err)
	}
	if !plannedTo.After(plannedFrom) {
		return nil, fmt.Errorf("invalid time window: planned_to must be after planned_from")
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil || restaurant == nil {
		return nil, fmt.Errorf("restaurant %s not found", restaurantID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", req.RoomID)
	}
	if room.RestaurantID != restaurantUUID {
		return nil, fmt.Errorf("room %s not in restaurant %s", req.RoomID, restaurantID)
	}
	if req.NumberOfPeople > room.PeopleNumber {
		return nil, fmt.Errorf("room %s holds %d people, cannot seat %d", room.Name, room.PeopleNumber, req.NumberOfPeople)
	}

	// Overlap check is a named policy: "allow" keeps double-booking
	// possible, "reject" refuses an intersecting window.
	if s.overlapPolicy == utils.OverlapPolicyReject {
		overlapping, err := s.repo.Booking.CountOverlapping(ctx, roomID, plannedFrom, plannedTo)
		if err != nil {
			s.log.Error("Failed to check booking overlap", zap.Error(err))
			return nil, fmt.Errorf("check booking overlap: %w", err)
		}
		if overlapping > 0 {
			return nil, fmt.Errorf("room %s is already booked for the requested time window", room.Name)
		}
	}

	// Resolve menu items and derive the total
	now := time.Now()
	totalSum := 0.0
	items := make([]*entity.OrderItem, len(req.OrderItems))
	itemResponses := make([]response.OrderItemResponse, len(req.OrderItems))
	for i, itemReq := range req.OrderItems {
		menuID, err := uuid.Parse(itemReq.MenuID)
		if err != nil {
			return nil, fmt.Errorf("invalid menu ID format %s: %w", itemReq.MenuID, err)
		}

		menuItem, err := s.repo.Menu.FindByID(ctx, menuID)
		if err != nil || menuItem == nil {
			return nil, fmt.Errorf("menu item %s not found", itemReq.MenuID)
		}
		if menuItem.RestaurantID != restaurantUUID {
			return nil, fmt.Errorf("menu item %s not in restaurant %s", itemReq.MenuID, restaurantID)
		}

		items[i] = &entity.OrderItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			MenuID: menuID,
			Amount: itemReq.Amount,
		}

		lineTotal := items[i].TotalPrice(menuItem.Price)
		totalSum += lineTotal
		itemResponses[i] = response.OrderItemResponse{
			MenuID:     menuID.String(),
			MenuName:   menuItem.Name,
			Price:      menuItem.Price,
			Amount:     itemReq.Amount,
			TotalPrice: lineTotal,
		}
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingNumber:  utils.GenerateBookingNumber(),
		RestaurantID:   restaurantUUID,
		AuthorID:       userUUID,
		RoomID:         roomID,
		ClientName:     req.ClientName,
		ClientNumber:   req.ClientNumber,
		NumberOfPeople: req.NumberOfPeople,
		PlannedFrom:    plannedFrom,
		PlannedTo:      plannedTo,
		Occasion:       req.Occasion,
		BookedTime:     now,
		TotalSum:       totalSum,
		Status:         entity.BookingStatusPending,
	}

	for _, item := range items {
		item.BookingID = booking.ID
	}

	if err := s.repo.Booking.CreateWithItems(ctx, booking, items); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_number", booking.BookingNumber),
		zap.String("restaurant_id", restaurantID),
		zap.Int("item_count", len(items)),
		zap.Float64("total_sum", totalSum),
	)

	// Notification hook; failures must not fail the booking.
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.QueueBookingCreated, events.BookingCreatedEvent{
			BookingID:     booking.ID.String(),
			BookingNumber: booking.BookingNumber,
			RestaurantID:  restaurantID,
			ClientName:    booking.ClientName,
			PlannedFrom:   booking.PlannedFrom,
			PlannedTo:     booking.PlannedTo,
			TotalSum:      booking.TotalSum,
			CreatedAt:     booking.CreatedAt,
		})
	}

	resp := response.BookingToResponse(booking)
	resp.RoomName = room.Name
	resp.OrderItems = itemResponses
	return &resp, nil
}

func (s *bookingService) GetBookingsByDate(ctx context.Context, restaurantID, date string) ([]response.BookingResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s, use YYYY-MM-DD: %w", date, err)
	}

	bookings, err := s.repo.Booking.FindByRestaurantAndDate(ctx, restaurantUUID, day)
	if err != nil {
		s.log.Error("Failed to get bookings by date",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("get bookings by date: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return responses, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, restaurantID, bookingID string) (*response.BookingResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil || booking.RestaurantID != restaurantUUID {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking)

	// Enrichment is best effort: a failed lookup degrades the response
	// instead of failing it, but the error is still logged.
	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil {
		s.log.Warn("Failed to load room for booking detail",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
	}
	if room != nil {
		resp.RoomName = room.Name
	}

	items, err := s.repo.OrderItem.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}

	itemResponses := make([]response.OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.OrderItemResponse{
			MenuID: item.MenuID.String(),
			Amount: item.Amount,
		}

		menuItem, err := s.repo.Menu.FindByID(ctx, item.MenuID)
		if err != nil {
			s.log.Warn("Failed to load menu item for booking detail",
				zap.Error(err),
				zap.String("menu_id", item.MenuID.String()),
			)
		}
		if menuItem != nil {
			itemResponses[i].MenuName = menuItem.Name
			itemResponses[i].Price = menuItem.Price
			itemResponses[i].TotalPrice = item.TotalPrice(menuItem.Price)
		}
	}
	resp.OrderItems = itemResponses

	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID, bookingID string) error {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	if err := s.access.AuthorizeRestaurant(ctx, userID, role, restaurantUUID); err != nil {
		return err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil || booking.RestaurantID != restaurantUUID {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	// Re-cancelling is a no-op so a retried cancel never triggers side
	// effects twice.
	if booking.Status == entity.BookingStatusCancelled {
		s.log.Info("Booking already cancelled", zap.String("booking_id", bookingID))
		return nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("booking_number", booking.BookingNumber),
	)

	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, userID uuid.UUID, role entity.Role, restaurantID, bookingID string) error {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	if err := s.access.AuthorizeRestaurant(ctx, userID, role, restaurantUUID); err != nil {
		return err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil || booking.RestaurantID != restaurantUUID {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	return nil
}
