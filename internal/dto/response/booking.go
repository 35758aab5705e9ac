package response

import (
	"time"

	"restaurant-booking/internal/data/entity"
)

type OrderItemResponse struct {
	MenuID     string  `json:"menu_id"`
	MenuName   string  `json:"menu_name,omitempty"`
	Price      float64 `json:"price"`
	Amount     int     `json:"amount"`
	TotalPrice float64 `json:"total_price"`
}

type BookingResponse struct {
	ID             string               `json:"id"`
	BookingNumber  string               `json:"booking_number"`
	RestaurantID   string               `json:"restaurant_id"`
	AuthorID       string               `json:"author_id"`
	RoomID         string               `json:"room_id"`
	RoomName       string               `json:"room_name,omitempty"`
	ClientName     string               `json:"client_name"`
	ClientNumber   string               `json:"client_number"`
	NumberOfPeople int                  `json:"number_of_people"`
	PlannedFrom    time.Time            `json:"planned_from"`
	PlannedTo      time.Time            `json:"planned_to"`
	Occasion       *string              `json:"occasion,omitempty"`
	BookedTime     time.Time            `json:"booked_time"`
	TotalSum       float64              `json:"total_sum"`
	Status         entity.BookingStatus `json:"status"`
	OrderItems     []OrderItemResponse  `json:"order_items,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:             booking.ID.String(),
		BookingNumber:  booking.BookingNumber,
		RestaurantID:   booking.RestaurantID.String(),
		AuthorID:       booking.AuthorID.String(),
		RoomID:         booking.RoomID.String(),
		ClientName:     booking.ClientName,
		ClientNumber:   booking.ClientNumber,
		NumberOfPeople: booking.NumberOfPeople,
		PlannedFrom:    booking.PlannedFrom,
		PlannedTo:      booking.PlannedTo,
		Occasion:       booking.Occasion,
		BookedTime:     booking.BookedTime,
		TotalSum:       booking.TotalSum,
		Status:         booking.Status,
		CreatedAt:      booking.CreatedAt,
	}
}
