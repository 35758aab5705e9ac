package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	BookingNumber  string        `db:"booking_number"`
	RestaurantID   uuid.UUID     `db:"restaurant_id"`
	AuthorID       uuid.UUID     `db:"author_id"`
	RoomID         uuid.UUID     `db:"room_id"`
	ClientName     string        `db:"client_name"`
	ClientNumber   string        `db:"client_number"`
	NumberOfPeople int           `db:"number_of_people"`
	PlannedFrom    time.Time     `db:"planned_from"`
	PlannedTo      time.Time     `db:"planned_to"`
	Occasion       *string       `db:"occasion"`
	BookedTime     time.Time     `db:"booked_time"`
	TotalSum       float64       `db:"total_sum"`
	Status         BookingStatus `db:"status"`
}
