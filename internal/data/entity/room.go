package entity

import (
	"github.com/google/uuid"
)

type Room struct {
	Base
	RestaurantID  uuid.UUID `db:"restaurant_id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	PeopleNumber  int       `db:"people_number"`
	WaitersNumber int       `db:"waiters_number"`
}
