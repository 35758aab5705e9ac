package entity

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	Base
	RestaurantID uuid.UUID `db:"restaurant_id"`
	Name         string    `db:"name"`
	Price        float64   `db:"price"`
	Ingredients  string    `db:"ingredients"`
	Description  string    `db:"description"`
}
