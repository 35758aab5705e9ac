package entity

import (
	"github.com/google/uuid"
)

type Restaurant struct {
	Base
	AuthorID    uuid.UUID `db:"author_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ServiceFee  int       `db:"service_fee"`
	Balance     float64   `db:"balance"`
	Address     string    `db:"address"`
	Phone       string    `db:"phone"`
	Email       string    `db:"email"`
}
