package entity

import (
	"time"

	"github.com/google/uuid"
)

// Manager binds a user to exactly one restaurant.
type Manager struct {
	Base
	UserID       uuid.UUID `db:"user_id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	PhoneNumber  string    `db:"phone_number"`
	HireDate     time.Time `db:"hire_date"`
}

// Administrator reports to a manager; restaurant scope is resolved
// transitively through that manager.
type Administrator struct {
	Base
	UserID      uuid.UUID  `db:"user_id"`
	ManagerID   *uuid.UUID `db:"manager_id"`
	Title       string     `db:"title"`
	PhoneNumber string     `db:"phone_number"`
	HireDate    time.Time  `db:"hire_date"`
}
