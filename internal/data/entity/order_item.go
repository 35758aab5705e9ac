package entity

import (
	"github.com/google/uuid"
)

// OrderItem rows are immutable once the booking is created. The line total
// is derived from the menu price and never stored.
type OrderItem struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	MenuID    uuid.UUID `db:"menu_id"`
	Amount    int       `db:"amount"`
}

func (i OrderItem) TotalPrice(menuPrice float64) float64 {
	return menuPrice * float64(i.Amount)
}
