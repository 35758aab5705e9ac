package entity

import (
	"strings"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusNotPaid  PaymentStatus = "not_paid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusReturned PaymentStatus = "returned"
)

// Payment keeps one row per attempt. The card number is masked before the
// entity is ever handed to the repository; the full PAN is never persisted.
type Payment struct {
	Base
	UserID         uuid.UUID     `db:"user_id"`
	BookingID      *uuid.UUID    `db:"booking_id"`
	MaskedPAN      string        `db:"masked_pan"`
	ExpireMonth    string        `db:"expire_month"`
	Amount         float64       `db:"amount"`
	RefundedAmount *float64      `db:"refunded_amount"`
	IdempotencyKey *string       `db:"idempotency_key"`
	Status         PaymentStatus `db:"status"`
}

// MaskPAN keeps only the last four digits for display.
func MaskPAN(pan string) string {
	if len(pan) <= 4 {
		return pan
	}
	return strings.Repeat("*", len(pan)-4) + pan[len(pan)-4:]
}
