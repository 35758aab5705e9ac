package response

import (
	"time"

	"restaurant-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	BookingID      *string              `json:"booking_id,omitempty"`
	MaskedPAN      string               `json:"pan"`
	ExpireMonth    string               `json:"expire_month"`
	Amount         float64              `json:"amount"`
	RefundedAmount *float64             `json:"refunded_amount,omitempty"`
	Status         entity.PaymentStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:             payment.ID.String(),
		UserID:         payment.UserID.String(),
		MaskedPAN:      payment.MaskedPAN,
		ExpireMonth:    payment.ExpireMonth,
		Amount:         payment.Amount,
		RefundedAmount: payment.RefundedAmount,
		Status:         payment.Status,
		CreatedAt:      payment.CreatedAt,
	}
	if payment.BookingID != nil {
		bookingID := payment.BookingID.String()
		resp.BookingID = &bookingID
	}
	return resp
}
