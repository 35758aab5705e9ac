package request

// CapturePaymentRequest carries the card data for a charge. The PAN only
// lives in the request; it is masked before anything is persisted.
type CapturePaymentRequest struct {
	PAN         string  `json:"pan" validate:"required,len=16,numeric"`
	ExpireMonth string  `json:"expire_month" validate:"required,len=2,numeric"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	BookingID   *string `json:"booking_id,omitempty" validate:"omitempty,uuid4"`
}

type RefundPaymentRequest struct {
	PAN         string  `json:"pan" validate:"required,len=16,numeric"`
	ExpireMonth string  `json:"expire_month" validate:"required,len=2,numeric"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	BookingID   *string `json:"booking_id,omitempty" validate:"omitempty,uuid4"`
}
