package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/dto/response"
	"restaurant-booking/pkg/utils"
)

// Gateway is the external payment processor. Implemented by pkg/gateway.
type Gateway interface {
	ReceiveMoney(ctx context.Context, pan string, amount float64) error
	ReturnMoney(ctx context.Context, pan string, amount float64) error
}

// IdempotencyStore reserves client-supplied idempotency keys so a retried
// capture cannot charge twice. Implemented by pkg/idempotency.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string)
}

type PaymentService interface {
	Capture(ctx context.Context, userID, idempotencyKey string, req *request.CapturePaymentRequest) (*response.PaymentResponse, error)
	Refund(ctx context.Context, userID, idempotencyKey string, req *request.RefundPaymentRequest) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo        *repository.Repository
	gateway     Gateway
	idem        IdempotencyStore
	finePercent float64
	log         *zap.Logger
}

func NewPaymentService(repo *repository.Repository, gw Gateway, idem IdempotencyStore, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:        repo,
		gateway:     gw,
		idem:        idem,
		finePercent: config.Payment.FinePercent,
		log:         log.With(zap.String("service", "payment")),
	}
}

// fine deducts the configured percentage from a refunded amount, rounded to
// 2 decimals.
func (s *paymentService) fine(amount float64) float64 {
	return math.Round(amount*(100-s.finePercent)) / 100
}

func validExpireMonth(month string) bool {
	m, err := strconv.Atoi(month)
	return err == nil && m >= 1 && m <= 12
}

func (s *paymentService) Capture(ctx context.Context, userID, idempotencyKey string, req *request.CapturePaymentRequest) (*response.PaymentResponse, error) {
	// Card fields are validated locally before any network call.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Capture validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if !validExpireMonth(req.ExpireMonth) {
		return nil, fmt.Errorf("invalid expire month %s", req.ExpireMonth)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookingID, err := s.resolveBooking(ctx, userUUID, req.BookingID)
	if err != nil {
		return nil, err
	}

	reserved, err := s.reserveKey(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, fmt.Errorf("duplicate payment attempt for key %s", idempotencyKey)
	}

	payment := s.newPayment(userUUID, bookingID, req.PAN, req.ExpireMonth, req.Amount, idempotencyKey)

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.releaseKey(ctx, idempotencyKey)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	// The gateway call sits outside any transaction; only local status
	// updates follow it.
	if err := s.gateway.ReceiveMoney(ctx, req.PAN, req.Amount); err != nil {
		payment.Status = entity.PaymentStatusFailed
		if markErr := s.repo.Payment.MarkFailed(ctx, payment.ID); markErr != nil {
			s.log.Error("Failed to record failed capture",
				zap.Error(markErr),
				zap.String("payment_id", payment.ID.String()),
			)
		}

		s.log.Warn("Capture rejected by gateway",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
			zap.Float64("amount", req.Amount),
		)
		return nil, fmt.Errorf("gateway rejected payment: %w", err)
	}

	if err := s.repo.Payment.MarkPaid(ctx, payment.ID, bookingID); err != nil {
		// Charged at the gateway but not recorded locally; surface loudly.
		s.log.Error("Gateway charge succeeded but local update failed",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return nil, fmt.Errorf("record payment %s: %w", payment.ID.String(), err)
	}
	payment.Status = entity.PaymentStatusPaid

	s.log.Info("Payment captured",
		zap.String("payment_id", payment.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("amount", req.Amount),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) Refund(ctx context.Context, userID, idempotencyKey string, req *request.RefundPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Refund validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if !validExpireMonth(req.ExpireMonth) {
		return nil, fmt.Errorf("invalid expire month %s", req.ExpireMonth)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookingID, err := s.resolveBooking(ctx, userUUID, req.BookingID)
	if err != nil {
		return nil, err
	}
	if bookingID != nil {
		paid, err := s.repo.Payment.FindPaidByBookingID(ctx, *bookingID)
		if err != nil {
			return nil, fmt.Errorf("check paid payment: %w", err)
		}
		if paid == nil {
			return nil, fmt.Errorf("booking %s has no paid payment to return", bookingID.String())
		}
	}

	reserved, err := s.reserveKey(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, fmt.Errorf("duplicate payment attempt for key %s", idempotencyKey)
	}

	payment := s.newPayment(userUUID, bookingID, req.PAN, req.ExpireMonth, req.Amount, idempotencyKey)

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.releaseKey(ctx, idempotencyKey)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	// The fine is deducted before the gateway sees the amount; the
	// original amount stays on the payment row.
	refunded := s.fine(req.Amount)

	if err := s.gateway.ReturnMoney(ctx, req.PAN, refunded); err != nil {
		payment.Status = entity.PaymentStatusFailed
		if markErr := s.repo.Payment.MarkFailed(ctx, payment.ID); markErr != nil {
			s.log.Error("Failed to record failed refund",
				zap.Error(markErr),
				zap.String("payment_id", payment.ID.String()),
			)
		}

		s.log.Warn("Refund rejected by gateway",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
			zap.Float64("refunded_amount", refunded),
		)
		return nil, fmt.Errorf("gateway rejected refund: %w", err)
	}

	if err := s.repo.Payment.MarkReturned(ctx, payment.ID, refunded); err != nil {
		s.log.Error("Gateway refund succeeded but local update failed",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return nil, fmt.Errorf("record refund %s: %w", payment.ID.String(), err)
	}
	payment.Status = entity.PaymentStatusReturned
	payment.RefundedAmount = &refunded

	s.log.Info("Payment refunded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("amount", req.Amount),
		zap.Float64("refunded_amount", refunded),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// resolveBooking validates an optional booking reference and its ownership.
func (s *paymentService) resolveBooking(ctx context.Context, userID uuid.UUID, bookingIDStr *string) (*uuid.UUID, error) {
	if bookingIDStr == nil {
		return nil, nil
	}

	bookingID, err := uuid.Parse(*bookingIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", *bookingIDStr, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", *bookingIDStr)
	}
	if booking.AuthorID != userID {
		return nil, fmt.Errorf("unauthorized to pay for booking %s", *bookingIDStr)
	}

	return &bookingID, nil
}

func (s *paymentService) newPayment(userID uuid.UUID, bookingID *uuid.UUID, pan, expireMonth string, amount float64, idempotencyKey string) *entity.Payment {
	now := time.Now()

	var key *string
	if idempotencyKey != "" {
		key = &idempotencyKey
	}

	return &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:         userID,
		BookingID:      bookingID,
		MaskedPAN:      entity.MaskPAN(pan),
		ExpireMonth:    expireMonth,
		Amount:         amount,
		IdempotencyKey: key,
		Status:         entity.PaymentStatusNotPaid,
	}
}

func (s *paymentService) reserveKey(ctx context.Context, key string) (bool, error) {
	if key == "" || s.idem == nil {
		return true, nil
	}

	ok, err := s.idem.Reserve(ctx, key)
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	return ok, nil
}

func (s *paymentService) releaseKey(ctx context.Context, key string) {
	if key == "" || s.idem == nil {
		return
	}
	s.idem.Release(ctx, key)
}
