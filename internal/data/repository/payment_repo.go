package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindPaidByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	MarkFailed(ctx context.Context, id uuid.UUID) error
	MarkPaid(ctx context.Context, id uuid.UUID, bookingID *uuid.UUID) error
	MarkReturned(ctx context.Context, id uuid.UUID, refundedAmount float64) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, user_id, booking_id, masked_pan, expire_month, amount, refunded_amount,
	idempotency_key, status, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.UserID,
		payment.BookingID,
		payment.MaskedPAN,
		payment.ExpireMonth,
		payment.Amount,
		payment.RefundedAmount,
		payment.IdempotencyKey,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
			zap.String("user_id", payment.UserID.String()),
		)
		return fmt.Errorf("create payment %s: %w", payment.ID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.BookingID,
		&payment.MaskedPAN,
		&payment.ExpireMonth,
		&payment.Amount,
		&payment.RefundedAmount,
		&payment.IdempotencyKey,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindPaidByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE booking_id = $1 AND status = 'paid'
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.BookingID,
		&payment.MaskedPAN,
		&payment.ExpireMonth,
		&payment.Amount,
		&payment.RefundedAmount,
		&payment.IdempotencyKey,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find paid payment by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find paid payment by booking ID %s: %w", bookingID.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE payments SET status = 'failed', updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark payment failed",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return fmt.Errorf("mark payment %s failed: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	return nil
}

// MarkPaid flips the payment to paid and, when the payment is linked to a
// booking, confirms the booking in the same transaction.
func (r *paymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, bookingID *uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin payment transaction", zap.Error(err))
		return fmt.Errorf("begin payment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE payments SET status = 'paid', updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to mark payment paid",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return fmt.Errorf("mark payment %s paid: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	if bookingID != nil {
		if _, err := tx.Exec(ctx,
			`UPDATE bookings SET status = 'confirmed', updated_at = NOW() WHERE id = $1`, *bookingID); err != nil {
			r.log.Error("Failed to confirm booking for payment",
				zap.Error(err),
				zap.String("payment_id", id.String()),
				zap.String("booking_id", bookingID.String()),
			)
			return fmt.Errorf("confirm booking %s: %w", bookingID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit payment transaction", zap.Error(err))
		return fmt.Errorf("commit payment %s: %w", id.String(), err)
	}

	return nil
}

// MarkReturned records the refund outcome. The original amount stays in
// place; only refunded_amount carries the fined value.
func (r *paymentRepository) MarkReturned(ctx context.Context, id uuid.UUID, refundedAmount float64) error {
	query := `UPDATE payments SET status = 'returned', refunded_amount = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, refundedAmount)
	if err != nil {
		r.log.Error("Failed to mark payment returned",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.Float64("refunded_amount", refundedAmount),
		)
		return fmt.Errorf("mark payment %s returned: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	return nil
}
