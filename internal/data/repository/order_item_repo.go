package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"
)

// OrderItemRepository reads the items created alongside a booking; writes go
// through BookingRepository.CreateWithItems so they share its transaction.
type OrderItemRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.OrderItem, error)
}

type orderItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderItemRepository(db database.PgxIface, log *zap.Logger) OrderItemRepository {
	return &orderItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_item")),
	}
}

func (r *orderItemRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, booking_id, menu_id, amount, created_at
		FROM order_items
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find order items by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find order items by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.MenuID,
			&item.Amount,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
