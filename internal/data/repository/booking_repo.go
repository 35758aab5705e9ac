package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"
)

type BookingRepository interface {
	CreateWithItems(ctx context.Context, booking *entity.Booking, items []*entity.OrderItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByRestaurantAndDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	CountOverlapping(ctx context.Context, roomID uuid.UUID, from, to time.Time) (int64, error)
	StatsByDateRange(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) (int64, float64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_number, restaurant_id, author_id, room_id, client_name, client_number,
	number_of_people, planned_from, planned_to, occasion, booked_time, total_sum, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingNumber,
		&booking.RestaurantID,
		&booking.AuthorID,
		&booking.RoomID,
		&booking.ClientName,
		&booking.ClientNumber,
		&booking.NumberOfPeople,
		&booking.PlannedFrom,
		&booking.PlannedTo,
		&booking.Occasion,
		&booking.BookedTime,
		&booking.TotalSum,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateWithItems persists the booking and its order items in one
// transaction so a partial create can never be observed.
func (r *bookingRepository) CreateWithItems(ctx context.Context, booking *entity.Booking, items []*entity.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	bookingQuery := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = tx.Exec(ctx, bookingQuery,
		booking.ID,
		booking.BookingNumber,
		booking.RestaurantID,
		booking.AuthorID,
		booking.RoomID,
		booking.ClientName,
		booking.ClientNumber,
		booking.NumberOfPeople,
		booking.PlannedFrom,
		booking.PlannedTo,
		booking.Occasion,
		booking.BookedTime,
		booking.TotalSum,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_number", booking.BookingNumber),
			zap.String("restaurant_id", booking.RestaurantID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingNumber, err)
	}

	itemQuery := `
		INSERT INTO order_items (id, booking_id, menu_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range items {
		if _, err := tx.Exec(ctx, itemQuery,
			item.ID,
			item.BookingID,
			item.MenuID,
			item.Amount,
			item.CreatedAt,
		); err != nil {
			r.log.Error("Failed to create order item",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("menu_id", item.MenuID.String()),
			)
			return fmt.Errorf("create order item for booking %s: %w", booking.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking %s: %w", booking.BookingNumber, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByRestaurantAndDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE restaurant_id = $1 AND booked_time::date = $2::date
		ORDER BY booked_time
	`

	rows, err := r.db.Query(ctx, query, restaurantID, date)
	if err != nil {
		r.log.Error("Failed to find bookings by date",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find bookings by date for restaurant %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

// CountOverlapping counts non-cancelled bookings of the room whose planned
// window intersects [from, to).
func (r *bookingRepository) CountOverlapping(ctx context.Context, roomID uuid.UUID, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1 AND status <> 'cancelled' AND planned_from < $3 AND planned_to > $2
	`

	var count int64
	err := r.db.QueryRow(ctx, query, roomID, from, to).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count overlapping bookings for room %s: %w", roomID.String(), err)
	}

	return count, nil
}

// StatsByDateRange returns the booking count and revenue sum for the
// restaurant over an inclusive date range of booked_time.
func (r *bookingRepository) StatsByDateRange(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) (int64, float64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_sum), 0)
		FROM bookings
		WHERE restaurant_id = $1 AND booked_time::date BETWEEN $2::date AND $3::date
	`

	var count int64
	var revenue float64
	err := r.db.QueryRow(ctx, query, restaurantID, from, to).Scan(&count, &revenue)
	if err != nil {
		r.log.Error("Failed to compute booking statistics",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return 0, 0, fmt.Errorf("booking statistics for restaurant %s: %w", restaurantID.String(), err)
	}

	return count, revenue, nil
}
