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

// RoomRepository is read-only: room management lives in the admin panel,
// this service only resolves rooms while validating bookings.
type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Room, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, restaurant_id, name, description, people_number, waiters_number, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.RestaurantID,
		&room.Name,
		&room.Description,
		&room.PeopleNumber,
		&room.WaitersNumber,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Room, error) {
	query := `
		SELECT id, restaurant_id, name, description, people_number, waiters_number, created_at, updated_at
		FROM rooms
		WHERE restaurant_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find rooms by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return nil, fmt.Errorf("find rooms by restaurant ID %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.RestaurantID,
			&room.Name,
			&room.Description,
			&room.PeopleNumber,
			&room.WaitersNumber,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}
