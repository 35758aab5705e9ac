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

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, author_id, name, description, service_fee, balance, address, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.AuthorID,
		restaurant.Name,
		restaurant.Description,
		restaurant.ServiceFee,
		restaurant.Balance,
		restaurant.Address,
		restaurant.Phone,
		restaurant.Email,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("name", restaurant.Name),
			zap.String("author_id", restaurant.AuthorID.String()),
		)
		return fmt.Errorf("create restaurant %s: %w", restaurant.Name, err)
	}

	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `
		SELECT id, author_id, name, description, service_fee, balance, address, phone, email, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var restaurant entity.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.AuthorID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.ServiceFee,
		&restaurant.Balance,
		&restaurant.Address,
		&restaurant.Phone,
		&restaurant.Email,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find restaurant by ID %s: %w", id.String(), err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, author_id, name, description, service_fee, balance, address, phone, email, created_at, updated_at
		FROM restaurants
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find restaurants", zap.Error(err))
		return nil, fmt.Errorf("find restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*entity.Restaurant
	for rows.Next() {
		var restaurant entity.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.AuthorID,
			&restaurant.Name,
			&restaurant.Description,
			&restaurant.ServiceFee,
			&restaurant.Balance,
			&restaurant.Address,
			&restaurant.Phone,
			&restaurant.Email,
			&restaurant.CreatedAt,
			&restaurant.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, &restaurant)
	}

	return restaurants, nil
}

// Delete removes the restaurant; rooms, menus and bookings cascade at the
// schema level.
func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM restaurants WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete restaurant",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return fmt.Errorf("delete restaurant %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not found", id.String())
	}

	r.log.Info("Restaurant deleted", zap.String("restaurant_id", id.String()))
	return nil
}
