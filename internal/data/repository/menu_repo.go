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

// MenuRepository is read-only for the same reason RoomRepository is.
type MenuRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error)
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

func (r *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, price, ingredients, description, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`

	var item entity.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Price,
		&item.Ingredients,
		&item.Description,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.String("menu_id", id.String()),
		)
		return nil, fmt.Errorf("find menu item by ID %s: %w", id.String(), err)
	}

	return &item, nil
}

func (r *menuRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, price, ingredients, description, created_at, updated_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find menu items by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return nil, fmt.Errorf("find menu items by restaurant ID %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.Price,
			&item.Ingredients,
			&item.Description,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
