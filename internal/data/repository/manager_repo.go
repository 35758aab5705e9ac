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

type ManagerRepository interface {
	Create(ctx context.Context, manager *entity.Manager) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Manager, error)
	FindAll(ctx context.Context) ([]*entity.Manager, error)
	ExistsByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error)
}

type managerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewManagerRepository(db database.PgxIface, log *zap.Logger) ManagerRepository {
	return &managerRepository{
		db:  db,
		log: log.With(zap.String("repository", "manager")),
	}
}

func (r *managerRepository) Create(ctx context.Context, manager *entity.Manager) error {
	query := `
		INSERT INTO managers (id, user_id, restaurant_id, phone_number, hire_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		manager.ID,
		manager.UserID,
		manager.RestaurantID,
		manager.PhoneNumber,
		manager.HireDate,
		manager.CreatedAt,
		manager.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create manager",
			zap.Error(err),
			zap.String("user_id", manager.UserID.String()),
			zap.String("restaurant_id", manager.RestaurantID.String()),
		)
		return fmt.Errorf("create manager for user %s: %w", manager.UserID.String(), err)
	}

	return nil
}

func (r *managerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Manager, error) {
	query := `
		SELECT id, user_id, restaurant_id, phone_number, hire_date, created_at, updated_at
		FROM managers
		WHERE id = $1
	`

	var manager entity.Manager
	err := r.db.QueryRow(ctx, query, id).Scan(
		&manager.ID,
		&manager.UserID,
		&manager.RestaurantID,
		&manager.PhoneNumber,
		&manager.HireDate,
		&manager.CreatedAt,
		&manager.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find manager by ID",
			zap.Error(err),
			zap.String("manager_id", id.String()),
		)
		return nil, fmt.Errorf("find manager by ID %s: %w", id.String(), err)
	}

	return &manager, nil
}

func (r *managerRepository) FindAll(ctx context.Context) ([]*entity.Manager, error) {
	query := `
		SELECT id, user_id, restaurant_id, phone_number, hire_date, created_at, updated_at
		FROM managers
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find managers", zap.Error(err))
		return nil, fmt.Errorf("find managers: %w", err)
	}
	defer rows.Close()

	var managers []*entity.Manager
	for rows.Next() {
		var manager entity.Manager
		err := rows.Scan(
			&manager.ID,
			&manager.UserID,
			&manager.RestaurantID,
			&manager.PhoneNumber,
			&manager.HireDate,
			&manager.CreatedAt,
			&manager.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan manager row", zap.Error(err))
			return nil, fmt.Errorf("scan manager row: %w", err)
		}
		managers = append(managers, &manager)
	}

	return managers, nil
}

func (r *managerRepository) ExistsByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM managers WHERE user_id = $1 AND restaurant_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, restaurantID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check manager existence",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return false, fmt.Errorf("check manager for user %s: %w", userID.String(), err)
	}

	return exists, nil
}
