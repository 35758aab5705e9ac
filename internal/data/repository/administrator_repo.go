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

type AdministratorRepository interface {
	Create(ctx context.Context, admin *entity.Administrator) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Administrator, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type administratorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdministratorRepository(db database.PgxIface, log *zap.Logger) AdministratorRepository {
	return &administratorRepository{
		db:  db,
		log: log.With(zap.String("repository", "administrator")),
	}
}

func (r *administratorRepository) Create(ctx context.Context, admin *entity.Administrator) error {
	query := `
		INSERT INTO administrators (id, user_id, manager_id, title, phone_number, hire_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		admin.ID,
		admin.UserID,
		admin.ManagerID,
		admin.Title,
		admin.PhoneNumber,
		admin.HireDate,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create administrator",
			zap.Error(err),
			zap.String("user_id", admin.UserID.String()),
		)
		return fmt.Errorf("create administrator for user %s: %w", admin.UserID.String(), err)
	}

	return nil
}

func (r *administratorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Administrator, error) {
	query := `
		SELECT id, user_id, manager_id, title, phone_number, hire_date, created_at, updated_at
		FROM administrators
		WHERE user_id = $1
	`

	var admin entity.Administrator
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&admin.ID,
		&admin.UserID,
		&admin.ManagerID,
		&admin.Title,
		&admin.PhoneNumber,
		&admin.HireDate,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find administrator by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find administrator by user ID %s: %w", userID.String(), err)
	}

	return &admin, nil
}

func (r *administratorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM administrators WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete administrator",
			zap.Error(err),
			zap.String("administrator_id", id.String()),
		)
		return fmt.Errorf("delete administrator %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("administrator %s not found", id.String())
	}

	r.log.Info("Administrator deleted", zap.String("administrator_id", id.String()))
	return nil
}
