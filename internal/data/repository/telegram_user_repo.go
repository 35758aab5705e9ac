package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"
)

type TelegramUserRepository interface {
	Create(ctx context.Context, user *entity.TelegramUser) error
	FindByTelegramID(ctx context.Context, telegramID string) (*entity.TelegramUser, error)
}

type telegramUserRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTelegramUserRepository(db database.PgxIface, log *zap.Logger) TelegramUserRepository {
	return &telegramUserRepository{
		db:  db,
		log: log.With(zap.String("repository", "telegram_user")),
	}
}

func (r *telegramUserRepository) Create(ctx context.Context, user *entity.TelegramUser) error {
	query := `
		INSERT INTO telegram_users (id, telegram_id, first_name, last_name, phone_number, username, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.TelegramID,
		user.FirstName,
		user.LastName,
		user.PhoneNumber,
		user.Username,
		user.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create telegram user",
			zap.Error(err),
			zap.String("telegram_id", user.TelegramID),
		)
		return fmt.Errorf("create telegram user %s: %w", user.TelegramID, err)
	}

	return nil
}

func (r *telegramUserRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.TelegramUser, error) {
	query := `
		SELECT id, telegram_id, first_name, last_name, phone_number, username, created_at
		FROM telegram_users
		WHERE telegram_id = $1
	`

	var user entity.TelegramUser
	err := r.db.QueryRow(ctx, query, telegramID).Scan(
		&user.ID,
		&user.TelegramID,
		&user.FirstName,
		&user.LastName,
		&user.PhoneNumber,
		&user.Username,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find telegram user",
			zap.Error(err),
			zap.String("telegram_id", telegramID),
		)
		return nil, fmt.Errorf("find telegram user %s: %w", telegramID, err)
	}

	return &user, nil
}
