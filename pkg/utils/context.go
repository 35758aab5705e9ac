package utils

import (
	"context"

	"github.com/google/uuid"

	"restaurant-booking/internal/data/entity"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
)

func SetUserContext(ctx context.Context, userID string, role entity.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, RoleKey, role)
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetRoleFromContext(ctx context.Context) entity.Role {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return entity.RoleCustomer
	}

	role, ok := roleVal.(entity.Role)
	if !ok {
		return entity.RoleCustomer
	}

	return role
}
