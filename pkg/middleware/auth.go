package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/utils"
)

// Auth validates a Bearer token issued by the external identity provider and
// resolves the caller's identity once: the subject claim becomes the user ID
// and the numeric status claim (3 = manager, 4 = administrator) is mapped to
// an entity.Role before anything downstream runs.
func Auth(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Invalid token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				utils.ResponseUnauthorized(w, "Token subject missing")
				return
			}

			// Numeric claims arrive as float64 from the JSON decoder.
			status := 0
			if v, ok := claims["status"].(float64); ok {
				status = int(v)
			}
			role := entity.RoleFromStatusClaim(status)

			ctx := utils.SetUserContext(r.Context(), sub, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
