package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// TokenValidator resolves a bearer token to the user id it was issued for.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

func Middleware(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithAppError(w, apperror.Unauthorized(nil))
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			userID, err := v.Validate(r.Context(), token)
			if err != nil {
				utils.RespondWithAppError(w, apperror.Unauthorized(err))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the user id set by Middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
