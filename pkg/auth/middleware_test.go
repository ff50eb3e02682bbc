package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatorFunc func(ctx context.Context, token string) (string, error)

func (f validatorFunc) Validate(ctx context.Context, token string) (string, error) {
	return f(ctx, token)
}

func TestMiddleware(t *testing.T) {
	validator := validatorFunc(func(_ context.Context, token string) (string, error) {
		if token == "good" {
			return "user-1", nil
		}
		return "", errors.New("invalid token")
	})

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Middleware(validator)(next)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser string
	}{
		{"Valid token", "Bearer good", http.StatusNoContent, "user-1"},
		{"Missing header", "", http.StatusUnauthorized, ""},
		{"Wrong scheme", "Basic good", http.StatusUnauthorized, ""},
		{"Rejected token", "Bearer bad", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/api/account", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedUser, seen)
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	userID, ok := UserIDFromContext(context.WithValue(context.Background(), UserIDKey, "user-1"))
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)
}
