package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, http.StatusCreated, map[string]int{"balance": 10})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"balance":10}`, rr.Body.String())
}

func TestRespondWithAppError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
		expectedField   string
	}{
		{"Missing field", apperror.MissingField("email"), http.StatusBadRequest, "Please fill in all required fields", "email"},
		{"Weak password", apperror.WeakPassword(6), http.StatusBadRequest, "Password must be at least 6 characters long", "password"},
		{"Duplicate account", apperror.DuplicateAccount("a@b.co"), http.StatusConflict, "An account with email a@b.co already exists. Please try signing in instead.", "email"},
		{"Invalid credentials", apperror.InvalidCredentials(), http.StatusUnauthorized, "Invalid email or password", ""},
		{"Unauthorized", apperror.Unauthorized(nil), http.StatusUnauthorized, "Unauthorized", ""},
		{"Insufficient funds", apperror.InsufficientFunds(2, 1), http.StatusPaymentRequired, "insufficient credits: need 2, have 1", ""},
		{"Not found", apperror.NotFound("session", "s1"), http.StatusNotFound, "session not found with id s1", ""},
		{"Invalid booking", apperror.InvalidBooking("cannot book a session with yourself"), http.StatusUnprocessableEntity, "cannot book a session with yourself", ""},
		{"Timeout", apperror.Timeout("try again", nil), http.StatusServiceUnavailable, "try again", ""},
		{"Untyped error", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondWithAppError(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, tt.expectedField, resp.Field)
		})
	}
}
