package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Message: message})
}

// StatusFor maps an error kind onto the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidCredentials), errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidBooking):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithAppError writes err with the status of its kind. Errors without a
// kind are logged and hidden behind a generic message.
func RespondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}
	status := StatusFor(appErr)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(appErr.Cause))
	}
	RespondWithJSON(w, status, Response{Message: appErr.Message, Field: appErr.Field})
}
