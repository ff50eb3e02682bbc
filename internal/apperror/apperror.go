package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrMissingField = fmt.Errorf("%w: missing field", ErrValidation)
	ErrInvalidEmail = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrWeakPassword = fmt.Errorf("%w: weak password", ErrValidation)

	ErrDuplicateAccount   = errors.New("duplicate account")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNotFound           = errors.New("not found")
	ErrInvalidBooking     = errors.New("invalid booking")
	ErrTimeout            = errors.New("timeout")
	ErrInternal           = errors.New("internal error")
)

// AppError pairs an error kind with a message that is safe to show to the user.
type AppError struct {
	Err     error
	Message string
	Field   string
	Cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func Validation(kind error, field, message string) *AppError {
	return &AppError{Err: kind, Message: message, Field: field}
}

func MissingField(field string) *AppError {
	return Validation(ErrMissingField, field, "Please fill in all required fields")
}

func InvalidEmail() *AppError {
	return Validation(ErrInvalidEmail, "email", "Please enter a valid email address")
}

func WeakPassword(minLen int) *AppError {
	return Validation(ErrWeakPassword, "password", fmt.Sprintf("Password must be at least %d characters long", minLen))
}

func DuplicateAccount(email string) *AppError {
	return &AppError{
		Err:     ErrDuplicateAccount,
		Message: fmt.Sprintf("An account with email %s already exists. Please try signing in instead.", email),
		Field:   "email",
	}
}

// InvalidCredentials never says which half of the pair was wrong.
func InvalidCredentials() *AppError {
	return &AppError{Err: ErrInvalidCredentials, Message: "Invalid email or password"}
}

func Unauthorized(cause error) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: "Unauthorized", Cause: cause}
}

func InsufficientFunds(need, have int64) *AppError {
	return &AppError{
		Err:     ErrInsufficientFunds,
		Message: fmt.Sprintf("insufficient credits: need %d, have %d", need, have),
	}
}

func NotFound(resource, id string) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found with id %s", resource, id)}
}

func InvalidBooking(message string) *AppError {
	return &AppError{Err: ErrInvalidBooking, Message: message}
}

func Timeout(message string, cause error) *AppError {
	return &AppError{Err: ErrTimeout, Message: message, Cause: cause}
}

func Internal(cause error) *AppError {
	return &AppError{Err: ErrInternal, Message: "Internal server error", Cause: cause}
}

// Wrap returns err untouched when it already carries a kind, otherwise it is
// reported as ErrInternal.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return Internal(err)
}

// Kind names the error kind of err, for logs and metric labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrDuplicateAccount):
		return "duplicate_account"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidBooking):
		return "invalid_booking"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	default:
		return "internal"
	}
}
