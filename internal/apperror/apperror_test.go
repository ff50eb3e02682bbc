package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "WeakPassword is a validation error",
			err:       WeakPassword(6),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "WeakPassword matches its own kind",
			err:       WeakPassword(6),
			target:    ErrWeakPassword,
			wantMatch: true,
		},
		{
			name:      "InvalidEmail is not a weak password",
			err:       InvalidEmail(),
			target:    ErrWeakPassword,
			wantMatch: false,
		},
		{
			name:      "Internal keeps its cause",
			err:       Internal(errTest),
			target:    errTest,
			wantMatch: true,
		},
		{
			name:      "Internal matches ErrInternal",
			err:       Internal(errTest),
			target:    ErrInternal,
			wantMatch: true,
		},
		{
			name:      "wrapped NotFound still matches",
			err:       fmt.Errorf("lookup: %w", NotFound("account", "u1")),
			target:    ErrNotFound,
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMatch, errors.Is(tt.err, tt.target))
		})
	}
}

var errTest = errors.New("boom")

func TestInsufficientFundsMessage(t *testing.T) {
	err := InsufficientFunds(2, 1)
	assert.Equal(t, "insufficient credits: need 2, have 1", err.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	typed := InvalidBooking("self booking")
	assert.Same(t, typed, Wrap(typed))

	wrapped := Wrap(errTest)
	assert.ErrorIs(t, wrapped, ErrInternal)
	assert.ErrorIs(t, wrapped, errTest)
	assert.Equal(t, "Internal server error", wrapped.Error())
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{MissingField("email"), "validation"},
		{DuplicateAccount("a@b.c"), "duplicate_account"},
		{InvalidCredentials(), "invalid_credentials"},
		{Unauthorized(nil), "unauthorized"},
		{InsufficientFunds(3, 1), "insufficient_funds"},
		{NotFound("session", "s1"), "not_found"},
		{InvalidBooking("nope"), "invalid_booking"},
		{Timeout("slow", nil), "timeout"},
		{errTest, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
