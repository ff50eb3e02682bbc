package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/dto"
	"github.com/GlebRadaev/skillswap/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestSignUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedField string
	}{
		{
			name: "Successful registration",
			body: `{"email":"new@skillswap.com","password":"password123","displayName":"New User"}`,
			prepareMock: func() {
				service.EXPECT().SignUp(context.Background(), "new@skillswap.com", "password123", "New User").
					Return(&domain.AuthResult{Token: "some-jwt-token", UserID: "u1", DisplayName: "New User"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Account already exists",
			body: `{"email":"demo@skillswap.com","password":"password123","displayName":"Demo"}`,
			prepareMock: func() {
				service.EXPECT().SignUp(context.Background(), "demo@skillswap.com", "password123", "Demo").
					Return(nil, apperror.DuplicateAccount("demo@skillswap.com"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "An account with email demo@skillswap.com already exists. Please try signing in instead.",
			expectedField: "email",
		},
		{
			name: "Weak password",
			body: `{"email":"new@skillswap.com","password":"123","displayName":"New User"}`,
			prepareMock: func() {
				service.EXPECT().SignUp(context.Background(), "new@skillswap.com", "123", "New User").
					Return(nil, apperror.WeakPassword(6))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Password must be at least 6 characters long",
			expectedField: "password",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Storage failure",
			body: `{"email":"new@skillswap.com","password":"password123","displayName":"New User"}`,
			prepareMock: func() {
				service.EXPECT().SignUp(context.Background(), "new@skillswap.com", "password123", "New User").
					Return(nil, errors.New("connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.SignUp(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				assert.Equal(t, tt.expectedField, resp.Field)
				return
			}

			var resp dto.AuthResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, "u1", resp.UserID)
			assert.Equal(t, "dashboard", resp.NextPage)
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}

func TestSignInHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"demo@skillswap.com","password":"demo123"}`,
			prepareMock: func() {
				service.EXPECT().
					SignIn(context.Background(), "demo@skillswap.com", "demo123").
					Return(&domain.AuthResult{Token: "some-jwt-token", UserID: "u1", DisplayName: "Demo User"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"demo@skillswap.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					SignIn(context.Background(), "demo@skillswap.com", "wrongpassword").
					Return(nil, apperror.InvalidCredentials())
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid email or password",
		},
		{
			name: "Missing password",
			body: `{"email":"demo@skillswap.com"}`,
			prepareMock: func() {
				service.EXPECT().
					SignIn(context.Background(), "demo@skillswap.com", "").
					Return(nil, apperror.MissingField("password"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Please fill in all required fields",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/signin", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.SignIn(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}
