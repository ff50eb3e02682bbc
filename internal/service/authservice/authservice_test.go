package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/events"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	credentials *MockCredentialRepo
	accounts    *MockAccountRepo
	txManager   *pg.MockTXManager
	hash        *auth.MockHashServiceInterface
	jwt         *auth.MockJWTServiceInterface
	publisher   *events.MockPublisher
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		credentials: NewMockCredentialRepo(ctrl),
		accounts:    NewMockAccountRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
		hash:        auth.NewMockHashServiceInterface(ctrl),
		jwt:         auth.NewMockJWTServiceInterface(ctrl),
		publisher:   events.NewMockPublisher(ctrl),
	}
	cfg := &config.Config{StartingCredits: 10, TokenTTL: time.Hour}
	service := New(cfg, m.credentials, m.accounts, m.txManager, m.hash, m.jwt, m.publisher)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func runInTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		displayName   string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:        "Successful sign-up",
			email:       "  New.User@Example.com ",
			password:    "password123",
			displayName: "New User",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "new.user@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("password123").Return("hashed", nil)
				runInTx(m)
				var userID string
				m.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cred *domain.Credential) error {
					userID = cred.UserID
					assert.Equal(t, "new.user@example.com", cred.Email)
					assert.Equal(t, "hashed", cred.PasswordHash)
					assert.Equal(t, "New User", cred.DisplayName)
					return nil
				})
				m.accounts.EXPECT().Create(gomock.Any(), gomock.Any(), int64(10)).DoAndReturn(func(_ context.Context, id string, balance int64) (*domain.Account, error) {
					assert.Equal(t, userID, id)
					return &domain.Account{UserID: id, CreditBalance: balance}, nil
				})
				m.jwt.EXPECT().GenerateJWT(gomock.Any(), fixedNow.Add(time.Hour)).Return("token", nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e events.Event) {
					assert.Equal(t, events.UserSignedUp, e.Type)
					assert.Equal(t, NextPage, e.Data["next_page"])
				})
			},
		},
		{
			name:          "Weak password",
			email:         "new@x.io",
			password:      "abc",
			displayName:   "N",
			prepareMock:   func(m *mocks) {},
			expectedError: apperror.ErrWeakPassword,
		},
		{
			name:          "Missing display name",
			email:         "new@x.io",
			password:      "password123",
			displayName:   "   ",
			prepareMock:   func(m *mocks) {},
			expectedError: apperror.ErrMissingField,
		},
		{
			name:          "Missing email",
			email:         "",
			password:      "password123",
			displayName:   "N",
			prepareMock:   func(m *mocks) {},
			expectedError: apperror.ErrMissingField,
		},
		{
			name:          "Invalid email",
			email:         "new-at-x.io",
			password:      "password123",
			displayName:   "N",
			prepareMock:   func(m *mocks) {},
			expectedError: apperror.ErrInvalidEmail,
		},
		{
			name:        "Email already registered",
			email:       "demo@skillswap.com",
			password:    "password123",
			displayName: "Someone",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "demo@skillswap.com").Return(&domain.Credential{UserID: "u1"}, nil)
			},
			expectedError: apperror.ErrDuplicateAccount,
		},
		{
			name:        "Email registered concurrently",
			email:       "new@x.io",
			password:    "password123",
			displayName: "N",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "new@x.io").Return(nil, nil)
				m.hash.EXPECT().HashPassword("password123").Return("hashed", nil)
				runInTx(m)
				m.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperror.DuplicateAccount("new@x.io"))
			},
			expectedError: apperror.ErrDuplicateAccount,
		},
		{
			name:        "Account creation fails",
			email:       "new@x.io",
			password:    "password123",
			displayName: "N",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "new@x.io").Return(nil, nil)
				m.hash.EXPECT().HashPassword("password123").Return("hashed", nil)
				runInTx(m)
				m.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.accounts.EXPECT().Create(gomock.Any(), gomock.Any(), int64(10)).Return(nil, errors.New("database error"))
			},
			expectedError: apperror.ErrInternal,
		},
		{
			name:        "Error hashing password",
			email:       "new@x.io",
			password:    "password123",
			displayName: "N",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "new@x.io").Return(nil, nil)
				m.hash.EXPECT().HashPassword("password123").Return("", errors.New("hash error"))
			},
			expectedError: apperror.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			res, err := service.SignUp(context.Background(), tt.email, tt.password, tt.displayName)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", res.Token)
			assert.NotEmpty(t, res.UserID)
			assert.Equal(t, "New User", res.DisplayName)
		})
	}
}

func TestSignUp_WeakPasswordMessage(t *testing.T) {
	service, _ := NewMock(t)

	_, err := service.SignUp(context.Background(), "new@x.io", "abc", "N")
	assert.EqualError(t, err, "Password must be at least 6 characters long")
}

func TestSignIn(t *testing.T) {
	cred := &domain.Credential{UserID: "u1", Email: "demo@skillswap.com", PasswordHash: "hashed", DisplayName: "Demo User"}

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:     "Successful sign-in",
			email:    "Demo@SkillSwap.com",
			password: "demo123",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "demo@skillswap.com").Return(cred, nil)
				m.hash.EXPECT().ComparePassword("hashed", "demo123").Return(true)
				m.jwt.EXPECT().GenerateJWT("u1", fixedNow.Add(time.Hour)).Return("token", nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "Unknown email",
			email:    "nobody@x.io",
			password: "demo123",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "nobody@x.io").Return(nil, nil)
			},
			expectedError: apperror.ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			email:    "demo@skillswap.com",
			password: "wrong",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "demo@skillswap.com").Return(cred, nil)
				m.hash.EXPECT().ComparePassword("hashed", "wrong").Return(false)
			},
			expectedError: apperror.ErrInvalidCredentials,
		},
		{
			name:     "Database error",
			email:    "demo@skillswap.com",
			password: "demo123",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "demo@skillswap.com").Return(nil, errors.New("database error"))
			},
			expectedError: apperror.ErrInternal,
		},
		{
			name:     "Error generating token",
			email:    "demo@skillswap.com",
			password: "demo123",
			prepareMock: func(m *mocks) {
				m.credentials.EXPECT().FindByEmail(gomock.Any(), "demo@skillswap.com").Return(cred, nil)
				m.hash.EXPECT().ComparePassword("hashed", "demo123").Return(true)
				m.jwt.EXPECT().GenerateJWT("u1", gomock.Any()).Return("", errors.New("token generation error"))
			},
			expectedError: apperror.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			res, err := service.SignIn(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &domain.AuthResult{Token: "token", UserID: "u1", DisplayName: "Demo User"}, res)
		})
	}
}

func TestSignIn_SameMessageForUnknownEmailAndWrongPassword(t *testing.T) {
	service, m := NewMock(t)
	m.credentials.EXPECT().FindByEmail(gomock.Any(), "nobody@x.io").Return(nil, nil)
	m.credentials.EXPECT().FindByEmail(gomock.Any(), "demo@skillswap.com").Return(&domain.Credential{UserID: "u1", PasswordHash: "hashed"}, nil)
	m.hash.EXPECT().ComparePassword("hashed", "wrong").Return(false)

	_, unknown := service.SignIn(context.Background(), "nobody@x.io", "wrong")
	_, mismatch := service.SignIn(context.Background(), "demo@skillswap.com", "wrong")
	assert.Equal(t, unknown.Error(), mismatch.Error())
}

func TestValidate(t *testing.T) {
	service, m := NewMock(t)

	_, err := service.Validate(context.Background(), "")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	m.jwt.EXPECT().ValidateToken("bad").Return(nil, auth.ErrInvalidToken)
	_, err = service.Validate(context.Background(), "bad")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	m.jwt.EXPECT().ValidateToken("good").Return(&auth.Claims{UserID: "u1"}, nil)
	userID, err := service.Validate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestSeedDemo(t *testing.T) {
	service, m := NewMock(t)

	m.hash.EXPECT().HashPassword(gomock.Any()).Return("hashed", nil).Times(len(DemoAccounts))
	runInTx(m)
	for i, demo := range DemoAccounts {
		if i == 0 {
			// added earlier at runtime, with its own account
			m.credentials.EXPECT().FindByEmail(gomock.Any(), demo.Email).Return(&domain.Credential{UserID: "existing", Email: demo.Email}, nil)
			m.accounts.EXPECT().Get(gomock.Any(), "existing").Return(&domain.Account{UserID: "existing", CreditBalance: 3}, nil)
			continue
		}
		m.credentials.EXPECT().FindByEmail(gomock.Any(), demo.Email).Return(nil, nil)
		m.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.accounts.EXPECT().Create(gomock.Any(), gomock.Any(), int64(10)).Return(&domain.Account{}, nil)
	}

	require.NoError(t, service.SeedDemo(context.Background()))
}

func TestSeedDemo_RollsBackOnError(t *testing.T) {
	service, m := NewMock(t)

	m.hash.EXPECT().HashPassword(gomock.Any()).Return("hashed", nil).Times(len(DemoAccounts))
	runInTx(m)
	m.credentials.EXPECT().FindByEmail(gomock.Any(), DemoAccounts[0].Email).Return(nil, errors.New("database error"))

	assert.EqualError(t, service.SeedDemo(context.Background()), "database error")
}
