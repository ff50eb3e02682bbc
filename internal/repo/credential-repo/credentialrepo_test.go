package credentialrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	selectQuery := regexp.QuoteMeta("SELECT user_id, email, password_hash, display_name, created_at FROM credentials WHERE email = $1")

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.Credential
	}{
		{
			name:  "Credential found",
			email: "demo@skillswap.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "email", "password_hash", "display_name", "created_at"}).
					AddRow("u1", "demo@skillswap.com", "hashed", "Demo User", createdAt)
				mock.ExpectQuery(selectQuery).
					WithArgs("demo@skillswap.com").
					WillReturnRows(rows)
			},
			result: &domain.Credential{
				UserID:       "u1",
				Email:        "demo@skillswap.com",
				PasswordHash: "hashed",
				DisplayName:  "Demo User",
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "Credential not found",
			email: "nobody@skillswap.com",
			mockSetup: func() {
				mock.ExpectQuery(selectQuery).
					WithArgs("nobody@skillswap.com").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "Database error",
			email: "demo@skillswap.com",
			mockSetup: func() {
				mock.ExpectQuery(selectQuery).
					WithArgs("demo@skillswap.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	cred := &domain.Credential{
		UserID:       "u1",
		Email:        "new@skillswap.com",
		PasswordHash: "hashed",
		DisplayName:  "New User",
		CreatedAt:    time.Now(),
	}
	insertQuery := regexp.QuoteMeta("INSERT INTO credentials")

	tests := []struct {
		name      string
		mockSetup func()
		target    error
	}{
		{
			name: "Credential stored",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs(cred.UserID, cred.Email, cred.PasswordHash, cred.DisplayName, cred.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Email already taken",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs(cred.UserID, cred.Email, cred.PasswordHash, cred.DisplayName, cred.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			target: apperror.ErrDuplicateAccount,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs(cred.UserID, cred.Email, cred.PasswordHash, cred.DisplayName, cred.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			target: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), cred)
			switch {
			case tt.target == nil:
				assert.NoError(t, err)
			case errors.Is(tt.target, apperror.ErrDuplicateAccount):
				assert.ErrorIs(t, err, apperror.ErrDuplicateAccount)
				assert.Contains(t, err.Error(), cred.Email)
			default:
				assert.EqualError(t, err, tt.target.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DisplayName(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT display_name FROM credentials WHERE user_id = $1")

	mock.ExpectQuery(query).WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"display_name"}).AddRow("Sarah Chen"))
	name, err := repo.DisplayName(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Sarah Chen", name)

	mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)
	name, err = repo.DisplayName(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Empty(t, name)

	assert.NoError(t, mock.ExpectationsWereMet())
}
