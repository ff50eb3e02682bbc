package accountrepo

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
	"github.com/stretchr/testify/require"
)

var columns = []string{"user_id", "credit_balance", "rating", "total_sessions", "title", "bio", "location", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func accountRow(ts time.Time, balance int64) *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow("u1", balance, 4.9, 3, "Developer", "", "Austin, TX", ts, ts)
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT " + accountColumns + " FROM accounts WHERE user_id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Account found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnRows(accountRow(ts, 10))
			},
			result: &domain.Account{
				UserID: "u1", CreditBalance: 10, Rating: 4.9, TotalSessions: 3,
				Title: "Developer", Location: "Austin, TX", CreatedAt: ts, UpdatedAt: ts,
			},
		},
		{
			name: "Account missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), "u1")
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

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	ts := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE user_id = $1 FOR UPDATE")).
		WithArgs("u1").
		WillReturnRows(accountRow(ts, 7))

	account, err := repo.GetForUpdate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.CreditBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ts := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (user_id, credit_balance)")).
		WithArgs("u1", int64(10)).
		WillReturnRows(accountRow(ts, 10))

	account, err := repo.Create(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), account.CreditBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE accounts SET credit_balance = credit_balance - $1")

	tests := []struct {
		name      string
		amount    int64
		mockSetup func()
		target    error
		balance   int64
	}{
		{
			name:   "Balance covers the debit",
			amount: 4,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(4), "u1").
					WillReturnRows(pgxmock.NewRows([]string{"credit_balance"}).AddRow(int64(6)))
			},
			balance: 6,
		},
		{
			name:   "Balance too low",
			amount: 20,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(20), "u1").WillReturnError(pgx.ErrNoRows)
			},
			target: apperror.ErrInsufficientFunds,
		},
		{
			name:      "Zero amount rejected before the query",
			amount:    0,
			mockSetup: func() {},
			target:    apperror.ErrValidation,
		},
		{
			name:      "Negative amount rejected before the query",
			amount:    -3,
			mockSetup: func() {},
			target:    apperror.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.Debit(context.Background(), "u1", tt.amount)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.balance, balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE")

	mock.ExpectQuery(query).WithArgs("teacher", int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"credit_balance"}).AddRow(int64(4)))
	balance, err := repo.Credit(context.Background(), "teacher", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), balance)

	mock.ExpectQuery(query).WithArgs("teacher", int64(4)).WillReturnError(errors.New("database error"))
	_, err = repo.Credit(context.Background(), "teacher", 4)
	assert.EqualError(t, err, "database error")

	_, err = repo.Credit(context.Background(), "teacher", 0)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddSession(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET total_sessions = total_sessions + 1")).
		WithArgs("u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.AddSession(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile(t *testing.T) {
	repo, mock := NewMock(t)
	ts := time.Now()
	bio := "Guitarist"
	rating := 4.5
	upd := domain.ProfileUpdate{Bio: &bio, Rating: &rating}
	query := regexp.QuoteMeta("UPDATE accounts SET title = COALESCE($1, title)")

	mock.ExpectQuery(query).
		WithArgs(upd.Title, upd.Bio, upd.Location, upd.Rating, "u1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow("u1", int64(10), 4.5, 0, "", "Guitarist", "", ts, ts))

	account, err := repo.UpdateProfile(context.Background(), "u1", upd)
	require.NoError(t, err)
	assert.Equal(t, "Guitarist", account.Bio)
	assert.Equal(t, 4.5, account.Rating)
	assert.Equal(t, int64(10), account.CreditBalance)

	mock.ExpectQuery(query).
		WithArgs(upd.Title, upd.Bio, upd.Location, upd.Rating, "ghost").
		WillReturnError(pgx.ErrNoRows)
	account, err = repo.UpdateProfile(context.Background(), "ghost", upd)
	assert.NoError(t, err)
	assert.Nil(t, account)

	assert.NoError(t, mock.ExpectationsWereMet())
}
