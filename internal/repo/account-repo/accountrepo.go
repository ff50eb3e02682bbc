package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"go.uber.org/zap"
)

const accountColumns = `user_id, credit_balance, rating, total_sessions, title, bio, location, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.UserID, &a.CreditBalance, &a.Rating, &a.TotalSessions, &a.Title, &a.Bio, &a.Location, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Get(ctx context.Context, userID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1`
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// GetForUpdate row-locks the account until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 FOR UPDATE`
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Create(ctx context.Context, userID string, balance int64) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, credit_balance)
		VALUES ($1, $2)
		RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID, balance))
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Debit takes amount off the balance and returns the new balance. The update
// is conditional, so a concurrent writer can never push the balance below zero.
func (r *Repository) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperror.Validation(apperror.ErrValidation, "amount", "amount must be a positive number of credits")
	}
	query := `
		UPDATE accounts
		SET credit_balance = credit_balance - $1, updated_at = now()
		WHERE user_id = $2 AND credit_balance >= $1
		RETURNING credit_balance
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, amount, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &apperror.AppError{Err: apperror.ErrInsufficientFunds, Message: "insufficient credits"}
		}
		zap.L().Error("failed to debit account", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Credit adds amount to the balance, opening a zero-balance account first
// when the user has none yet.
func (r *Repository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperror.Validation(apperror.ErrValidation, "amount", "amount must be a positive number of credits")
	}
	query := `
		INSERT INTO accounts (user_id, credit_balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET credit_balance = accounts.credit_balance + EXCLUDED.credit_balance, updated_at = now()
		RETURNING credit_balance
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, userID, amount).Scan(&balance)
	if err != nil {
		zap.L().Error("failed to credit account", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) AddSession(ctx context.Context, userID string) error {
	query := `
		UPDATE accounts
		SET total_sessions = total_sessions + 1, updated_at = now()
		WHERE user_id = $1
	`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to count session", zap.Error(err))
		return err
	}
	return nil
}

// UpdateProfile merges the non-nil fields of upd. It returns nil when the
// account does not exist.
func (r *Repository) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET title = COALESCE($1, title),
			bio = COALESCE($2, bio),
			location = COALESCE($3, location),
			rating = COALESCE($4, rating),
			updated_at = now()
		WHERE user_id = $5
		RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRow(ctx, query, upd.Title, upd.Bio, upd.Location, upd.Rating, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to update profile", zap.Error(err))
		return nil, err
	}
	return account, nil
}
