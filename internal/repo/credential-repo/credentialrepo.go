package credentialrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindByEmail expects an already normalized email and returns nil when no
// credential is stored under it.
func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	query := `
		SELECT user_id, email, password_hash, display_name, created_at
		FROM credentials
		WHERE email = $1
	`
	var cred domain.Credential
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&cred.UserID, &cred.Email, &cred.PasswordHash, &cred.DisplayName, &cred.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find credential", zap.Error(err))
		return nil, err
	}
	return &cred, nil
}

// Create stores cred unless its email is taken, in which case it reports
// ErrDuplicateAccount and leaves the existing entry untouched.
func (repo *Repository) Create(ctx context.Context, cred *domain.Credential) error {
	query := `
		INSERT INTO credentials (user_id, email, password_hash, display_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`
	tag, err := repo.db.Exec(ctx, query, cred.UserID, cred.Email, cred.PasswordHash, cred.DisplayName, cred.CreatedAt)
	if err != nil {
		zap.L().Error("can't save credential", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.DuplicateAccount(cred.Email)
	}
	return nil
}

// DisplayName returns an empty string for unknown users.
func (repo *Repository) DisplayName(ctx context.Context, userID string) (string, error) {
	var name string
	err := repo.db.QueryRow(ctx, "SELECT display_name FROM credentials WHERE user_id = $1", userID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		zap.L().Error("can't get display name", zap.Error(err))
		return "", err
	}
	return name, nil
}
