package transactionrepo

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"go.uber.org/zap"
)

// Repository is the transaction ledger. It only ever inserts and reads rows.
type Repository struct {
	db  pg.Database
	now func() time.Time
}

func New(db pg.Database) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
	}
}

// Append stores t, filling in the id and timestamp when they are unset.
func (r *Repository) Append(ctx context.Context, t *domain.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = r.now().UTC()
	}
	query := `
		INSERT INTO transactions (id, user_id, kind, amount, description, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, t.ID, t.UserID, string(t.Kind), t.Amount, t.Description, t.SessionID, t.CreatedAt)
	if err != nil {
		zap.L().Error("can't append transaction", zap.Error(err))
		return err
	}
	return nil
}

// ListForUser yields the user's transactions newest first. Every range over
// the returned sequence runs the query again.
func (r *Repository) ListForUser(ctx context.Context, userID string) iter.Seq2[domain.Transaction, error] {
	query := `
		SELECT id, user_id, kind, amount, description, COALESCE(session_id, ''), created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	return func(yield func(domain.Transaction, error) bool) {
		rows, err := r.db.Query(ctx, query, userID)
		if err != nil {
			zap.L().Error("failed to fetch transactions", zap.Error(err))
			yield(domain.Transaction{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				t         domain.Transaction
				kind      string
				sessionID string
			)
			if err := rows.Scan(&t.ID, &t.UserID, &kind, &t.Amount, &t.Description, &sessionID, &t.CreatedAt); err != nil {
				zap.L().Error("failed to scan transaction row", zap.Error(err))
				yield(domain.Transaction{}, err)
				return
			}
			t.Kind = domain.TransactionKind(kind)
			if sessionID != "" {
				t.SessionID = &sessionID
			}
			if !yield(t, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			zap.L().Error("failed to iterate transactions", zap.Error(err))
			yield(domain.Transaction{}, err)
		}
	}
}
