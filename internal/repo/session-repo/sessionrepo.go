package sessionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const sessionColumns = `id, teacher_id, student_id, skill_id, skill_name, scheduled_at, duration_hours,
	credit_cost, is_online, COALESCE(location, ''), status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var (
		s        domain.Session
		location string
		status   string
	)
	err := row.Scan(&s.ID, &s.TeacherID, &s.StudentID, &s.SkillID, &s.SkillName, &s.ScheduledAt, &s.DurationHours,
		&s.CreditCost, &s.IsOnline, &location, &status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if location != "" {
		s.Location = &location
	}
	s.Status = domain.SessionStatus(status)
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (id, teacher_id, student_id, skill_id, skill_name, scheduled_at, duration_hours,
			credit_cost, is_online, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.TeacherID, s.StudentID, s.SkillID, s.SkillName, s.ScheduledAt,
		s.DurationHours, s.CreditCost, s.IsOnline, s.Location, string(s.Status), s.CreatedAt)
	if err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return err
	}
	return nil
}

// Get returns nil when no session has the given id.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	session, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

// ListForUser returns sessions where the user teaches or studies.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE teacher_id = $1 OR student_id = $1
		ORDER BY scheduled_at ASC, created_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			zap.L().Error("can't scan session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate sessions", zap.Error(err))
		return nil, err
	}
	return sessions, nil
}
