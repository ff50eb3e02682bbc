package bookingservice

//go:generate mockgen -source=bookingservice.go -destination=mock_bookingservice.go -package=bookingservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/events"
	"github.com/GlebRadaev/skillswap/internal/metrics"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountRepo interface {
	GetForUpdate(ctx context.Context, userID string) (*domain.Account, error)
	Debit(ctx context.Context, userID string, amount int64) (int64, error)
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	AddSession(ctx context.Context, userID string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Session, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, t *domain.Transaction) error
}

type NameResolver interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// Locker serializes work on a set of accounts within the process.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (func(), error)
}

type Service struct {
	accounts    AccountRepo
	sessions    SessionRepo
	ledger      LedgerRepo
	names       NameResolver
	txManager   pg.TXManager
	locker      Locker
	publisher   events.Publisher
	lockTimeout time.Duration
	now         func() time.Time
}

func New(
	cfg *config.Config,
	accounts AccountRepo,
	sessions SessionRepo,
	ledger LedgerRepo,
	names NameResolver,
	txManager pg.TXManager,
	locker Locker,
	publisher events.Publisher,
) *Service {
	return &Service{
		accounts:    accounts,
		sessions:    sessions,
		ledger:      ledger,
		names:       names,
		txManager:   txManager,
		locker:      locker,
		publisher:   publisher,
		lockTimeout: cfg.LockTimeout,
		now:         time.Now,
	}
}

func checkRequest(studentID string, req domain.BookingRequest) error {
	switch {
	case req.TeacherID == "":
		return apperror.InvalidBooking("teacher is required")
	case req.SkillID == "":
		return apperror.InvalidBooking("skill is required")
	case req.TeacherID == studentID:
		return apperror.InvalidBooking("you cannot book a session with yourself")
	case req.ScheduledAt.IsZero():
		return apperror.InvalidBooking("scheduled time is required")
	case req.DurationHours < 1:
		return apperror.InvalidBooking("duration must be at least 1 hour")
	case req.CreditsPerHour < 0:
		return apperror.InvalidBooking("credits per hour cannot be negative")
	}
	return nil
}

func cost(req domain.BookingRequest) (int64, error) {
	hours := int64(req.DurationHours)
	if req.CreditsPerHour > 0 && hours > math.MaxInt64/req.CreditsPerHour {
		return 0, apperror.InvalidBooking("booking cost is too large")
	}
	return hours * req.CreditsPerHour, nil
}

// Book moves the session cost from the student to the teacher and records the
// session together with its pair of ledger entries. Either all of it is
// stored or none of it.
func (s *Service) Book(ctx context.Context, studentID string, req domain.BookingRequest) (session *domain.Session, err error) {
	started := time.Now()
	defer func() {
		metrics.Bookings.WithLabelValues(apperror.Kind(err)).Inc()
		metrics.BookingDuration.Observe(time.Since(started).Seconds())
	}()

	if studentID == "" {
		return nil, apperror.Unauthorized(nil)
	}
	if err := checkRequest(studentID, req); err != nil {
		return nil, err
	}
	amount, err := cost(req)
	if err != nil {
		return nil, err
	}

	skillName := req.SkillName
	if skillName == "" {
		skillName = req.SkillID
	}
	teacherName := s.displayName(ctx, req.TeacherID)
	studentName := s.displayName(ctx, studentID)

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()
	unlock, err := s.locker.Lock(lockCtx, studentID, req.TeacherID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			zap.L().Warn("booking lock timeout", zap.String("studentID", studentID), zap.String("teacherID", req.TeacherID))
			return nil, apperror.Timeout("The accounts are busy, please try again", err)
		}
		return nil, apperror.Wrap(err)
	}
	defer unlock()

	now := s.now().UTC()
	session = &domain.Session{
		ID:            uuid.NewString(),
		TeacherID:     req.TeacherID,
		StudentID:     studentID,
		SkillID:       req.SkillID,
		SkillName:     skillName,
		ScheduledAt:   req.ScheduledAt,
		DurationHours: req.DurationHours,
		CreditCost:    amount,
		IsOnline:      req.IsOnline,
		Location:      req.Location,
		Status:        domain.SessionScheduled,
		CreatedAt:     now,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		student, err := s.accounts.GetForUpdate(ctx, studentID)
		if err != nil {
			return err
		}
		if student == nil {
			return apperror.NotFound("account", studentID)
		}
		if student.CreditBalance < amount {
			return apperror.InsufficientFunds(amount, student.CreditBalance)
		}

		if amount > 0 {
			if _, err := s.accounts.Debit(ctx, studentID, amount); err != nil {
				return err
			}
			if _, err := s.accounts.Credit(ctx, req.TeacherID, amount); err != nil {
				return err
			}
		}
		if err := s.sessions.Create(ctx, session); err != nil {
			return err
		}
		if amount > 0 {
			if err := s.ledger.Append(ctx, &domain.Transaction{
				ID:          uuid.NewString(),
				UserID:      studentID,
				Kind:        domain.TransactionSpent,
				Amount:      amount,
				Description: fmt.Sprintf("Booked session: %s with %s", skillName, teacherName),
				SessionID:   &session.ID,
				CreatedAt:   now,
			}); err != nil {
				return err
			}
			if err := s.ledger.Append(ctx, &domain.Transaction{
				ID:          uuid.NewString(),
				UserID:      req.TeacherID,
				Kind:        domain.TransactionEarned,
				Amount:      amount,
				Description: fmt.Sprintf("Taught session: %s to %s", skillName, studentName),
				SessionID:   &session.ID,
				CreatedAt:   now,
			}); err != nil {
				return err
			}
		}
		if err := s.accounts.AddSession(ctx, studentID); err != nil {
			return err
		}
		return s.accounts.AddSession(ctx, req.TeacherID)
	})
	if err != nil {
		zap.L().Info("booking rejected", zap.String("studentID", studentID), zap.String("teacherID", req.TeacherID), zap.Error(err))
		return nil, apperror.Wrap(err)
	}

	if amount > 0 {
		metrics.CreditsMoved.WithLabelValues(string(domain.TransactionSpent)).Add(float64(amount))
		metrics.CreditsMoved.WithLabelValues(string(domain.TransactionEarned)).Add(float64(amount))
	}
	zap.L().Info("session booked",
		zap.String("sessionID", session.ID),
		zap.String("studentID", studentID),
		zap.String("teacherID", req.TeacherID),
		zap.Int64("cost", amount),
	)
	s.publisher.Publish(ctx, events.Event{
		Type:   events.SessionBooked,
		UserID: studentID,
		Data: map[string]any{
			"session_id":  session.ID,
			"teacher_id":  session.TeacherID,
			"skill_name":  session.SkillName,
			"credit_cost": session.CreditCost,
		},
	})
	return session, nil
}

// displayName falls back to the user id, the name only decorates the ledger.
func (s *Service) displayName(ctx context.Context, userID string) string {
	name, err := s.names.DisplayName(ctx, userID)
	if err != nil || name == "" {
		return userID
	}
	return name
}

// GetSession reports NotFound for sessions the user is not a party to.
func (s *Service) GetSession(ctx context.Context, userID, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	if session == nil || (session.StudentID != userID && session.TeacherID != userID) {
		return nil, apperror.NotFound("session", sessionID)
	}
	return session, nil
}

func (s *Service) ListSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	sessions, err := s.sessions.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	return sessions, nil
}
