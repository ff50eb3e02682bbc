package domain

import "time"

type Credential struct {
	UserID       string    `db:"user_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	CreatedAt    time.Time `db:"created_at"`
}

type Account struct {
	UserID        string    `db:"user_id"`
	CreditBalance int64     `db:"credit_balance"`
	Rating        float64   `db:"rating"`
	TotalSessions int       `db:"total_sessions"`
	Title         string    `db:"title"`
	Bio           string    `db:"bio"`
	Location      string    `db:"location"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ProfileUpdate holds the account fields a user may change. Nil fields are
// left untouched. It never carries the credit balance.
type ProfileUpdate struct {
	Title    *string
	Bio      *string
	Location *string
	Rating   *float64
}

type TransactionKind string

const (
	TransactionEarned    TransactionKind = "earned"
	TransactionSpent     TransactionKind = "spent"
	TransactionPurchased TransactionKind = "purchased"
	TransactionGifted    TransactionKind = "gifted"
)

type Transaction struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Kind        TransactionKind `db:"kind"`
	Amount      int64           `db:"amount"`
	Description string          `db:"description"`
	SessionID   *string         `db:"session_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

type Session struct {
	ID            string        `db:"id"`
	TeacherID     string        `db:"teacher_id"`
	StudentID     string        `db:"student_id"`
	SkillID       string        `db:"skill_id"`
	SkillName     string        `db:"skill_name"`
	ScheduledAt   time.Time     `db:"scheduled_at"`
	DurationHours int           `db:"duration_hours"`
	CreditCost    int64         `db:"credit_cost"`
	IsOnline      bool          `db:"is_online"`
	Location      *string       `db:"location"`
	Status        SessionStatus `db:"status"`
	CreatedAt     time.Time     `db:"created_at"`
}

type BookingRequest struct {
	TeacherID      string
	SkillID        string
	SkillName      string
	ScheduledAt    time.Time
	DurationHours  int
	CreditsPerHour int64
	IsOnline       bool
	Location       *string
}

type AuthResult struct {
	Token       string
	UserID      string
	DisplayName string
}

type CreditPackage struct {
	ID      string
	Credits int64
	Price   int
	Popular bool
}

type WalletSummary struct {
	Balance          int64
	TotalEarned      int64
	TotalSpent       int64
	TotalPurchased   int64
	TotalGifted      int64
	ThisMonthCount   int
	TransactionCount int
}

type Purchase struct {
	Package     CreditPackage
	Balance     int64
	Transaction Transaction
}
