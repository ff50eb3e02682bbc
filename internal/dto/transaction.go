package dto

import (
	"time"

	"github.com/GlebRadaev/skillswap/internal/domain"
)

type TransactionDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type" example:"spent"`
	Amount      int64     `json:"amount" example:"4"`
	Description string    `json:"description" example:"Booked session: Guitar Lessons with Sarah Chen"`
	Date        time.Time `json:"date"`
	SessionID   *string   `json:"sessionId,omitempty"`
}

func NewTransaction(t domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          t.ID,
		Type:        string(t.Kind),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.CreatedAt,
		SessionID:   t.SessionID,
	}
}
