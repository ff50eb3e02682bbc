package dto

import (
	"time"

	"github.com/GlebRadaev/skillswap/internal/domain"
)

type AccountResponseDTO struct {
	UserID        string    `json:"userId"`
	Balance       int64     `json:"balance" example:"10"`
	Rating        float64   `json:"rating" example:"4.8"`
	TotalSessions int       `json:"totalSessions" example:"3"`
	Title         string    `json:"title,omitempty" example:"Guitar teacher"`
	Bio           string    `json:"bio,omitempty"`
	Location      string    `json:"location,omitempty" example:"Austin, TX"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewAccountResponse(a *domain.Account) AccountResponseDTO {
	return AccountResponseDTO{
		UserID:        a.UserID,
		Balance:       a.CreditBalance,
		Rating:        a.Rating,
		TotalSessions: a.TotalSessions,
		Title:         a.Title,
		Bio:           a.Bio,
		Location:      a.Location,
		UpdatedAt:     a.UpdatedAt,
	}
}

type UpdateProfileRequestDTO struct {
	Title    *string  `json:"title,omitempty"`
	Bio      *string  `json:"bio,omitempty"`
	Location *string  `json:"location,omitempty"`
	Rating   *float64 `json:"rating,omitempty" example:"4.5"`
}

func (r UpdateProfileRequestDTO) ToDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Title:    r.Title,
		Bio:      r.Bio,
		Location: r.Location,
		Rating:   r.Rating,
	}
}

type CreditPackageDTO struct {
	ID      string `json:"id" example:"10-credits"`
	Credits int64  `json:"credits" example:"10"`
	Price   int    `json:"price" example:"89"`
	Popular bool   `json:"popular,omitempty"`
}

type PurchaseRequestDTO struct {
	PackageID string `json:"packageId" example:"10-credits"`
	Credits   int64  `json:"credits,omitempty" example:"0"`
}

type PurchaseResponseDTO struct {
	Message     string           `json:"message" example:"Successfully purchased 10 credits!"`
	Balance     int64            `json:"balance" example:"20"`
	Package     CreditPackageDTO `json:"package"`
	Transaction TransactionDTO   `json:"transaction"`
}

type WalletSummaryDTO struct {
	Balance          int64 `json:"balance"`
	TotalEarned      int64 `json:"totalEarned"`
	TotalSpent       int64 `json:"totalSpent"`
	TotalPurchased   int64 `json:"totalPurchased"`
	TotalGifted      int64 `json:"totalGifted"`
	ThisMonth        int   `json:"thisMonth"`
	TransactionCount int   `json:"transactionCount"`
}
