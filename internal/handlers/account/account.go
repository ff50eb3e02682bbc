package account

//go:generate mockgen -source=account.go -destination=mock_account.go -package=account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/dto"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type Service interface {
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Account, error)
	ListPackages() []domain.CreditPackage
	PurchaseCredits(ctx context.Context, userID, packageID string, customCredits int64) (*domain.Purchase, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	Summary(ctx context.Context, userID string) (*domain.WalletSummary, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetAccount godoc
//
//	@Summary		Get account
//	@Description	Retrieve the credit balance and profile of the authorized user
//	@Tags			Account
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/account [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithAppError(w, apperror.Unauthorized(nil))
		return
	}
	account, err := h.accountService.GetAccount(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(account))
}

// UpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Change title, bio, location or rating. The credit balance cannot be set here.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile fields to change"
//	@Success		200		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation error"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/account [patch]
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithAppError(w, apperror.Unauthorized(nil))
		return
	}
	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.accountService.UpdateProfile(r.Context(), userID, req.ToDomain())
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(account))
}

// ListPackages godoc
//
//	@Summary		List credit packages
//	@Description	Credit bundles available for purchase
//	@Tags			Account
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CreditPackageDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/account/credits/packages [get]
func (h *AccountHandler) ListPackages(w http.ResponseWriter, _ *http.Request) {
	packages := h.accountService.ListPackages()
	response := make([]dto.CreditPackageDTO, 0, len(packages))
	for _, p := range packages {
		response = append(response, newPackage(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PurchaseCredits godoc
//
//	@Summary		Purchase credits
//	@Description	Buy a credit package, or a custom amount with packageId "custom"
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request body"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation error"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		503		{object}	utils.Response	"Account is busy"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/account/credits [post]
func (h *AccountHandler) PurchaseCredits(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithAppError(w, apperror.Unauthorized(nil))
		return
	}
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	purchase, err := h.accountService.PurchaseCredits(r.Context(), userID, req.PackageID, req.Credits)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Message:     fmt.Sprintf("Successfully purchased %d credits!", purchase.Package.Credits),
		Balance:     purchase.Balance,
		Package:     newPackage(purchase.Package),
		Transaction: dto.NewTransaction(purchase.Transaction),
	})
}

// Summary godoc
//
//	@Summary		Wallet summary
//	@Description	Totals per transaction kind, this month's activity and the current balance
//	@Tags			Account
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WalletSummaryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/account/summary [get]
func (h *AccountHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithAppError(w, apperror.Unauthorized(nil))
		return
	}
	summary, err := h.accountService.Summary(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletSummaryDTO{
		Balance:          summary.Balance,
		TotalEarned:      summary.TotalEarned,
		TotalSpent:       summary.TotalSpent,
		TotalPurchased:   summary.TotalPurchased,
		TotalGifted:      summary.TotalGifted,
		ThisMonth:        summary.ThisMonthCount,
		TransactionCount: summary.TransactionCount,
	})
}

// ListTransactions godoc
//
//	@Summary		Transaction history
//	@Description	Ledger entries of the authorized user, newest first
//	@Tags			Account
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [get]
func (h *AccountHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithAppError(w, apperror.Unauthorized(nil))
		return
	}
	transactions, err := h.accountService.ListTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	response := make([]dto.TransactionDTO, 0, len(transactions))
	for _, t := range transactions {
		response = append(response, dto.NewTransaction(t))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func newPackage(p domain.CreditPackage) dto.CreditPackageDTO {
	return dto.CreditPackageDTO{
		ID:      p.ID,
		Credits: p.Credits,
		Price:   p.Price,
		Popular: p.Popular,
	}
}
