package auth

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/dto"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type Service interface {
	SignUp(ctx context.Context, email, password, displayName string) (*domain.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp godoc
//
//	@Summary		Register a new user
//	@Description	Create an account with email, password and display name. The account starts with the welcome credit grant.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignUpRequestDTO	true	"Sign up request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation error"
//	@Failure		409		{object}	utils.Response	"Account already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.authService.SignUp(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	respondWithToken(w, "User successfully registered", res)
}

// SignIn godoc
//
//	@Summary		Authenticate user
//	@Description	Sign in with email and password and get a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignInRequestDTO	true	"Sign in request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation error"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	respondWithToken(w, "User successfully authenticated", res)
}

func respondWithToken(w http.ResponseWriter, message string, res *domain.AuthResult) {
	w.Header().Set("Authorization", "Bearer "+res.Token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message:     message,
		Token:       res.Token,
		UserID:      res.UserID,
		DisplayName: res.DisplayName,
		NextPage:    "dashboard",
	})
}
