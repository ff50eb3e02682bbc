package sessions

//go:generate mockgen -source=sessions.go -destination=mock_sessions.go -package=sessions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/dto"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Book(ctx context.Context, studentID string, req domain.BookingRequest) (*domain.Session, error)
	GetSession(ctx context.Context, userID, sessionID string) (*domain.Session, error)
	ListSessions(ctx context.Context, userID string) ([]domain.Session, error)
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Book godoc
//
//	@Summary		Book a session
//	@Description	Book a teaching session. The cost (duration x credits per hour) moves from the student to the teacher atomically.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.BookSessionRequestDTO	true	"Booking request body"
//	@Success		201		{object}	dto.SessionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient credits"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		422		{object}	utils.Response	"Invalid booking"
//	@Failure		503		{object}	utils.Response	"Account is busy"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sessions [post]
func (h *SessionHandler) Book(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithAppError(w, apperror.Unauthorized(nil))
		return
	}
	var req dto.BookSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	session, err := h.sessionService.Book(r.Context(), userID, req.ToDomain())
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSession(session))
}

// ListSessions godoc
//
//	@Summary		List sessions
//	@Description	Sessions the authorized user teaches or attends, by schedule
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SessionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sessions [get]
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithAppError(w, apperror.Unauthorized(nil))
		return
	}
	sessions, err := h.sessionService.ListSessions(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	response := make([]dto.SessionDTO, 0, len(sessions))
	for i := range sessions {
		response = append(response, dto.NewSession(&sessions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSession godoc
//
//	@Summary		Get session
//	@Description	A single session the authorized user is party to
//	@Tags			Sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Session id"
//	@Success		200	{object}	dto.SessionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Session not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sessions/{id} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithAppError(w, apperror.Unauthorized(nil))
		return
	}
	session, err := h.sessionService.GetSession(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSession(session))
}
