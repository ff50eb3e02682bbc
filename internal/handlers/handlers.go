package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/skillswap/docs"
	accounthandlers "github.com/GlebRadaev/skillswap/internal/handlers/account"
	authhandlers "github.com/GlebRadaev/skillswap/internal/handlers/auth"
	sessionhandlers "github.com/GlebRadaev/skillswap/internal/handlers/sessions"
	"github.com/GlebRadaev/skillswap/internal/service"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	SignIn(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetAccount(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ListPackages(w http.ResponseWriter, r *http.Request)
	PurchaseCredits(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	Book(w http.ResponseWriter, r *http.Request)
	ListSessions(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	AccountHandler AccountHandler
	SessionHandler SessionHandler
	Validator      auth.TokenValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		AccountHandler: accounthandlers.New(s.AccountService),
		SessionHandler: sessionhandlers.New(s.SessionService),
		Validator:      s.Validator,
	}
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		Service
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.AuthHandler.SignUp)
			r.Post("/signin", h.AuthHandler.SignIn)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.Validator))
			r.Route("/account", func(r chi.Router) {
				r.Get("/", h.AccountHandler.GetAccount)
				r.Patch("/", h.AccountHandler.UpdateProfile)
				r.Get("/summary", h.AccountHandler.Summary)
				r.Route("/credits", func(r chi.Router) {
					r.Post("/", h.AccountHandler.PurchaseCredits)
					r.Get("/packages", h.AccountHandler.ListPackages)
				})
			})
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", h.SessionHandler.Book)
				r.Get("/", h.SessionHandler.ListSessions)
				r.Get("/{id}", h.SessionHandler.GetSession)
			})
			r.Get("/transactions", h.AccountHandler.ListTransactions)
		})
	})

	return r
}
