package service

import (
	"context"

	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/events"
	"github.com/GlebRadaev/skillswap/internal/handlers/account"
	"github.com/GlebRadaev/skillswap/internal/handlers/auth"
	"github.com/GlebRadaev/skillswap/internal/handlers/sessions"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/GlebRadaev/skillswap/internal/repo"
	authservice "github.com/GlebRadaev/skillswap/internal/service/authservice"
	bookingservice "github.com/GlebRadaev/skillswap/internal/service/bookingservice"
	walletservice "github.com/GlebRadaev/skillswap/internal/service/walletservice"
	pkgauth "github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/keylock"
)

const TokenIssuer = "skillswap"

type Seeder interface {
	SeedDemo(ctx context.Context) error
}

type Services struct {
	AuthService    auth.Service
	AccountService account.Service
	SessionService sessions.Service
	Validator      pkgauth.TokenValidator
	Seeder         Seeder
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, publisher events.Publisher) *Services {
	// bookings and purchases must share one lock table
	locker := keylock.New()

	authService := authservice.New(cfg, repo.Credentials, repo.Accounts, txManager,
		&pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret, TokenIssuer), publisher)
	bookingService := bookingservice.New(cfg, repo.Accounts, repo.Sessions, repo.Transactions, repo.Credentials,
		txManager, locker, publisher)
	walletService := walletservice.New(cfg, repo.Accounts, repo.Transactions, txManager, locker, publisher)

	return &Services{
		AuthService:    authService,
		AccountService: walletService,
		SessionService: bookingService,
		Validator:      authService,
		Seeder:         authService,
	}
}
