package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/skillswap/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			SkillSwap API
//	@version		1.0
//	@description	Credits ledger and session booking API

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cancel, app.New()); err != nil {
		// zap may not be configured yet when start-up fails early
		log.Error().Err(err).Msg("skillswap stopped")
		zap.L().Error("skillswap stopped", zap.Error(err))
		cancel()
		os.Exit(1)
	}
	zap.L().Info("All systems closed without errors")
}

func run(ctx context.Context, cancel context.CancelFunc, a app.ApplicationI) error {
	if err := a.Start(ctx); err != nil {
		return err
	}
	return a.Wait(ctx, cancel)
}
