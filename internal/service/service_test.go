package service

import (
	"testing"
	"time"

	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/events"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/GlebRadaev/skillswap/internal/repo"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	cfg := &config.Config{
		JWTSecret:       "secret",
		TokenTTL:        time.Hour,
		StartingCredits: 10,
		LockTimeout:     time.Second,
	}
	services := New(cfg, repo.New(mockDB), pg.NewMockTXManager(ctrl), events.NewMockPublisher(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.SessionService)
	assert.NotNil(t, services.Validator)
	assert.NotNil(t, services.Seeder)
}
