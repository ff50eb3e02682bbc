package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/events"
	"github.com/GlebRadaev/skillswap/internal/handlers"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func freeAddress(s *ApplicationSuite) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer l.Close()
	return l.Addr().String()
}

func (s *ApplicationSuite) TestHTTPServerLifecycle() {
	ctrl := gomock.NewController(s.T())
	addr := freeAddress(s)

	s.app.cfg = &config.Config{Address: addr, EventWorkers: 1}
	s.app.events = events.New(s.app.cfg, nil)
	s.app.api = &handlers.Handlers{
		AuthHandler:    handlers.NewMockAuthHandler(ctrl),
		AccountHandler: handlers.NewMockAccountHandler(ctrl),
		SessionHandler: handlers.NewMockSessionHandler(ctrl),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.app.startHTTPServer(ctx))

	s.Eventually(func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}
