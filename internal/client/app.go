package client

import (
	"context"
	"errors"

	"github.com/paydev-web/dmlabs-client/internal/config"
	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/service"
	"github.com/paydev-web/dmlabs-client/internal/tui"
	"github.com/paydev-web/dmlabs-client/internal/workers"
)

// App runs the dashboard client: it restores the stored session, drives the
// login flow when there is none, and keeps the expiry watcher running while
// the dashboard is on screen.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	watcher  workers.ExpiryWatcher
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		watcher:  workers.NewExpiryWatcher(services.SessionService, nil, log),
		workers:  workersCfg,
		logger:   log,
	}, nil
}

// Run implements Client. It blocks until the user quits; a logout restarts
// the cycle at the login flow.
func (a *App) Run() error {
	ctx := context.Background()
	log := a.logger.With().Str("func", "Run").Logger()

	session, err := a.services.SessionService.CheckAuth(ctx)
	if err != nil {
		log.Err(err).Msg("error restoring session")
		return err
	}

	if session == nil {
		session, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.watcher.Start(ctx, a.workers.ExpiryCheckInterval)
	defer a.watcher.Stop()

	logout, err := a.tui.DashboardLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		a.watcher.Stop()
		return a.Run()
	}

	return nil
}
