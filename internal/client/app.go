package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/tui"
	"github.com/MKhiriev/go-blog/internal/workers"
)

var (
	errNoServices = errors.New("client services are required")
	errNoUI       = errors.New("ui is required")
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}

	refresh := workers.NewTokenRefreshWorker(services.AuthService, cfg.TokenRefreshInterval, logger)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(refresh),
		logger:   logger,
	}, nil
}

// Run alternates the login flow and the main loop until the user quits.
// Quitting from either screen is not an error. The API token is revoked
// whenever a session ends.
func (a *App) Run(ctx context.Context) error {
	for {
		username, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
		a.logger.Info().Str("username", username).Msg("session started")

		logout, err := a.session(ctx)
		if revokeErr := a.services.AuthService.Logout(ctx); revokeErr != nil {
			a.logger.Warn().Err(revokeErr).Msg("token revocation failed")
		}
		a.logger.Info().Str("username", username).Msg("session ended")

		if err != nil || !logout {
			return err
		}
	}
}

func (a *App) session(ctx context.Context) (bool, error) {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}
