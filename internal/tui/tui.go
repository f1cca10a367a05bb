// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the DMLabs dashboard as a terminal interface built on
// bubbletea. The login flow and the main dashboard run as separate programs;
// the application layer decides which one to start from the stored session.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paydev-web/dmlabs-client/internal/logger"
	"github.com/paydev-web/dmlabs-client/internal/service"
	"github.com/paydev-web/dmlabs-client/models"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// LoginFlow runs the welcome / login / signup screens until the user is
// authenticated. Returns ErrUserQuit when the user leaves without signing in.
func (t *TUI) LoginFlow(ctx context.Context) (*models.UserSession, error) {
	log := t.logger.With().Str("func", "LoginFlow").Logger()

	program := tea.NewProgram(newLoginAppModel(ctx, t.services), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		log.Err(err).Msg("error running login flow")
		return nil, fmt.Errorf("login flow: %w", err)
	}

	m, ok := final.(appModel)
	if !ok {
		return nil, fmt.Errorf("login flow: unexpected final model %T", final)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.resultSession == nil {
		return nil, ErrUserQuit
	}

	log.Info().Str("email", m.resultSession.Email).Msg("user signed in")
	return m.resultSession, nil
}

// DashboardLoop runs the main dashboard for the given session. The returned
// logout flag tells the caller that the user logged out rather than quit, so
// the login flow should be offered again.
func (t *TUI) DashboardLoop(ctx context.Context, session *models.UserSession) (bool, error) {
	log := t.logger.With().Str("func", "DashboardLoop").Logger()

	program := tea.NewProgram(newMainAppModel(ctx, t.services, session), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		log.Err(err).Msg("error running dashboard")
		return false, fmt.Errorf("dashboard: %w", err)
	}

	m, ok := final.(appModel)
	if !ok {
		return false, fmt.Errorf("dashboard: unexpected final model %T", final)
	}
	if m.err != nil && m.err != ErrUserQuit {
		return false, m.err
	}

	return m.logout, nil
}
