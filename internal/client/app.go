// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package client

import (
	"context"
	"errors"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/internal/tui"
)

// App ties the client services and the terminal UI together.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run implements [Client]. It drives the UI until the user quits; the
// derived context stops the background workers on the way out.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("client stopped by user")
			return nil
		}
		return err
	}

	return nil
}
