// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebelikov/lotus/internal/config"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/internal/workers"
	"github.com/ebelikov/lotus/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// TUI is the terminal front-end. Run blocks for the lifetime of the
// program loop.
type TUI struct {
	services  *service.ClientServices
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run assembles the pages, starts the background balance refresh and runs
// the Bubble Tea program until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
		"timer":    NewTimerModel(ctx, t.services.PointsService, t.cfg.Timer.FocusDuration),
		"profile":  NewProfileModel(ctx, t.services.ProfileService),
		"stats":    NewStatsModel(ctx, t.services.StatsService),
	}

	auth := t.services.AuthService
	fetchServerVersion := func() tea.Msg {
		version, err := auth.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}

	root := NewRootModel(pages, "menu", t.buildInfo, fetchServerVersion)
	program := tea.NewProgram(root, tea.WithAltScreen())

	refresh := workers.NewPointsRefreshWorker(
		ctx,
		t.services.AuthService,
		t.services.PointsService,
		t.cfg.Workers.RefreshInterval,
		func(points int64) { program.Send(pointsRefreshedMsg{points: points}) },
		t.logger,
	)
	workers.NewWorkers(refresh).Run()

	finalModel, runErr := program.Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
