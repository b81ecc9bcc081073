// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/service"
)

var ErrNoUI = errors.New("client ui is not configured")

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.SessionStore == nil {
		return nil, service.ErrInvalidDataProvided
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   log.WithComponent("client"),
	}, nil
}

// Run blocks until the UI exits. SIGINT and SIGTERM cancel the UI context.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info().Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("ui stopped with error")
		return fmt.Errorf("client run: %w", err)
	}

	state := a.services.SessionStore.State()
	a.logger.Info().Str("phase", state.Phase().String()).Msg("client stopped")
	return nil
}
