// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/store"
	"github.com/MKhiriev/yuhu-campus/models"
)

// Services groups the services of the auth server.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the server services and, when enabled, seeds the demo
// accounts.
func NewServices(ctx context.Context, storages *store.Storages, cfg *config.ServerConfig, log *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App.Version)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	if cfg.App.SeedDemoAccounts {
		if err = authService.SeedAccounts(ctx, models.DemoAccounts()); err != nil {
			return nil, fmt.Errorf("error seeding demo accounts: %w", err)
		}
	}

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
