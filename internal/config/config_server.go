// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds token and provisioning settings of the auth server.
type ServerApp struct {
	TokenSignKey     string
	TokenIssuer      string
	TokenDuration    time.Duration
	SeedDemoAccounts bool
	Version          string
	LogLevel         string
}

// ServerConfig is the auth server view of [StructuredConfig].
type ServerConfig struct {
	App       ServerApp
	DB        DB
	Server    Server
	Telemetry Telemetry
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:     cfg.App.TokenSignKey,
			TokenIssuer:      cfg.App.TokenIssuer,
			TokenDuration:    cfg.App.TokenDuration,
			SeedDemoAccounts: cfg.App.SeedDemoAccounts,
			Version:          cfg.App.Version,
			LogLevel:         cfg.App.LogLevel,
		},
		DB:        cfg.Storage.DB,
		Server:    cfg.Server,
		Telemetry: cfg.Telemetry,
	}

	return serverCfg, serverCfg.validate()
}
