// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// SignInLatency is the simulated latency of the demo verifier.
	SignInLatency time.Duration
	Version       string
	LogLevel      string
	LogFile       string
}

// ClientAdapter holds settings of the credential verifier.
type ClientAdapter struct {
	Mode           string
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	Vault Vault
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SignInLatency: cfg.App.SignInLatency,
			Version:       cfg.App.Version,
			LogLevel:      cfg.App.LogLevel,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			Mode:           cfg.Adapter.Mode,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Vault: cfg.Storage.Vault,
		},
	}

	return clientCfg, clientCfg.validate()
}
