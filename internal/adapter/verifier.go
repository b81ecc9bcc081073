// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/models"
)

// NewVerifier picks the verifier selected by cfg.Adapter.Mode.
func NewVerifier(cfg *config.ClientConfig, log *logger.Logger) (CredentialVerifier, error) {
	switch cfg.Adapter.Mode {
	case config.AdapterModeDemo:
		log.Info().Dur("latency", cfg.App.SignInLatency).Msg("using demo credential verifier")
		return NewDemoVerifier(models.DemoAccounts(), cfg.App.SignInLatency), nil
	case config.AdapterModeHTTP:
		log.Info().Str("address", cfg.Adapter.HTTPAddress).Msg("using http credential verifier")
		return NewHTTPVerifier(cfg.Adapter, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Adapter.Mode)
	}
}
