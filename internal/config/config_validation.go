// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

func (cfg *ClientConfig) validate() error {
	switch cfg.Adapter.Mode {
	case AdapterModeDemo:
		if cfg.App.SignInLatency < 0 {
			return fmt.Errorf("%w: negative sign-in latency", ErrInvalidAppConfigs)
		}
	case AdapterModeHTTP:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: http mode needs address and request timeout", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAdapterConfigs, cfg.Adapter.Mode)
	}

	return cfg.Storage.Vault.validate()
}

func (v Vault) validate() error {
	switch v.Backend {
	case VaultBackendMemory:
		return nil
	case VaultBackendSQLite:
		if v.DSN == "" {
			return fmt.Errorf("%w: sqlite vault needs dsn", ErrInvalidStorageConfigs)
		}
	case VaultBackendRedis:
		if v.RedisAddress == "" {
			return fmt.Errorf("%w: redis vault needs address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown vault backend %q", ErrInvalidStorageConfigs, v.Backend)
	}

	if v.Key == "" {
		return fmt.Errorf("%w: persistent vault needs a key", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("%w: empty database dsn", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token settings are incomplete", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
