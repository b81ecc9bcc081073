// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/crypto"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
)

// SessionKey is the slot holding the persisted signed-in user.
const SessionKey = "yuhu_session"

// ClientStorages groups the client-side storage. Close releases the backend
// connection.
type ClientStorages struct {
	Vault SecureStore

	closeFn func() error
}

// Close releases resources held by the vault backend.
func (s *ClientStorages) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// NewClientStorages builds the vault backend selected by cfg.Vault.Backend
// and wraps it in an [encryptedStore] when a vault key is configured.
//
// The sqlite backend opens (creating if needed) the DSN file and runs the
// SQLite migrations; the redis backend pings the server.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.Vault.Backend).Msg("creating client storages...")

	var (
		backend SecureStore
		closeFn func() error
	)

	switch cfg.Vault.Backend {
	case config.VaultBackendMemory:
		backend = NewMemoryStore()

	case config.VaultBackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Vault.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		backend = NewSQLiteStore(db, log)
		closeFn = db.Close

	case config.VaultBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Vault.RedisAddress,
			Password: cfg.Vault.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		backend = NewRedisStore(client, cfg.Vault.KeyPrefix, log)
		closeFn = client.Close

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Vault.Backend)
	}

	if cfg.Vault.Key != "" {
		backend = NewEncryptedStore(backend, crypto.NewKeyChainService(), cfg.Vault.Key)
	}

	return &ClientStorages{
		Vault:   backend,
		closeFn: closeFn,
	}, nil
}
