// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/crypto"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
)

// exerciseSecureStore runs the contract every backend must satisfy.
func exerciseSecureStore(t *testing.T, s SecureStore) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, SessionKey)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Delete(ctx, SessionKey), "delete of absent key")

	require.NoError(t, s.Set(ctx, SessionKey, `{"id":"1"}`))
	got, err := s.Get(ctx, SessionKey)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, got)

	require.NoError(t, s.Set(ctx, SessionKey, `{"id":"2"}`))
	got, err = s.Get(ctx, SessionKey)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"2"}`, got)

	require.NoError(t, s.Delete(ctx, SessionKey))
	_, err = s.Get(ctx, SessionKey)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func newTestSQLiteStore(t *testing.T, dsn string) SecureStore {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return NewSQLiteStore(db, logger.Nop())
}

func TestMemoryStore(t *testing.T) {
	exerciseSecureStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	exerciseSecureStore(t, newTestSQLiteStore(t, ":memory:"))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "vault", "yuhu.db")
	ctx := context.Background()

	first := newTestSQLiteStore(t, dsn)
	require.NoError(t, first.Set(ctx, SessionKey, "persisted"))

	second := newTestSQLiteStore(t, dsn)
	got, err := second.Get(ctx, SessionKey)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

// fakeRedis implements RedisCmdable over a map.
type fakeRedis struct {
	data map[string]string
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore(t *testing.T) {
	fake := newFakeRedis()
	s := NewRedisStore(fake, "yuhu:", logger.Nop())

	exerciseSecureStore(t, s)

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	assert.Equal(t, "v", fake.data["yuhu:k"])
}

func TestRedisStore_BackendError(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("connection refused")
	s := NewRedisStore(fake, "yuhu:", logger.Nop())
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
	assert.Error(t, s.Set(ctx, "k", "v"))
	assert.Error(t, s.Delete(ctx, "k"))
}

func TestEncryptedStore(t *testing.T) {
	inner := NewMemoryStore()
	s := NewEncryptedStore(inner, crypto.NewKeyChainService(), "vault secret")

	exerciseSecureStore(t, s)

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, SessionKey, "Raj Kumar"))

	raw, err := inner.Get(ctx, SessionKey)
	require.NoError(t, err)
	assert.NotContains(t, raw, "Raj Kumar")

	_, err = inner.Get(ctx, SaltKey)
	require.NoError(t, err, "salt is persisted in the inner store")
}

func TestEncryptedStore_ReopenWithSameSecret(t *testing.T) {
	inner := NewMemoryStore()
	keychain := crypto.NewKeyChainService()
	ctx := context.Background()

	require.NoError(t, NewEncryptedStore(inner, keychain, "vault secret").Set(ctx, SessionKey, "hello"))

	got, err := NewEncryptedStore(inner, keychain, "vault secret").Get(ctx, SessionKey)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = NewEncryptedStore(inner, keychain, "other secret").Get(ctx, SessionKey)
	assert.ErrorIs(t, err, ErrCorruptedValue)
}

func TestEncryptedStore_TamperedValue(t *testing.T) {
	inner := NewMemoryStore()
	s := NewEncryptedStore(inner, crypto.NewKeyChainService(), "vault secret")
	ctx := context.Background()

	require.NoError(t, inner.Set(ctx, SessionKey, "not-a-sealed-blob"))

	_, err := s.Get(ctx, SessionKey)
	assert.ErrorIs(t, err, ErrCorruptedValue)
}

func TestNewClientStorages(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		st, err := NewClientStorages(ctx, config.ClientStorage{Vault: config.Vault{Backend: config.VaultBackendMemory}}, logger.Nop())
		require.NoError(t, err)
		defer st.Close()
		exerciseSecureStore(t, st.Vault)
	})

	t.Run("sqlite encrypted", func(t *testing.T) {
		cfg := config.ClientStorage{Vault: config.Vault{
			Backend: config.VaultBackendSQLite,
			DSN:     filepath.Join(t.TempDir(), "vault.db"),
			Key:     "vault secret",
		}}
		st, err := NewClientStorages(ctx, cfg, logger.Nop())
		require.NoError(t, err)
		defer st.Close()
		exerciseSecureStore(t, st.Vault)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := NewClientStorages(ctx, config.ClientStorage{Vault: config.Vault{Backend: "floppy"}}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnknownBackend)
	})
}
