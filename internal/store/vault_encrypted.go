// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/yuhu-campus/internal/crypto"
)

// SaltKey is the slot holding the per-install key derivation salt.
const SaltKey = "yuhu_vault_salt"

// encryptedStore seals every value with a key derived from the vault secret.
// The salt lives in clear in the inner store under [SaltKey].
type encryptedStore struct {
	inner    SecureStore
	keychain crypto.KeyChainService
	secret   string

	mu  sync.Mutex
	key []byte
}

// NewEncryptedStore wraps inner so values are stored AES-256-GCM sealed.
// Values that cannot be opened are reported as [ErrCorruptedValue].
func NewEncryptedStore(inner SecureStore, keychain crypto.KeyChainService, secret string) SecureStore {
	return &encryptedStore{
		inner:    inner,
		keychain: keychain,
		secret:   secret,
	}
}

// unlock derives the vault key on first use, creating the salt if needed.
func (s *encryptedStore) unlock(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		return s.key, nil
	}

	salt, err := s.loadSalt(ctx)
	if err != nil {
		return nil, err
	}

	s.key = s.keychain.DeriveKey(s.secret, salt)
	return s.key, nil
}

func (s *encryptedStore) loadSalt(ctx context.Context) ([]byte, error) {
	encoded, err := s.inner.Get(ctx, SaltKey)
	switch {
	case err == nil:
		salt, decodeErr := base64.StdEncoding.DecodeString(encoded)
		if decodeErr == nil && len(salt) > 0 {
			return salt, nil
		}
		// unreadable salt: nothing sealed with it can be opened anyway
	case !errors.Is(err, ErrKeyNotFound):
		return nil, fmt.Errorf("read vault salt: %w", err)
	}

	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return nil, err
	}

	if err = s.inner.Set(ctx, SaltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, fmt.Errorf("write vault salt: %w", err)
	}

	return salt, nil
}

func (s *encryptedStore) Get(ctx context.Context, key string) (string, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	vaultKey, err := s.unlock(ctx)
	if err != nil {
		return "", err
	}

	plain, err := s.keychain.Open(sealed, vaultKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptedValue, err)
	}

	return string(plain), nil
}

func (s *encryptedStore) Set(ctx context.Context, key, value string) error {
	vaultKey, err := s.unlock(ctx)
	if err != nil {
		return err
	}

	sealed, err := s.keychain.Seal([]byte(value), vaultKey)
	if err != nil {
		return fmt.Errorf("seal value: %w", err)
	}

	return s.inner.Set(ctx, key, sealed)
}

func (s *encryptedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
