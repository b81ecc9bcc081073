// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/yuhu-campus/internal/crypto"
	"github.com/MKhiriev/yuhu-campus/internal/mock"
	"github.com/MKhiriev/yuhu-campus/internal/store"
)

func TestEncryptedStore_SealFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	keychain := mock.NewMockKeyChainService(ctrl)

	sealErr := errors.New("rng exhausted")
	keychain.EXPECT().GenerateSalt().Return([]byte("0123456789abcdef"), nil)
	keychain.EXPECT().DeriveKey("secret", []byte("0123456789abcdef")).Return(make([]byte, 32))
	keychain.EXPECT().Seal([]byte("value"), gomock.Any()).Return("", sealErr)

	inner := store.NewMemoryStore()
	vault := store.NewEncryptedStore(inner, keychain, "secret")

	err := vault.Set(context.Background(), "k", "value")
	assert.ErrorIs(t, err, sealErr)

	_, err = inner.Get(context.Background(), "k")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestEncryptedStore_OpenFailureIsCorruption(t *testing.T) {
	ctrl := gomock.NewController(t)
	keychain := mock.NewMockKeyChainService(ctrl)
	ctx := context.Background()

	inner := store.NewMemoryStore()
	require.NoError(t, inner.Set(ctx, "k", "garbage"))

	keychain.EXPECT().GenerateSalt().Return([]byte("0123456789abcdef"), nil)
	keychain.EXPECT().DeriveKey("secret", gomock.Any()).Return(make([]byte, 32))
	keychain.EXPECT().Open("garbage", gomock.Any()).Return(nil, crypto.ErrDecryptionFailed)

	_, err := store.NewEncryptedStore(inner, keychain, "secret").Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrCorruptedValue)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestEncryptedStore_KeyDerivedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	keychain := mock.NewMockKeyChainService(ctrl)
	ctx := context.Background()

	keychain.EXPECT().GenerateSalt().Return([]byte("0123456789abcdef"), nil).Times(1)
	keychain.EXPECT().DeriveKey(gomock.Any(), gomock.Any()).Return(make([]byte, 32)).Times(1)
	keychain.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("sealed", nil).Times(2)

	vault := store.NewEncryptedStore(store.NewMemoryStore(), keychain, "secret")
	require.NoError(t, vault.Set(ctx, "a", "1"))
	require.NoError(t, vault.Set(ctx, "b", "2"))
}

func TestDB_WithRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockErrorClassificator(ctrl)

	transient := errors.New("connection reset")
	classifier.EXPECT().Classify(transient).Return(store.Retryable)

	calls := 0
	err := store.NewRetryingDB(classifier).WithRetry(context.Background(), func() error {
		calls++
		if calls == 1 {
			return transient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDB_WithRetryStopsOnPermanentError(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockErrorClassificator(ctrl)

	permanent := errors.New("syntax error")
	classifier.EXPECT().Classify(permanent).Return(store.NonRetryable)

	calls := 0
	err := store.NewRetryingDB(classifier).WithRetry(context.Background(), func() error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDB_WithRetryHonoursContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	classifier := mock.NewMockErrorClassificator(ctrl)

	transient := errors.New("too many connections")
	classifier.EXPECT().Classify(transient).Return(store.Retryable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.NewRetryingDB(classifier).WithRetry(ctx, func() error { return transient })
	assert.ErrorIs(t, err, context.Canceled)
}
