// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/yuhu-campus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecureStore is a string key-value slot that survives process restarts.
//
// Get returns [ErrKeyNotFound] for absent keys. Delete of an absent key is
// not an error.
type SecureStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// UserRepository persists server-side accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, account models.Account) (models.Account, error)
	FindUserByUsername(ctx context.Context, username string) (models.Account, error)
	FindUserByID(ctx context.Context, userID string) (models.Account, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
