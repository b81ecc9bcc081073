// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [SecureStore.Get] for an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptedValue is returned when a stored value cannot be decrypted.
	ErrCorruptedValue = errors.New("stored value is corrupted")

	// ErrUsernameAlreadyExists is returned when an account with the same
	// username (case-insensitive) already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when no account matches the username.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnknownBackend is returned by [NewClientStorages] for an unknown
	// vault backend name.
	ErrUnknownBackend = errors.New("unknown vault backend")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
