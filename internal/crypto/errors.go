// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned by Open for malformed, truncated or
	// unauthenticated blobs.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrInvalidKey is returned when the key is not a valid AES key length.
	ErrInvalidKey = errors.New("invalid encryption key")
)
