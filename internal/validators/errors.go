// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrInvalidUsername = errors.New("username must be a single word of at most 64 characters")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidYear     = errors.New("invalid study year")
)
