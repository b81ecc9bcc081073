// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrInvalidCredentials means the username/password pair matched no account.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrUnknownMode is returned by NewVerifier for an unsupported mode.
	ErrUnknownMode = errors.New("unknown adapter mode")
	// ErrNoToken is returned by Me before a successful Verify.
	ErrNoToken = errors.New("no bearer token")
)
