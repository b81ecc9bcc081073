// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the credential verifiers the client signs in
// against.
//
// [CredentialVerifier] decouples the session store from where accounts live.
// Two implementations ship: a fixed demo table ([NewDemoVerifier]) and the
// auth server over HTTP ([NewHTTPVerifier]).
//
// Transport errors are mapped from HTTP status codes by mapHTTPError so
// callers can use [errors.Is] (e.g. [ErrInvalidCredentials] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/yuhu-campus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CredentialVerifier checks a username/password pair. It returns the
// matching user, [ErrInvalidCredentials] when the pair is unknown, or another
// error when the check could not be performed.
type CredentialVerifier interface {
	Verify(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// RemoteVerifier is a [CredentialVerifier] backed by the auth server.
type RemoteVerifier interface {
	CredentialVerifier

	// Token returns the bearer token of the last successful Verify, or "".
	Token() string

	// Me asks the server who the current token belongs to.
	Me(ctx context.Context) (models.User, error)
}
