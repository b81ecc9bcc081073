// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/yuhu-campus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionStore owns the client's authentication state and keeps it in step
// with the persisted session slot.
//
// At most one of SignIn, SignOut and LoadSession runs at a time; a call made
// while another is in flight returns [ErrOperationInProgress] and changes
// nothing.
type SessionStore interface {
	// SignIn verifies the credentials. It returns (true, nil) after the user
	// has been persisted and the state is authenticated, (false, nil) for
	// wrong credentials, and (false, err) when the attempt could not be made.
	SignIn(ctx context.Context, username, password string) (bool, error)

	// SignOut removes the persisted session and clears the state. The state
	// is cleared even when the removal fails.
	SignOut(ctx context.Context) error

	// LoadSession restores the state from the persisted slot. A missing or
	// malformed session yields the unauthenticated state without error.
	LoadSession(ctx context.Context) error

	// State returns a snapshot of the current state.
	State() models.AuthState

	// Subscribe registers fn to be called with every new state. The returned
	// function removes the subscription and may be called more than once.
	Subscribe(fn func(models.AuthState)) (unsubscribe func())
}

// AuthService is the server-side account and token service.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	SeedAccounts(ctx context.Context, accounts []models.DemoAccount) error
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
