// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token carries no "sub" claim.
var ErrEmptySubject = errors.New("empty token subject")

// Token wraps a JWT issued by the auth server.
//
// It embeds [jwt.Token] for low-level operations and [jwt.RegisteredClaims]
// for standard claim access. SignedString holds the compact form that is
// sent to clients in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Role is a private claim copied from the account at issue time.
	Role Role `json:"role,omitempty"`

	SignedString string `json:"-"`

	// UserID caches the parsed "sub" claim.
	UserID string `json:"-"`
}

// GetUserID returns the user identifier stored in the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if sub == "" {
		return "", ErrEmptySubject
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
