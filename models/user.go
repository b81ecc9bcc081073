// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrInvalidUser is returned by [User.Validate] when a user record breaks one
// of its invariants. Persisted sessions failing validation are treated as
// malformed.
var ErrInvalidUser = errors.New("invalid user")

// User represents an authenticated principal of the campus app.
//
// A User is produced either by a successful credential check or by decoding a
// persisted session record. It is treated as immutable: state changes replace
// the whole value instead of mutating fields.
type User struct {
	// ID is the opaque unique identifier of the user.
	ID string `json:"id"`

	// Username is unique and matched case-insensitively on sign-in.
	Username string `json:"username"`

	Email string `json:"email"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	Role Role `json:"role"`

	// Course is optional; empty means absent.
	Course string `json:"course,omitempty"`

	// Year is the optional study year; zero means absent.
	Year int `json:"year,omitempty"`
}

// Validate checks the invariants of a user record: non-empty ID and Username,
// a role from the closed set and a non-negative year.
func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidUser)
	}
	if u.Username == "" {
		return fmt.Errorf("%w: empty username", ErrInvalidUser)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: role %q", ErrInvalidUser, u.Role)
	}
	if u.Year < 0 {
		return fmt.Errorf("%w: negative year %d", ErrInvalidUser, u.Year)
	}
	return nil
}

// HasRole reports whether the user holds any of the given roles.
func (u User) HasRole(roles ...Role) bool {
	return slices.Contains(roles, u.Role)
}

// HasCourse reports whether the optional course is set.
func (u User) HasCourse() bool {
	return u.Course != ""
}

// HasYear reports whether the optional study year is set.
func (u User) HasYear() bool {
	return u.Year > 0
}

// Account is the server-side record of a registered user. It couples the
// public [User] profile with the credential material that must never leave
// the server.
type Account struct {
	User

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Account.
func (a Account) TableName() string {
	return "users"
}
