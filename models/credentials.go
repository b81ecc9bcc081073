// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Credentials is a username/password pair submitted for a credential lookup.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NormalizedUsername returns the lookup form of the username: trimmed and
// lower-cased. Passwords are never normalised.
func (c Credentials) NormalizedUsername() string {
	return strings.ToLower(strings.TrimSpace(c.Username))
}

// Empty reports whether either part of the pair is missing.
func (c Credentials) Empty() bool {
	return strings.TrimSpace(c.Username) == "" || c.Password == ""
}

// RegisterRequest is the payload accepted by the server registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Course   string `json:"course,omitempty"`
	Year     int    `json:"year,omitempty"`
}
