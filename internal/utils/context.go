// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client and the auth
// server: context keys, JSON responses, the resty client wrapper, JWT
// handling and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/yuhu-campus/models"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user id set by the auth middleware.
	UserIDCtxKey = contextKey("userID")
	// RoleCtxKey holds the role claim of the authenticated user.
	RoleCtxKey = contextKey("role")
)

// WithUser stores the authenticated user id and role in ctx.
func WithUser(ctx context.Context, userID string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetUserIDFromContext returns the user id stored by [WithUser].
// ok is false when the value is missing, empty or of another type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext returns the role stored by [WithUser].
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
