// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the permission tier attached to a [User]. Front-end layers branch
// presentation on it; the session core carries no enforcement logic.
type Role string

const (
	RoleStudent     Role = "student"
	RoleCoordinator Role = "coordinator"
	RoleCouncilHead Role = "council_head"
	RoleAdmin       Role = "admin"
)

// ErrUnknownRole is returned by [ParseRole] for values outside the closed set.
var ErrUnknownRole = errors.New("unknown role")

// Roles returns every supported role in ascending order of privilege.
func Roles() []Role {
	return []Role{RoleStudent, RoleCoordinator, RoleCouncilHead, RoleAdmin}
}

// Valid reports whether r is one of the four enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCoordinator, RoleCouncilHead, RoleAdmin:
		return true
	}
	return false
}

// Title returns a human-readable label, e.g. "Council Head".
func (r Role) Title() string {
	parts := strings.Split(string(r), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts s (case-insensitive, surrounding spaces ignored) into a
// [Role]. It returns [ErrUnknownRole] for anything else.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}
