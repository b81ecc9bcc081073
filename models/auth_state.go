// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Phase is the coarse state of the session machine derived from [AuthState].
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseAuthenticated
	PhaseUnauthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// AuthState is the process-wide view of who is signed in.
//
// Authenticated is tracked explicitly next to User so that consumers can tell
// the initial loading state apart from a resolved logged-out state.
type AuthState struct {
	User          *User
	Authenticated bool
	Loading       bool
}

// InitialAuthState returns the state every session store starts in:
// no user, not authenticated, loading.
func InitialAuthState() AuthState {
	return AuthState{Loading: true}
}

// Phase maps the state onto the three-state session machine. A pending
// sign-in on top of an authenticated user still reports authenticated.
func (s AuthState) Phase() Phase {
	switch {
	case s.Authenticated && s.User != nil:
		return PhaseAuthenticated
	case s.Loading:
		return PhaseLoading
	default:
		return PhaseUnauthenticated
	}
}
