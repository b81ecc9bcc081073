// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/yuhu-campus/models"

// stateChangedMsg carries a snapshot published by the session store.
type stateChangedMsg struct {
	state models.AuthState
}

type sessionLoadedMsg struct {
	err error
}

type signInResultMsg struct {
	ok  bool
	err error
}

type signOutResultMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type profileRefreshedMsg struct {
	user models.User
	err  error
}

type clearStatusMsg struct{}
