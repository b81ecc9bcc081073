// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the campus client.
//
// A root router switches between the splash, login and home pages. Session
// state reaches the UI only through SessionStore.Subscribe; page commands
// call the store and never mutate state themselves.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/yuhu-campus/internal/adapter"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/service"
	"github.com/MKhiriev/yuhu-campus/models"
)

type TUI struct {
	store     service.SessionStore
	remote    adapter.RemoteVerifier
	buildInfo models.AppBuildInfo

	programOptions []tea.ProgramOption

	logger *logger.Logger
}

// New builds the UI. remote may be nil; it is set when credentials are
// checked by the auth server and enables the profile refresh key.
func New(store service.SessionStore, remote adapter.RemoteVerifier, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		store:          store,
		remote:         remote,
		buildInfo:      buildInfo,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
		logger:         log.WithComponent("tui"),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.store, t.remote, t.buildInfo, t.logger)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	program := tea.NewProgram(root, opts...)

	unsubscribe := t.store.Subscribe(func(state models.AuthState) {
		program.Send(stateChangedMsg{state: state})
	})
	defer unsubscribe()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
