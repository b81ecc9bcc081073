// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/yuhu-campus/internal/adapter"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/service"
	"github.com/MKhiriev/yuhu-campus/models"
)

type page int

const (
	pageSplash page = iota
	pageLogin
	pageHome
)

// RootModel is the TUI router:
//  1. keeps the active page in step with the session phase
//  2. handles global keys (ctrl+c, build info overlay)
//  3. delegates all other messages to the active page
type RootModel struct {
	ctx   context.Context
	store service.SessionStore

	state models.AuthState
	page  page

	splash *SplashModel
	login  *LoginModel
	home   *HomeModel

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	logger *logger.Logger
}

func NewRootModel(ctx context.Context, store service.SessionStore, remote adapter.RemoteVerifier, buildInfo models.AppBuildInfo, log *logger.Logger) RootModel {
	return RootModel{
		ctx:       ctx,
		store:     store,
		state:     store.State(),
		page:      pageSplash,
		splash:    NewSplashModel(),
		login:     NewLoginModel(ctx, store, remote == nil),
		home:      NewHomeModel(ctx, store, remote),
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Init starts the splash animation and resolves the persisted session.
func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.splash.Init(), loadSessionCmd(r.ctx, r.store))
}

func loadSessionCmd(ctx context.Context, store service.SessionStore) tea.Cmd {
	return func() tea.Msg {
		return sessionLoadedMsg{err: store.LoadSession(ctx)}
	}
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if r.page == pageHome {
			switch {
			case key.Matches(msg, keys.quit):
				return r, tea.Quit
			case key.Matches(msg, keys.buildInfo):
				r.showBuildInfo = true
				return r, nil
			}
		}

	case stateChangedMsg:
		r.state = msg.state
		r.login.setLoading(msg.state.Loading)
		return r, r.route()

	case sessionLoadedMsg:
		if msg.err != nil {
			r.logger.Err(msg.err).Msg("load session failed")
			r.login.errMsg = humanizeError(msg.err)
		}
		// The state published by LoadSession may race with this message, so
		// re-read it to leave the splash page deterministically.
		r.state = r.store.State()
		r.login.setLoading(r.state.Loading)
		return r, r.route()
	}

	var cmd tea.Cmd
	switch r.page {
	case pageSplash:
		cmd = r.splash.Update(msg)
	case pageLogin:
		cmd = r.login.Update(msg)
	case pageHome:
		cmd = r.home.Update(msg)
	}
	return r, cmd
}

// route moves to the page matching the session phase. While an operation
// is in flight the current page stays put.
func (r *RootModel) route() tea.Cmd {
	switch r.state.Phase() {
	case models.PhaseAuthenticated:
		r.home.setUser(r.state.User)
		if r.page != pageHome {
			r.page = pageHome
			r.logger.Debug().Msg("routing to home")
		}
	case models.PhaseUnauthenticated:
		if r.page != pageLogin {
			from := r.page
			r.page = pageLogin
			r.showBuildInfo = false
			r.logger.Debug().Msg("routing to login")
			return r.login.open(from == pageHome)
		}
	}
	return nil
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}

	switch r.page {
	case pageLogin:
		return r.login.View()
	case pageHome:
		return r.home.View()
	default:
		return r.splash.View()
	}
}
