// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/yuhu-campus/internal/adapter"
	"github.com/MKhiriev/yuhu-campus/internal/service"
	"github.com/MKhiriev/yuhu-campus/models"
)

const statusTTL = 3 * time.Second

// writeClipboard is swapped in tests; headless CI has no clipboard.
var writeClipboard = clipboard.WriteAll

// HomeModel shows the signed-in user's profile.
type HomeModel struct {
	ctx    context.Context
	store  service.SessionStore
	remote adapter.RemoteVerifier

	user *models.User

	status     string
	statusErr  bool
	signingOut bool
}

func NewHomeModel(ctx context.Context, store service.SessionStore, remote adapter.RemoteVerifier) *HomeModel {
	return &HomeModel{
		ctx:    ctx,
		store:  store,
		remote: remote,
	}
}

func (m *HomeModel) setUser(user *models.User) {
	if user == nil {
		return
	}
	if m.user == nil || m.user.ID != user.ID {
		m.status = ""
		m.statusErr = false
	}
	m.user = user
	m.signingOut = false
}

func (m *HomeModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.signingOut || m.user == nil {
			return nil
		}
		switch {
		case key.Matches(msg, keys.logout):
			m.signingOut = true
			return signOutCmd(m.ctx, m.store)
		case key.Matches(msg, keys.copy):
			return copyCmd(m.user.Email)
		case key.Matches(msg, keys.refresh):
			if m.remote == nil {
				return nil
			}
			m.setStatus("Checking profile with the server...", false)
			return refreshProfileCmd(m.ctx, m.remote)
		}

	case signOutResultMsg:
		m.signingOut = false
		if msg.err != nil && !errors.Is(msg.err, service.ErrOperationInProgress) {
			m.setStatus(humanizeError(msg.err), true)
			return clearStatusAfter(statusTTL)
		}

	case copiedMsg:
		if msg.err != nil {
			m.setStatus("Clipboard is not available", true)
		} else {
			m.setStatus("Email copied to clipboard", false)
		}
		return clearStatusAfter(statusTTL)

	case profileRefreshedMsg:
		switch {
		case errors.Is(msg.err, adapter.ErrNoToken):
			m.setStatus("Sign in again to check the profile with the server", true)
		case msg.err != nil:
			m.setStatus(humanizeError(msg.err), true)
		case m.user != nil && msg.user.ID != m.user.ID:
			m.setStatus("Server reports a different account, sign in again", true)
		default:
			m.setStatus("Profile confirmed by the server", false)
		}
		return clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
	}

	return nil
}

func (m *HomeModel) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func signOutCmd(ctx context.Context, store service.SessionStore) tea.Cmd {
	return func() tea.Msg {
		return signOutResultMsg{err: store.SignOut(ctx)}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func refreshProfileCmd(ctx context.Context, remote adapter.RemoteVerifier) tea.Cmd {
	return func() tea.Msg {
		user, err := remote.Me(ctx)
		return profileRefreshedMsg{user: user, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *HomeModel) View() string {
	if m.user == nil {
		return renderPage("YUHU", "", "")
	}
	u := m.user

	var b strings.Builder
	title := "YUHU"
	if u.HasRole(models.RoleAdmin) {
		title = "Admin Dashboard"
		b.WriteString(fmt.Sprintf("Welcome back, %s\n\n", u.Name))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Hi %s!", u.Name)))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Welcome to Yuhu"))
		b.WriteString("\n\n")
	}

	b.WriteString(u.Name)
	b.WriteString("\n")
	if u.Email != "" {
		b.WriteString(u.Email)
		b.WriteString("\n")
	}
	b.WriteString(roleBadge(u.Role))
	b.WriteString("\n")
	if u.HasCourse() {
		b.WriteString(u.Course)
		b.WriteString("\n")
	}
	if u.HasYear() {
		b.WriteString(fmt.Sprintf("Year %d\n", u.Year))
	}
	if hasStaffAccess(u.Role) {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("Staff access: campus content management is available"))
		b.WriteString("\n")
	}

	b.WriteString("\nMenu\n")
	for _, item := range menuItems(u.Role) {
		b.WriteString("  • ")
		b.WriteString(item)
		b.WriteString("\n")
	}

	if m.signingOut {
		b.WriteString("\nSigning out...")
	} else if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}

	hotKeys := "l: sign out │ c: copy email │ v: about │ q: quit"
	if m.remote != nil {
		hotKeys = "l: sign out │ c: copy email │ r: check profile │ v: about │ q: quit"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
