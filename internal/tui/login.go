// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/yuhu-campus/internal/service"
)

const (
	msgEmptyCredentials   = "Please enter both username and password"
	msgInvalidCredentials = "Invalid username or password"
)

// LoginModel renders the username and password inputs. Controls are
// disabled while the session store reports loading.
type LoginModel struct {
	ctx   context.Context
	store service.SessionStore

	inputs   []textinput.Model
	focus    int
	loading  bool
	errMsg   string
	demoHint bool
}

func NewLoginModel(ctx context.Context, store service.SessionStore, demoHint bool) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "Username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "Password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '•'

	return &LoginModel{
		ctx:      ctx,
		store:    store,
		inputs:   []textinput.Model{usernameInput, passwordInput},
		demoHint: demoHint,
	}
}

// open prepares the page when the router switches to it. After a sign-out
// the previous input is cleared.
func (m *LoginModel) open(clear bool) tea.Cmd {
	if clear {
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		m.errMsg = ""
	}
	m.setFocus(0)
	return textinput.Blink
}

func (m *LoginModel) setLoading(loading bool) {
	m.loading = loading
}

func (m *LoginModel) Update(msg tea.Msg) tea.Cmd {
	if result, ok := msg.(signInResultMsg); ok {
		m.loading = m.store.State().Loading
		switch {
		case errors.Is(result.err, service.ErrOperationInProgress):
		case result.err != nil:
			m.errMsg = humanizeError(result.err)
		case !result.ok:
			m.errMsg = msgInvalidCredentials
		default:
			m.errMsg = ""
			m.inputs[1].Reset()
		}
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.loading {
			return nil
		}

		switch {
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus == 0 && strings.TrimSpace(m.inputs[0].Value()) != "" && m.inputs[1].Value() == "" {
				m.setFocus(1)
				return nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *LoginModel) submit() tea.Cmd {
	username := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if username == "" || password == "" {
		m.errMsg = msgEmptyCredentials
		return nil
	}

	m.errMsg = ""
	m.loading = true
	return signInCmd(m.ctx, m.store, username, password)
}

func signInCmd(ctx context.Context, store service.SessionStore, username, password string) tea.Cmd {
	return func() tea.Msg {
		ok, err := store.SignIn(ctx, username, password)
		return signInResultMsg{ok: ok, err: err}
	}
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Official Campus Voice"))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Welcome Back"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Sign in to continue"))
	b.WriteString("\n\n")
	b.WriteString("Username │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("[ Signing in... ]")
	} else {
		b.WriteString("[ Sign In ]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	if m.demoHint {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Demo Accounts:\nstudent / student123\nadmin / admin123"))
	}

	return renderPage("YUHU", b.String(), "tab: next field │ enter: sign in")
}
