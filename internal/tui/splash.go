// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel is shown until the persisted session has been resolved.
type SplashModel struct {
	spinner spinner.Model
}

func NewSplashModel() *SplashModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &SplashModel{spinner: s}
}

func (m *SplashModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *SplashModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *SplashModel) View() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Official Campus Voice"))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" Loading session...")

	return renderPage("YUHU", b.String(), "")
}
