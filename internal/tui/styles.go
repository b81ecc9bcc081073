// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/yuhu-campus/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	subtitleStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

var roleColors = map[models.Role]lipgloss.Color{
	models.RoleStudent:     lipgloss.Color("#2563EB"),
	models.RoleCoordinator: lipgloss.Color("#D97706"),
	models.RoleCouncilHead: lipgloss.Color("#7C3AED"),
	models.RoleAdmin:       lipgloss.Color("#DC2626"),
}

func roleBadge(role models.Role) string {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(roleColors[role]).
		Render(role.Title())
}
