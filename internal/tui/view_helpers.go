// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/yuhu-campus/internal/adapter"
	"github.com/MKhiriev/yuhu-campus/internal/service"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// humanizeError turns transport and storage failures into one-line messages.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		return "Auth server is unavailable, try again later"
	case errors.Is(err, service.ErrVerifyCredentials):
		return "Could not reach the auth server"
	case errors.Is(err, service.ErrPersistSession):
		return "Signed in, but the session could not be saved"
	case errors.Is(err, service.ErrDeleteSession):
		return "Signed out, but the saved session could not be removed"
	case errors.Is(err, service.ErrReadSession):
		return "Saved session could not be read"
	default:
		return err.Error()
	}
}
