// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	forceQuit key.Binding
	quit      key.Binding
	logout    key.Binding
	copy      key.Binding
	buildInfo key.Binding
	refresh   key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("l")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	refresh:   key.NewBinding(key.WithKeys("r")),
}
