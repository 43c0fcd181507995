// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package chat

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the chat screen key bindings.
type KeyMap struct {
	Quit        key.Binding
	NewChat     key.Binding
	Models      key.Binding
	ToggleFocus key.Binding
	SignOut     key.Binding
	Delete      key.Binding
	Select      key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Dismiss     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NewChat:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new chat")),
		Models:      key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "models")),
		ToggleFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
		SignOut:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "sign out")),
		Delete:      key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete chat")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Dismiss:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}
