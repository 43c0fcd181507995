// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles the styles the TUI components render with.
type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Spinner   lipgloss.Style
	StatusBar lipgloss.Style

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ModelBadge      lipgloss.Style

	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	SidebarBorder lipgloss.Style

	InputBorder lipgloss.Style
	Help        lipgloss.Style
}

// NewTheme builds the theme. mode is "auto", "dark", or "light";
// "auto" asks the terminal.
func NewTheme(mode string) Theme {
	switch mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Subtitle:  lipgloss.NewStyle().Foreground(ColorAccent),
		Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
		Error:     lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
		Spinner:   lipgloss.NewStyle().Foreground(ColorAccent),
		StatusBar: lipgloss.NewStyle().Foreground(ColorMuted),

		UserBubble: lipgloss.NewStyle().
			Background(ColorUserBubble).
			Padding(0, 1).
			MarginLeft(4),
		AssistantBubble: lipgloss.NewStyle().
			Background(ColorAssistantBubble).
			Padding(0, 1).
			MarginRight(4),
		ModelBadge: lipgloss.NewStyle().Bold(true),

		SidebarItem:   lipgloss.NewStyle().Padding(0, 1),
		SidebarActive: lipgloss.NewStyle().Padding(0, 1).Background(ColorSidebarActive).Bold(true),
		SidebarBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ColorMuted),

		InputBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
