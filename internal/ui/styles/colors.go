// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package styles centralizes colors and lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive pairs pick the variant for the terminal
// background, so the same styles work on light and dark terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#00A8A8", Dark: "#00C2C2"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}

	ColorUserBubble      = lipgloss.AdaptiveColor{Light: "#D7E4FF", Dark: "#2D4F8F"}
	ColorAssistantBubble = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#303030"}
	ColorSidebarActive   = lipgloss.AdaptiveColor{Light: "#E4E0FF", Dark: "#3A3668"}
)

// modelAccents maps catalog color tags to terminal colors for model
// badges.
var modelAccents = map[string]lipgloss.AdaptiveColor{
	"blue":   {Light: "#0057D8", Dark: "#5FAFFF"},
	"green":  {Light: "#00875F", Dark: "#5FD7AF"},
	"purple": {Light: "#8700D7", Dark: "#AF87FF"},
	"red":    {Light: "#D70000", Dark: "#FF8787"},
}

// ModelAccent returns the badge color for a catalog color tag,
// falling back to the muted color for unknown tags.
func ModelAccent(tag string) lipgloss.AdaptiveColor {
	if c, ok := modelAccents[tag]; ok {
		return c
	}
	return ColorMuted
}
