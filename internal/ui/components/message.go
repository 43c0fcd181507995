// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/styles"
)

// MessageRenderer turns chat messages into styled terminal bubbles.
// User messages render as plain right-aligned bubbles; assistant
// messages render through glamour when markdown is enabled, else
// through the chroma fallback.
type MessageRenderer struct {
	theme    styles.Theme
	width    int
	markdown bool
	glam     *glamour.TermRenderer
}

// NewMessageRenderer builds a renderer for the given content width.
func NewMessageRenderer(theme styles.Theme, width int, markdown bool) *MessageRenderer {
	r := &MessageRenderer{theme: theme, markdown: markdown}
	r.SetWidth(width)
	return r
}

// SetWidth resizes the renderer. The glamour renderer wraps at the
// bubble width, so it is rebuilt on resize.
func (r *MessageRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	r.width = width

	if r.markdown {
		wrap := width - 8
		if wrap < 20 {
			wrap = 20
		}
		glam, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			r.glam = glam
		}
	}
}

// Render renders one message as a bubble with a role line.
func (r *MessageRenderer) Render(msg model.Message) string {
	switch msg.Role {
	case model.RoleUser:
		return r.renderUser(msg)
	case model.RoleAssistant:
		return r.renderAssistant(msg)
	default:
		return r.theme.Muted.Render(msg.Content)
	}
}

func (r *MessageRenderer) renderUser(msg model.Message) string {
	bubble := r.theme.UserBubble.MaxWidth(r.width - 4).Render(msg.Content)
	label := r.theme.Muted.Render("You · " + msg.Timestamp.Format("15:04"))
	block := lipgloss.JoinVertical(lipgloss.Right, label, bubble)
	return lipgloss.PlaceHorizontal(r.width, lipgloss.Right, block)
}

func (r *MessageRenderer) renderAssistant(msg model.Message) string {
	content := msg.Content
	if r.markdown && r.glam != nil {
		if rendered, err := r.glam.Render(content); err == nil {
			content = strings.TrimRight(rendered, "\n")
		}
	} else {
		content = RenderPlain(content)
	}

	label := r.labelFor(msg)
	bubble := r.theme.AssistantBubble.MaxWidth(r.width - 4).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, label, bubble)
}

// labelFor builds the "model badge · time" line above an assistant
// bubble, colored with the catalog accent for that model.
func (r *MessageRenderer) labelFor(msg model.Message) string {
	name := "Assistant"
	accent := styles.ColorMuted
	if info, ok := model.LookupModel(msg.Model); ok {
		name = info.Name
		accent = styles.ModelAccent(info.Color)
	}
	badge := r.theme.ModelBadge.Foreground(accent).Render(name)
	return badge + r.theme.Muted.Render(" · "+msg.Timestamp.Format("15:04"))
}
