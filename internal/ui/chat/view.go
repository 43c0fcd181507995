// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/util"
)

// View renders the active screen.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	switch m.screen {
	case screenAuth:
		return m.auth.View(m.width, m.height)
	case screenPicker:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.picker.View(m.mgr.ModelID()))
	default:
		return m.renderChat()
	}
}

func (m Model) renderChat() string {
	header := m.renderHeader()
	status := m.renderStatusBar()
	input := m.renderInput()

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(m.currentID()),
		lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), input),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) currentID() string {
	if m.current == nil {
		return ""
	}
	return m.current.ID
}

func (m Model) renderHeader() string {
	title := "ChatBot"
	count := 0
	if m.current != nil {
		title = m.current.Title
		count = len(m.current.Messages)
	}

	left := m.theme.Title.Render(util.TruncateWidth(title, m.width/2))
	if count > 0 {
		left += m.theme.Muted.Render(fmt.Sprintf("  %d messages", count))
	}

	modelName := m.mgr.ModelID()
	if info, ok := model.LookupModel(modelName); ok {
		modelName = info.Name
	}
	right := m.theme.Subtitle.Render(modelName)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n"
}

// renderMessages builds the viewport transcript for the current
// session.
func (m Model) renderMessages() string {
	if m.current == nil || len(m.current.Messages) == 0 {
		return m.renderEmptyState()
	}

	parts := make([]string, 0, len(m.current.Messages))
	for _, msg := range m.current.Messages {
		parts = append(parts, m.renderer.Render(msg))
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderEmptyState() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Start a Conversation"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render("Type a message below and press enter."))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("ctrl+n starts a fresh chat, ctrl+p picks a model."))
	return lipgloss.Place(m.contentWidth(), m.viewport.Height,
		lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) renderInput() string {
	inner := m.input.View()
	if m.sending {
		inner = m.spin.View() + " " + m.theme.Muted.Render("waiting for reply...")
	}
	return m.theme.InputBorder.Width(m.contentWidth() - 2).Render(inner)
}

func (m Model) renderStatusBar() string {
	if m.errText != "" {
		banner := m.theme.Error.Render("✗ " + util.TruncateWidth(m.errText, m.width-10))
		return banner + m.theme.Muted.Render("  esc to dismiss")
	}

	var left string
	if u := m.mgr.CurrentUser(); u != nil {
		left = m.theme.StatusBar.Render(u.Name)
	}
	if m.statusMsg != "" {
		left += m.theme.StatusBar.Render(" · " + m.statusMsg)
	}

	help := m.theme.Help.Render("enter: send · tab: chats · ctrl+n: new · ctrl+p: model · ctrl+o: sign out · ctrl+c: quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + help
}
