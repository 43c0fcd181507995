// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package components

import (
	"fmt"
	"strings"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/styles"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/util"
)

// Sidebar lists the user's chat sessions, newest first, with a cursor
// for keyboard selection.
type Sidebar struct {
	theme    styles.Theme
	sessions []*model.ChatSession
	cursor   int
	width    int
	height   int
}

// NewSidebar builds an empty sidebar.
func NewSidebar(theme styles.Theme) Sidebar {
	return Sidebar{theme: theme, width: 28}
}

// SetSize sets the render budget.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar's column width.
func (s Sidebar) Width() int { return s.width }

// SetSessions replaces the list, keeping the cursor on the same
// session when it still exists.
func (s *Sidebar) SetSessions(sessions []*model.ChatSession) {
	var keep string
	if sel := s.Selected(); sel != nil {
		keep = sel.ID
	}

	s.sessions = sessions
	s.cursor = 0
	for i, sess := range sessions {
		if sess.ID == keep {
			s.cursor = i
			break
		}
	}
}

// MoveUp moves the cursor toward newer sessions.
func (s *Sidebar) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor toward older sessions.
func (s *Sidebar) MoveDown() {
	if s.cursor < len(s.sessions)-1 {
		s.cursor++
	}
}

// Selected returns the session under the cursor, or nil.
func (s Sidebar) Selected() *model.ChatSession {
	if s.cursor < 0 || s.cursor >= len(s.sessions) {
		return nil
	}
	return s.sessions[s.cursor]
}

// View renders the sidebar. currentID marks the session open in the
// chat pane.
func (s Sidebar) View(currentID string) string {
	var b strings.Builder

	b.WriteString(s.theme.Title.Render("Chats"))
	b.WriteString("\n\n")

	if len(s.sessions) == 0 {
		b.WriteString(s.theme.Muted.Render("No chats yet"))
	}

	itemWidth := s.width - 3
	for i, sess := range s.sessions {
		title := util.TruncateWidth(sess.Title, itemWidth)
		line := fmt.Sprintf("%s (%d)", title, len(sess.Messages))

		style := s.theme.SidebarItem
		if sess.ID == currentID {
			style = s.theme.SidebarActive
		}
		if i == s.cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(util.TruncateWidth(line, s.width-1)))
		b.WriteString("\n")
	}

	body := b.String()
	return s.theme.SidebarBorder.Width(s.width).Height(s.height).Render(body)
}
