// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/components"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/styles"
)

// Update routes messages to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Quit) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenAuth:
			return m.updateAuth(msg)
		case screenPicker:
			return m.updatePicker(msg)
		default:
			return m.updateChat(msg)
		}

	case authResultMsg:
		if msg.Err != nil {
			m.auth.ErrMsg = msg.Err.Error()
			return m, nil
		}
		m.screen = screenChat
		m.current = nil
		m.sessions = nil
		m.errText = ""
		m.input.Focus()
		m.refreshViewport()
		return m, tea.Batch(textinput.Blink, m.loadSessionsCmd())

	case replyMsg:
		m.sending = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			// The user turn was still persisted; show it.
			m.current = m.mgr.Current()
			m.refreshViewport()
			return m, m.loadSessionsCmd()
		}
		m.current = msg.Session
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, m.loadSessionsCmd()

	case sessionsMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.sessions = msg.Sessions
		m.sidebar.SetSessions(msg.Sessions)
		return m, nil

	case sessionSelectedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.current = msg.Session
		m.sidebarFocused = false
		m.input.Focus()
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, tea.Batch(textinput.Blink, m.loadSessionsCmd())

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.theme = styles.NewTheme(msg.Config.UI.Theme)
		m.renderer = components.NewMessageRenderer(m.theme, m.contentWidth(), msg.Config.UI.Markdown)
		if err := m.mgr.SelectModel(msg.Config.API.DefaultModel); err == nil {
			m.statusMsg = "config reloaded"
		}
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if m.sending {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Everything else goes to the viewport (mouse wheel etc.) and,
	// while typing, to the input.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	if m.screen == screenChat && !m.sidebarFocused {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	const (
		headerHeight = 2
		inputHeight  = 3
		statusHeight = 1
	)

	m.sidebar.SetSize(m.sidebar.Width(), m.height-headerHeight-statusHeight)

	vpHeight := m.height - headerHeight - inputHeight - statusHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = vpHeight

	inputWidth := m.contentWidth() - 6
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	m.renderer.SetWidth(m.contentWidth())
	m.refreshViewport()
	return m, nil
}

// contentWidth is the chat pane width to the right of the sidebar.
func (m Model) contentWidth() int {
	w := m.width - m.sidebar.Width() - 1
	if w < 20 {
		w = 20
	}
	return w
}

// =============================================================================
// AUTH SCREEN
// =============================================================================

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.auth.ToggleMode()
		return m, nil
	case "tab", "shift+tab", "down", "up":
		m.auth.NextField()
		return m, nil
	case "enter":
		name, email, _ := m.auth.Values()
		if email == "" {
			m.auth.ErrMsg = "Email is required"
			return m, nil
		}
		if m.auth.Mode == components.ModeSignUp && name == "" {
			m.auth.ErrMsg = "Name is required"
			return m, nil
		}
		m.auth.ErrMsg = ""
		return m, m.authCmd()
	}

	var cmd tea.Cmd
	m.auth, cmd = m.auth.Update(msg)
	return m, cmd
}

// =============================================================================
// MODEL PICKER
// =============================================================================

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.picker.MoveUp()
	case key.Matches(msg, m.keyMap.Down):
		m.picker.MoveDown()
	case key.Matches(msg, m.keyMap.Select):
		if err := m.mgr.SelectModel(m.picker.Selected().ID); err != nil {
			m.errText = err.Error()
		} else {
			m.statusMsg = "model: " + m.picker.Selected().Name
		}
		m.screen = screenChat
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keyMap.Dismiss):
		m.screen = screenChat
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// =============================================================================
// CHAT SCREEN
// =============================================================================

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An error banner is dismissed before anything else.
	if m.errText != "" && key.Matches(msg, m.keyMap.Dismiss) {
		m.errText = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.NewChat):
		return m, m.newChatCmd()

	case key.Matches(msg, m.keyMap.Models):
		m.picker = components.NewModelPicker(m.theme, m.mgr.ModelID())
		m.screen = screenPicker
		return m, nil

	case key.Matches(msg, m.keyMap.SignOut):
		if err := m.mgr.SignOut(); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.screen = screenAuth
		m.auth = components.NewAuthForm(m.theme)
		m.current = nil
		m.sessions = nil
		m.sidebar.SetSessions(nil)
		return m, textinput.Blink

	case key.Matches(msg, m.keyMap.ToggleFocus):
		m.sidebarFocused = !m.sidebarFocused
		if m.sidebarFocused {
			m.input.Blur()
			return m, nil
		}
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	if m.sidebarFocused {
		return m.updateSidebar(msg)
	}

	if key.Matches(msg, m.keyMap.Select) {
		content := strings.TrimSpace(m.input.Value())
		if content == "" || m.sending {
			return m, nil
		}
		m.input.Reset()
		m.errText = ""
		m.sending = true
		// Show the user turn immediately; the manager persists it
		// before the network call either way.
		return m, tea.Batch(m.sendCmd(content), m.spin.Tick)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.sidebar.MoveUp()
	case key.Matches(msg, m.keyMap.Down):
		m.sidebar.MoveDown()
	case key.Matches(msg, m.keyMap.Select):
		if sel := m.sidebar.Selected(); sel != nil {
			return m, m.selectSessionCmd(sel.ID)
		}
	case key.Matches(msg, m.keyMap.Delete):
		if sel := m.sidebar.Selected(); sel != nil {
			if m.current != nil && m.current.ID == sel.ID {
				m.current = nil
				m.refreshViewport()
			}
			return m, m.deleteSessionCmd(sel.ID)
		}
	}
	return m, nil
}

// refreshViewport re-renders the current session transcript.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderMessages())
}
