// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package chat is the Bubble Tea TUI: the auth screen, the chat pane
// with its session sidebar, and the model picker overlay. All domain
// work is delegated to the session manager; this package only renders
// state and routes key presses.
package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/config"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/session"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/components"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/styles"
)

type screen int

const (
	screenAuth screen = iota
	screenChat
	screenPicker
)

// Model is the top-level Bubble Tea model.
type Model struct {
	mgr   *session.Manager
	cfg   *config.Config
	theme styles.Theme

	screen screen
	width  int
	height int
	ready  bool

	auth     components.AuthForm
	sidebar  components.Sidebar
	picker   components.ModelPicker
	renderer *components.MessageRenderer

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	sidebarFocused bool
	sessions       []*model.ChatSession
	current        *model.ChatSession
	sending        bool
	errText        string
	statusMsg      string

	keyMap KeyMap
}

// New builds the TUI model. When a persisted user resumes, the chat
// screen opens directly; otherwise the auth form shows first.
func New(mgr *session.Manager, cfg *config.Config) Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 4096

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	m := Model{
		mgr:      mgr,
		cfg:      cfg,
		theme:    theme,
		screen:   screenAuth,
		auth:     components.NewAuthForm(theme),
		sidebar:  components.NewSidebar(theme),
		renderer: components.NewMessageRenderer(theme, 80, cfg.UI.Markdown),
		viewport: vp,
		input:    ti,
		spin:     sp,
		keyMap:   DefaultKeyMap(),
	}

	if mgr.CurrentUser() != nil {
		m.screen = screenChat
		m.input.Focus()
	}
	return m
}

// Init starts the cursor blink and, when already signed in, loads the
// session list.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.screen == screenChat {
		cmds = append(cmds, m.loadSessionsCmd())
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m Model) authCmd() tea.Cmd {
	signUp := m.auth.Mode == components.ModeSignUp
	name, email, password := m.auth.Values()

	return func() tea.Msg {
		var (
			user *model.User
			err  error
		)
		if signUp {
			user, err = m.mgr.SignUp(name, email, password)
		} else {
			user, err = m.mgr.SignIn(email, password)
		}
		return authResultMsg{User: user, Err: err}
	}
}

func (m Model) sendCmd(content string) tea.Cmd {
	mgr := m.mgr
	timeout := time.Duration(m.cfg.API.TimeoutSeconds) * time.Second
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		sess, err := mgr.SendMessage(ctx, content)
		return replyMsg{Session: sess, Err: err}
	}
}

func (m Model) loadSessionsCmd() tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		list, err := mgr.Sessions()
		return sessionsMsg{Sessions: list, Err: err}
	}
}

func (m Model) selectSessionCmd(id string) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		if err := mgr.SelectSession(id); err != nil {
			return sessionSelectedMsg{Err: err}
		}
		return sessionSelectedMsg{Session: mgr.Current()}
	}
}

func (m Model) newChatCmd() tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		sess, err := mgr.NewChat()
		return sessionSelectedMsg{Session: sess, Err: err}
	}
}

func (m Model) deleteSessionCmd(id string) tea.Cmd {
	mgr := m.mgr
	return func() tea.Msg {
		if err := mgr.DeleteSession(id); err != nil {
			return sessionsMsg{Err: err}
		}
		list, err := mgr.Sessions()
		return sessionsMsg{Sessions: list, Err: err}
	}
}
