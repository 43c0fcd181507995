// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package session orchestrates the chat application state: who is
// signed in, which sessions they own, which one is selected, which
// model replies, and whether a completion is currently in flight.
// All state lives in an explicit Manager value; there are no package
// globals, so tests and callers can run independent managers side by
// side.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/storage"
)

var (
	// ErrNotSignedIn means the operation needs an authenticated user.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrBusy means a completion is already in flight; the send is
	// rejected, not queued.
	ErrBusy = errors.New("a reply is already being generated")
	// ErrUnknownModel means the model ID is not in the catalog.
	ErrUnknownModel = errors.New("unknown model")
	// ErrEmptyMessage rejects blank sends.
	ErrEmptyMessage = errors.New("message is empty")
)

// Completer produces an assistant reply for a conversation history.
// Satisfied by *cloud.Client; tests substitute stubs.
type Completer interface {
	Complete(ctx context.Context, modelID string, history []model.Message) (string, error)
}

// Manager is the orchestrator. Safe for concurrent use; the lock is
// never held across the completion network call.
type Manager struct {
	users     *storage.UserStore
	sessions  *storage.SessionStore
	completer Completer

	mu       sync.Mutex
	user     *model.User
	current  *model.ChatSession
	modelID  string
	inFlight bool
}

// NewManager wires the orchestrator. defaultModel must be a catalog
// ID; an empty string selects the catalog default.
func NewManager(users *storage.UserStore, sessions *storage.SessionStore, completer Completer, defaultModel string) *Manager {
	if defaultModel == "" {
		defaultModel = model.DefaultModelID()
	}
	return &Manager{
		users:     users,
		sessions:  sessions,
		completer: completer,
		modelID:   defaultModel,
	}
}

// SignUp registers and signs in a new account. The password is
// accepted for interface parity and discarded unchecked.
func (m *Manager) SignUp(name, email, _ string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.users.SignUp(name, email)
	if err != nil {
		return nil, err
	}
	m.user = user
	m.current = nil
	return user, nil
}

// SignIn authenticates by email lookup only; the password parameter is
// ignored.
func (m *Manager) SignIn(email, _ string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.users.SignIn(email)
	if err != nil {
		return nil, err
	}
	m.user = user
	m.current = nil
	return user, nil
}

// SignOut clears the persisted current-user pointer and all in-memory
// selection state. Stored accounts and sessions survive.
func (m *Manager) SignOut() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.users.ClearCurrentUser(); err != nil {
		return err
	}
	m.user = nil
	m.current = nil
	return nil
}

// Resume restores the persisted current user, if any. Returns false
// when no one was signed in.
func (m *Manager) Resume() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok, err := m.users.CurrentUser()
	if err != nil || !ok {
		return false, err
	}
	m.user = user
	m.current = nil
	return true, nil
}

// CurrentUser returns the signed-in user, or nil.
func (m *Manager) CurrentUser() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Busy reports whether a completion is in flight.
func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}

// ModelID returns the selected completion model.
func (m *Manager) ModelID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modelID
}

// SelectModel switches the completion model. Existing sessions keep
// their history; only future replies use the new model.
func (m *Manager) SelectModel(id string) error {
	if _, ok := model.LookupModel(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModel, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modelID = id
	return nil
}

// Sessions returns the signed-in user's sessions, most recently
// updated first. The returned sessions are clones.
func (m *Manager) Sessions() ([]*model.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil, ErrNotSignedIn
	}

	list, err := m.sessions.List(m.user.ID)
	if err != nil {
		return nil, err
	}

	cloned := make([]*model.ChatSession, len(list))
	for i, s := range list {
		cloned[i] = s.Clone()
	}
	sort.SliceStable(cloned, func(i, j int) bool {
		return cloned[i].UpdatedAt.After(cloned[j].UpdatedAt)
	})
	return cloned, nil
}

// Current returns a clone of the selected session, or nil.
func (m *Manager) Current() *model.ChatSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	return m.current.Clone()
}

// NewChat creates, persists, and selects an empty session titled
// "Chat N".
func (m *Manager) NewChat() (*model.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.newChatLocked()
}

func (m *Manager) newChatLocked() (*model.ChatSession, error) {
	if m.user == nil {
		return nil, ErrNotSignedIn
	}

	n, err := m.sessions.Count(m.user.ID)
	if err != nil {
		return nil, err
	}

	sess := model.NewChatSession(m.user.ID, n+1)
	if err := m.sessions.Save(sess); err != nil {
		return nil, err
	}
	m.current = sess
	return sess.Clone(), nil
}

// SelectSession makes an existing session current.
func (m *Manager) SelectSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return ErrNotSignedIn
	}

	sess, err := m.sessions.Get(m.user.ID, id)
	if err != nil {
		return err
	}
	m.current = sess
	return nil
}

// DeleteSession removes a session. Deleting the selected session
// leaves no session selected.
func (m *Manager) DeleteSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return ErrNotSignedIn
	}

	if err := m.sessions.Delete(m.user.ID, id); err != nil {
		return err
	}
	if m.current != nil && m.current.ID == id {
		m.current = nil
	}
	return nil
}

// SendMessage runs one full turn: persist the user message, call the
// completion endpoint with the whole history, persist the assistant
// reply. With no session selected a new one is created first.
//
// On completion failure the user message stays persisted, no
// assistant message appears, and the error is returned for the UI to
// show. While a turn is in flight further sends fail with ErrBusy.
func (m *Manager) SendMessage(ctx context.Context, content string) (*model.ChatSession, error) {
	m.mu.Lock()

	if m.user == nil {
		m.mu.Unlock()
		return nil, ErrNotSignedIn
	}
	if m.inFlight {
		m.mu.Unlock()
		return nil, ErrBusy
	}
	if content == "" {
		m.mu.Unlock()
		return nil, ErrEmptyMessage
	}

	if m.current == nil {
		if _, err := m.newChatLocked(); err != nil {
			m.mu.Unlock()
			return nil, err
		}
	}

	// The user turn is persisted before the network call so it
	// survives a failed completion.
	m.current.AddMessage(model.NewMessage(model.RoleUser, content))
	if err := m.sessions.Save(m.current); err != nil {
		m.mu.Unlock()
		return nil, err
	}

	m.inFlight = true
	modelID := m.modelID
	history := m.current.Clone().Messages
	sessID := m.current.ID
	m.mu.Unlock()

	reply, err := m.completer.Complete(ctx, modelID, history)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false

	if err != nil {
		return nil, err
	}
	if m.user == nil {
		// Signed out while the call was in flight; drop the reply.
		return nil, ErrNotSignedIn
	}

	// The selection may have changed while the call was out; the
	// reply still belongs to the session that asked.
	target := m.current
	if target == nil || target.ID != sessID {
		var gerr error
		target, gerr = m.sessions.Get(m.user.ID, sessID)
		if gerr != nil {
			return nil, gerr
		}
	}

	assistant := model.NewMessage(model.RoleAssistant, reply)
	assistant.Model = modelID
	target.AddMessage(assistant)
	if err := m.sessions.Save(target); err != nil {
		return nil, err
	}
	return target.Clone(), nil
}
