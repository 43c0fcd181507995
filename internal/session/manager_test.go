// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/storage"
)

// stubCompleter returns a canned reply or error, optionally blocking
// until released so tests can observe in-flight state.
type stubCompleter struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   chan struct{}
	calls   int
	history []model.Message
}

func (s *stubCompleter) Complete(ctx context.Context, modelID string, history []model.Message) (string, error) {
	s.mu.Lock()
	s.calls++
	s.history = history
	block := s.block
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.reply, s.err
}

func newTestManager(t *testing.T, stub *stubCompleter) *Manager {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "chatbot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewManager(
		storage.NewUserStore(store),
		storage.NewSessionStore(store),
		stub,
		"",
	)
}

func waitBusy(t *testing.T, m *Manager) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !m.Busy() {
		if time.Now().After(deadline) {
			t.Fatal("manager never became busy")
		}
		time.Sleep(time.Millisecond)
	}
}

func signedIn(t *testing.T, stub *stubCompleter) *Manager {
	t.Helper()
	m := newTestManager(t, stub)
	_, err := m.SignUp("Alice", "alice@example.com", "ignored")
	require.NoError(t, err)
	return m
}

func TestSignUpDuplicate(t *testing.T) {
	m := signedIn(t, &stubCompleter{})

	_, err := m.SignUp("Also Alice", "alice@example.com", "x")
	assert.ErrorIs(t, err, storage.ErrUserExists)
}

func TestSignInUnknown(t *testing.T) {
	m := newTestManager(t, &stubCompleter{})

	_, err := m.SignIn("nobody@example.com", "x")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	assert.Nil(t, m.CurrentUser())
}

func TestSignOutClearsSelection(t *testing.T) {
	m := signedIn(t, &stubCompleter{reply: "ok"})

	_, err := m.NewChat()
	require.NoError(t, err)

	require.NoError(t, m.SignOut())
	assert.Nil(t, m.CurrentUser())
	assert.Nil(t, m.Current())

	_, err = m.Sessions()
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestResume(t *testing.T) {
	stub := &stubCompleter{reply: "ok"}
	m := signedIn(t, stub)
	user := m.CurrentUser()

	store, err := storage.Open(filepath.Join(t.TempDir(), "other.db"))
	require.NoError(t, err)
	defer store.Close()
	fresh := NewManager(storage.NewUserStore(store), storage.NewSessionStore(store), stub, "")
	ok, err := fresh.Resume()
	require.NoError(t, err)
	assert.False(t, ok, "empty store has no current user")

	ok, err = m.Resume()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, m.CurrentUser().ID)
}

func TestNewChatNumbersSessions(t *testing.T) {
	m := signedIn(t, &stubCompleter{})

	first, err := m.NewChat()
	require.NoError(t, err)
	second, err := m.NewChat()
	require.NoError(t, err)

	assert.Equal(t, "Chat 1", first.Title)
	assert.Equal(t, "Chat 2", second.Title)
	assert.NotEqual(t, first.ID, second.ID)

	// The newest chat is selected.
	assert.Equal(t, second.ID, m.Current().ID)
}

func TestSelectSession(t *testing.T) {
	m := signedIn(t, &stubCompleter{})

	first, _ := m.NewChat()
	_, _ = m.NewChat()

	require.NoError(t, m.SelectSession(first.ID))
	assert.Equal(t, first.ID, m.Current().ID)

	err := m.SelectSession("no-such-id")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	m := signedIn(t, &stubCompleter{})

	first, _ := m.NewChat()
	second, _ := m.NewChat()

	require.NoError(t, m.DeleteSession(second.ID))
	assert.Nil(t, m.Current(), "deleting the selected session clears selection")

	list, err := m.Sessions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	// Idempotent.
	require.NoError(t, m.DeleteSession(second.ID))
}

func TestSendMessageHappyPath(t *testing.T) {
	stub := &stubCompleter{reply: "Go is a programming language."}
	m := signedIn(t, stub)

	sess, err := m.SendMessage(context.Background(), "What is Go?")
	require.NoError(t, err)

	// No session existed, so one was created and titled from the
	// first user message.
	assert.Equal(t, "What is Go?", sess.Title)
	require.Len(t, sess.Messages, 2)
	assert.Equal(t, model.RoleUser, sess.Messages[0].Role)
	assert.Equal(t, model.RoleAssistant, sess.Messages[1].Role)
	assert.Equal(t, "Go is a programming language.", sess.Messages[1].Content)
	assert.Equal(t, model.DefaultModelID(), sess.Messages[1].Model)
	assert.False(t, m.Busy())
}

func TestSendMessageSendsFullHistory(t *testing.T) {
	stub := &stubCompleter{reply: "reply"}
	m := signedIn(t, stub)

	_, err := m.SendMessage(context.Background(), "one")
	require.NoError(t, err)
	_, err = m.SendMessage(context.Background(), "two")
	require.NoError(t, err)

	// Second call carries: user, assistant, user.
	require.Len(t, stub.history, 3)
	assert.Equal(t, "two", stub.history[2].Content)
}

func TestSendMessageFailureKeepsUserTurn(t *testing.T) {
	stub := &stubCompleter{err: errors.New("endpoint down")}
	m := signedIn(t, stub)

	_, err := m.SendMessage(context.Background(), "hello?")
	require.Error(t, err)

	// The user message is persisted, no assistant message was added,
	// and the manager is ready for the next send.
	sess := m.Current()
	require.NotNil(t, sess)
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, model.RoleUser, sess.Messages[0].Role)
	assert.False(t, m.Busy())

	stub.mu.Lock()
	stub.err = nil
	stub.reply = "recovered"
	stub.mu.Unlock()

	sess, err = m.SendMessage(context.Background(), "retry")
	require.NoError(t, err)
	assert.Len(t, sess.Messages, 3)
}

func TestSendMessageBusy(t *testing.T) {
	stub := &stubCompleter{reply: "slow", block: make(chan struct{})}
	m := signedIn(t, stub)

	done := make(chan error, 1)
	go func() {
		_, err := m.SendMessage(context.Background(), "first")
		done <- err
	}()

	// Wait for the first send to take the in-flight flag.
	waitBusy(t, m)

	_, err := m.SendMessage(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)

	close(stub.block)
	require.NoError(t, <-done)
	assert.False(t, m.Busy())
}

func TestSendMessageEmpty(t *testing.T) {
	m := signedIn(t, &stubCompleter{})
	_, err := m.SendMessage(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendMessageSignedOut(t *testing.T) {
	m := newTestManager(t, &stubCompleter{})
	_, err := m.SendMessage(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestSendMessageReplyLandsInAskingSession(t *testing.T) {
	stub := &stubCompleter{reply: "late answer", block: make(chan struct{})}
	m := signedIn(t, stub)

	asking, err := m.NewChat()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := m.SendMessage(context.Background(), "question")
		done <- err
	}()
	waitBusy(t, m)

	// Switch selection while the reply is pending.
	other, err := m.NewChat()
	require.NoError(t, err)

	close(stub.block)
	require.NoError(t, <-done)

	list, err := m.Sessions()
	require.NoError(t, err)

	var askingStored, otherStored *model.ChatSession
	for _, s := range list {
		switch s.ID {
		case asking.ID:
			askingStored = s
		case other.ID:
			otherStored = s
		}
	}
	require.NotNil(t, askingStored)
	require.NotNil(t, otherStored)

	assert.Len(t, askingStored.Messages, 2, "reply belongs to the session that asked")
	assert.Empty(t, otherStored.Messages)
}

func TestSelectModel(t *testing.T) {
	m := signedIn(t, &stubCompleter{reply: "ok"})

	require.NoError(t, m.SelectModel("qwen/qwen3-coder:free"))
	assert.Equal(t, "qwen/qwen3-coder:free", m.ModelID())

	err := m.SelectModel("bogus/model")
	assert.ErrorIs(t, err, ErrUnknownModel)

	sess, err := m.SendMessage(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "qwen/qwen3-coder:free", sess.Messages[1].Model)
}

func TestSessionsNewestFirst(t *testing.T) {
	stub := &stubCompleter{reply: "ok"}
	m := signedIn(t, stub)

	first, _ := m.NewChat()
	_, _ = m.NewChat()

	// Sending into the first session makes it the most recent.
	require.NoError(t, m.SelectSession(first.ID))
	_, err := m.SendMessage(context.Background(), "bump")
	require.NoError(t, err)

	list, err := m.Sessions()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestUserIsolation(t *testing.T) {
	stub := &stubCompleter{reply: "ok"}
	m := signedIn(t, stub)

	_, err := m.SendMessage(context.Background(), "alice's secret")
	require.NoError(t, err)

	_, err = m.SignUp("Bob", "bob@example.com", "x")
	require.NoError(t, err)

	list, err := m.Sessions()
	require.NoError(t, err)
	assert.Empty(t, list, "bob must not see alice's sessions")

	_, err = m.SignIn("alice@example.com", "x")
	require.NoError(t, err)
	list, err = m.Sessions()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
