// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

// ErrSessionNotFound is returned when a session ID is not in the
// user's collection.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists chat sessions. Each user owns one collection
// under its own key, so operations on one user can never touch
// another user's sessions.
type SessionStore struct {
	store *LocalStore
}

// NewSessionStore wraps store with the session operations.
func NewSessionStore(store *LocalStore) *SessionStore {
	return &SessionStore{store: store}
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + userID
}

// List returns all sessions for userID in stored order. A corrupt
// collection is treated as empty after a warning.
func (s *SessionStore) List(userID string) ([]*model.ChatSession, error) {
	var sessions []*model.ChatSession
	if _, err := s.store.getJSON(sessionKey(userID), &sessions); err != nil {
		if errors.Is(err, ErrCorruptRecord) {
			fmt.Fprintf(os.Stderr, "warning: %v (treating as empty)\n", err)
			return nil, nil
		}
		return nil, err
	}
	return sessions, nil
}

// Get returns one session by ID.
func (s *SessionStore) Get(userID, sessionID string) (*model.ChatSession, error) {
	sessions, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		if sess.ID == sessionID {
			return sess, nil
		}
	}
	return nil, ErrSessionNotFound
}

// Save upserts session into its user's collection: an existing ID is
// replaced in place, a new ID is appended. The whole collection is
// rewritten, so saving the same session twice is idempotent.
func (s *SessionStore) Save(session *model.ChatSession) error {
	sessions, err := s.List(session.UserID)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range sessions {
		if existing.ID == session.ID {
			sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, session)
	}

	return s.store.setJSON(sessionKey(session.UserID), sessions)
}

// Delete removes a session from its user's collection. Deleting an
// absent ID is a no-op so the operation is idempotent.
func (s *SessionStore) Delete(userID, sessionID string) error {
	sessions, err := s.List(userID)
	if err != nil {
		return err
	}

	kept := sessions[:0]
	for _, sess := range sessions {
		if sess.ID != sessionID {
			kept = append(kept, sess)
		}
	}

	return s.store.setJSON(sessionKey(userID), kept)
}

// Count returns how many sessions userID has. Used for "Chat N"
// placeholder titles.
func (s *SessionStore) Count(userID string) (int, error) {
	sessions, err := s.List(userID)
	if err != nil {
		return 0, err
	}
	return len(sessions), nil
}
