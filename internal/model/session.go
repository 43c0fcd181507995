// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TitleMaxLen is the rune budget for a derived session title before
// it is truncated with an ellipsis.
const TitleMaxLen = 30

// ChatSession is one titled conversation belonging to a user.
type ChatSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewChatSession creates an empty session for userID. The placeholder
// title is "Chat N" where n is the caller's running session count.
func NewChatSession(userID string, n int) *ChatSession {
	now := time.Now()
	return &ChatSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     fmt.Sprintf("Chat %d", n),
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddMessage appends a message, bumps UpdatedAt, and derives the title
// from the first user message. The title is only derived once: when the
// session holds exactly one message after the append.
func (s *ChatSession) AddMessage(msg Message) {
	s.Messages = append(s.Messages, msg)
	s.UpdatedAt = time.Now()

	if len(s.Messages) == 1 && msg.Role == RoleUser {
		s.Title = msg.Preview(TitleMaxLen)
	}
}

// LastMessage returns the most recent message, or false if the session
// is empty.
func (s *ChatSession) LastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// Clone returns a deep copy so callers can mutate without aliasing the
// stored message slice.
func (s *ChatSession) Clone() *ChatSession {
	clone := *s
	clone.Messages = make([]Message, len(s.Messages))
	copy(clone.Messages, s.Messages)
	return &clone
}

// User is a locally registered account. The password given at signup is
// accepted and discarded; it is never stored or verified.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser creates an account record with a fresh ID.
func NewUser(name, email string) *User {
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
}
