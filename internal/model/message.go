// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package model defines the core domain types for the chatbot: chat
// messages, chat sessions, user accounts, and the model catalog.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser is a message typed by the user.
	RoleUser Role = "user"
	// RoleAssistant is a reply produced by the completion endpoint.
	RoleAssistant Role = "assistant"
	// RoleSystem is an instruction message prepended to the conversation.
	RoleSystem Role = "system"
)

// Message is a single chat turn within a session.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// Model records which catalog model produced an assistant turn.
	// Empty for user and system messages.
	Model string `json:"model,omitempty"`
}

// NewMessage creates a message with a fresh ID and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Preview returns a single-line preview of the message content,
// truncated to maxLen runes with an ellipsis.
func (m Message) Preview(maxLen int) string {
	content := strings.ReplaceAll(m.Content, "\n", " ")
	content = strings.TrimSpace(content)

	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen]) + "..."
}
