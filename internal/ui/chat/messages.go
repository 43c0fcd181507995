// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package chat

import (
	"github.com/MeruvaPeddababu/chatbotApplication/internal/config"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

// authResultMsg carries the outcome of a sign-in or sign-up attempt.
type authResultMsg struct {
	User *model.User
	Err  error
}

// replyMsg carries the outcome of one completion turn.
type replyMsg struct {
	Session *model.ChatSession
	Err     error
}

// sessionsMsg carries a refreshed session list for the sidebar.
type sessionsMsg struct {
	Sessions []*model.ChatSession
	Err      error
}

// sessionSelectedMsg carries the session chosen from the sidebar.
type sessionSelectedMsg struct {
	Session *model.ChatSession
	Err     error
}

// ConfigReloadedMsg is pushed into the program by the config watcher
// when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
