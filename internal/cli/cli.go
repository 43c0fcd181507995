// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package cli parses arguments and implements the non-TUI commands:
// auth, ask, chat, sessions, models, and config.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/cloud"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/config"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/session"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/storage"
)

// Version information (overridden at build time).
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command is the top-level CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdAuth
	CmdSessions
	CmdModels
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds the parsed top-level arguments.
type Args struct {
	Query string
	Model string
	JSON  bool
	Raw   []string
}

const usageText = `chatbot - terminal AI chat client

Chat with OpenRouter models from the terminal. Accounts, chats, and
settings all live locally; nothing but the conversation itself leaves
the machine.

Usage:
  chatbot                        Start the TUI (default)
  chatbot ask "question"         One-shot question, prints the reply
  chatbot chat                   Interactive REPL chat
  chatbot auth <subcommand>      signup | signin | signout | whoami
  chatbot sessions [subcommand]  list | show | delete | export
  chatbot models                 List available models
  chatbot config [show|set|path] Configuration
  chatbot version                Print version
  chatbot help                   This help

Flags:
  -m, --model NAME   Use a specific model for ask/chat
  --json             Machine-readable output where supported

Environment:
  OPENROUTER_API_KEY   API key (overrides config file)
  CHATBOT_BASE_URL     Completion endpoint base URL
  CHATBOT_MODEL        Default model ID

Examples:
  chatbot auth signup --name "Alice" --email alice@example.com
  chatbot ask "What is a goroutine?"
  chatbot ask -m qwen/qwen3-coder:free "Review this function"
  chatbot sessions export --format markdown --out chat.md
`

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, Args) {
	raw := os.Args[1:]
	args := Args{}

	if len(raw) == 0 {
		return CmdTUI, args
	}

	cmd := CmdTUI
	switch raw[0] {
	case "ask":
		cmd = CmdAsk
	case "chat":
		cmd = CmdChat
	case "auth":
		cmd = CmdAuth
	case "session", "sessions":
		cmd = CmdSessions
	case "model", "models":
		cmd = CmdModels
	case "config":
		cmd = CmdConfig
	case "version", "-v", "--version":
		cmd = CmdVersion
	case "help", "-h", "--help":
		cmd = CmdHelp
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", raw[0])
		return CmdHelp, args
	}

	parser := NewArgParser(raw[1:])
	args.Query = parser.Join()
	args.Model = parser.Flag("model", "m")
	args.JSON = parser.BoolFlag("json")
	args.Raw = raw[1:]
	return cmd, args
}

// PrintUsage writes the help text.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information.
func PrintVersion() {
	fmt.Printf("chatbot %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// App bundles the wired-up stores and manager the command handlers
// work against.
type App struct {
	Cfg     *config.Config
	Store   *storage.LocalStore
	Users   *storage.UserStore
	Chats   *storage.SessionStore
	Manager *session.Manager
}

// OpenApp loads config, opens the local store, and builds the
// manager. The persisted current user resumes automatically.
func OpenApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.SetGlobal(cfg)

	path, err := cfg.StorePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}

	users := storage.NewUserStore(store)
	chats := storage.NewSessionStore(store)

	client := cloud.NewClient(cfg.API.Key,
		cloud.WithBaseURL(cfg.API.BaseURL),
		cloud.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
	)

	mgr := session.NewManager(users, chats, client, cfg.API.DefaultModel)
	if _, err := mgr.Resume(); err != nil {
		store.Close()
		return nil, err
	}

	return &App{Cfg: cfg, Store: store, Users: users, Chats: chats, Manager: mgr}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// requireUser fails with a uniform message when no one is signed in.
func (a *App) requireUser() error {
	if a.Manager.CurrentUser() == nil {
		return fmt.Errorf("not signed in (run: chatbot auth signin)")
	}
	return nil
}
