// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// chatbot is a terminal AI chat client. Accounts and chat history are
// stored locally; replies come from the OpenRouter completion API.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/cli"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/config"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/ui/chat"
)

func main() {
	cmd, args := cli.Parse()

	var exit int
	switch cmd {
	case cli.CmdAsk:
		exit = cli.HandleAsk(args)
	case cli.CmdChat:
		exit = cli.HandleChat(args)
	case cli.CmdAuth:
		exit = cli.HandleAuth(args)
	case cli.CmdSessions:
		exit = cli.HandleSessions(args)
	case cli.CmdModels:
		exit = cli.HandleModels(args)
	case cli.CmdConfig:
		exit = cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		exit = runTUI()
	}
	os.Exit(exit)
}

func runTUI() int {
	app, err := cli.OpenApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer app.Close()

	// The TUI owns the terminal; request logging goes to a file.
	redirectLogs()

	m := chat.New(app.Manager, app.Cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Live-reload the config file into the running program.
	if path, err := config.ConfigPath(); err == nil {
		watcher, werr := config.NewWatcher(path, 250*time.Millisecond, func(cfg *config.Config) {
			p.Send(chat.ConfigReloadedMsg{Config: cfg})
		})
		if werr == nil && watcher.Watch() == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func redirectLogs() {
	dir, err := config.ConfigDir()
	if err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "chatbot.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	log.SetOutput(f)
}
