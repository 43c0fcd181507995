// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

const chatHelpText = `Commands:
  /new           Start a fresh chat
  /model [id]    Show or switch the model
  /list          List your chats
  /quit          Exit (also ctrl+d)
`

// HandleChat implements "chatbot chat": a line-based REPL for
// terminals where the full TUI is unwanted (ssh, screen readers,
// scripting around a pty).
func HandleChat(args Args) int {
	app, err := OpenApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer app.Close()

	if err := app.requireUser(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if args.Model != "" {
		if err := app.Manager.SelectModel(args.Model); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	if _, err := app.Manager.NewChat(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	user := app.Manager.CurrentUser()
	fmt.Printf("Chatting as %s with %s. /help for commands.\n\n",
		user.Name, modelName(app.Manager.ModelID()))

	for {
		input, err := line.Prompt("you> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println("bye")
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if done := handleChatCommand(app, input); done {
				return 0
			}
			continue
		}

		sess, err := app.Manager.SendMessage(context.Background(), input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if reply, ok := sess.LastMessage(); ok && reply.Role == model.RoleAssistant {
			fmt.Print(renderMarkdown(reply.Content))
			fmt.Println()
		}
	}
}

// handleChatCommand runs a slash command. Returns true to exit.
func handleChatCommand(app *App, input string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case "/quit", "/exit", "/q":
		fmt.Println("bye")
		return true

	case "/help", "/h":
		fmt.Print(chatHelpText)

	case "/new":
		if _, err := app.Manager.NewChat(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			break
		}
		fmt.Println("Started a fresh chat.")

	case "/model":
		if len(fields) < 2 {
			fmt.Printf("Current model: %s\n", modelName(app.Manager.ModelID()))
			for _, m := range model.Catalog {
				fmt.Printf("  %-40s %s\n", m.ID, m.Name)
			}
			break
		}
		if err := app.Manager.SelectModel(fields[1]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			break
		}
		fmt.Printf("Switched to %s.\n", modelName(fields[1]))

	case "/list":
		list, err := app.Manager.Sessions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			break
		}
		for _, s := range list {
			fmt.Printf("  %s  %s (%d messages)\n", s.ID[:8], s.Title, len(s.Messages))
		}

	default:
		fmt.Printf("Unknown command %s. /help for commands.\n", fields[0])
	}
	return false
}

func modelName(id string) string {
	if info, ok := model.LookupModel(id); ok {
		return info.Name
	}
	return id
}
