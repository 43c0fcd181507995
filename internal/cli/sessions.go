// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/export"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

// HandleSessions implements "chatbot sessions <list|show|delete|export>".
func HandleSessions(args Args) int {
	parser := NewArgParser(args.Raw)

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

	switch parser.Subcommand() {
	case "", "list":
		return sessionsList(app)
	case "show":
		return sessionsShow(app, parser)
	case "delete", "rm":
		return sessionsDelete(app, parser)
	case "export":
		return sessionsExport(app, parser)
	default:
		fmt.Fprintln(os.Stderr, "usage: chatbot sessions [list|show|delete|export]")
		return 1
	}
}

// resolveSession matches an ID or unambiguous ID prefix.
func resolveSession(app *App, ref string) (*model.ChatSession, error) {
	if ref == "" {
		return nil, fmt.Errorf("missing session id")
	}

	list, err := app.Manager.Sessions()
	if err != nil {
		return nil, err
	}

	var match *model.ChatSession
	for _, s := range list {
		if s.ID == ref {
			return s, nil
		}
		if strings.HasPrefix(s.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous session id %q", ref)
			}
			match = s
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no session matches %q", ref)
	}
	return match, nil
}

func sessionsList(app *App) int {
	list, err := app.Manager.Sessions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if len(list) == 0 {
		fmt.Println("No chats yet.")
		return 0
	}

	fmt.Printf("%-10s %-32s %-9s %s\n", "ID", "TITLE", "MESSAGES", "UPDATED")
	for _, s := range list {
		title := s.Title
		if len([]rune(title)) > 30 {
			title = string([]rune(title)[:30]) + ".."
		}
		fmt.Printf("%-10s %-32s %-9d %s\n",
			s.ID[:8], title, len(s.Messages), s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return 0
}

func sessionsShow(app *App, parser *ArgParser) int {
	sess, err := resolveSession(app, parser.Positional(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Printf("%s\n\n", sess.Title)
	for _, msg := range sess.Messages {
		label := "you"
		if msg.Role == model.RoleAssistant {
			label = modelName(msg.Model)
		}
		fmt.Printf("[%s] %s:\n", msg.Timestamp.Format("15:04"), label)
		if msg.Role == model.RoleAssistant {
			fmt.Print(renderMarkdown(msg.Content))
		} else {
			fmt.Println(msg.Content)
		}
		fmt.Println()
	}
	return 0
}

func sessionsDelete(app *App, parser *ArgParser) int {
	sess, err := resolveSession(app, parser.Positional(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if err := app.Manager.DeleteSession(sess.ID); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("Deleted %q.\n", sess.Title)
	return 0
}

func sessionsExport(app *App, parser *ArgParser) int {
	sess, err := resolveSession(app, parser.Positional(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	format := export.FormatMarkdown
	ext := "md"
	if parser.Flag("format", "f") == "json" {
		format = export.FormatJSON
		ext = "json"
	}

	out := parser.Flag("out", "o")
	if out == "" {
		out = fmt.Sprintf("chat-%s.%s", sess.ID[:8], ext)
	}

	if err := export.WriteFile(sess, out, format); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("Exported %q to %s.\n", sess.Title, out)
	return 0
}
