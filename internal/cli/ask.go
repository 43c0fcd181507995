// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/config"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

var markdownRenderer *glamour.TermRenderer

func initMarkdownRenderer() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

// renderMarkdown prettifies assistant output on a TTY; piped output
// stays raw, as does everything when ui.markdown is off.
func renderMarkdown(text string) string {
	if !IsStdoutTTY() || !config.Global().UI.Markdown {
		return text
	}
	if markdownRenderer == nil {
		initMarkdownRenderer()
	}
	if markdownRenderer == nil {
		return text
	}
	out, err := markdownRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// HandleAsk implements "chatbot ask": one question, one reply, into a
// fresh chat session so the exchange shows up in the TUI later.
func HandleAsk(args Args) int {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: chatbot ask \"question\"")
		return 1
	}

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

	sess, err := app.Manager.SendMessage(context.Background(), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	reply, ok := sess.LastMessage()
	if !ok || reply.Role != model.RoleAssistant {
		fmt.Fprintln(os.Stderr, "error: no reply received")
		return 1
	}

	if args.JSON {
		out, err := json.Marshal(map[string]string{
			"model":   reply.Model,
			"content": reply.Content,
			"session": sess.ID,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}

	fmt.Print(renderMarkdown(reply.Content))
	return 0
}
