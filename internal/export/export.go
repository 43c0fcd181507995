// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package export writes chat sessions out as Markdown or JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
	"github.com/MeruvaPeddababu/chatbotApplication/internal/util"
)

// Format selects an export encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Markdown renders a session as a readable transcript.
func Markdown(sess *model.ChatSession) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", sess.Title)
	fmt.Fprintf(&b, "Created: %s\n\n", sess.CreatedAt.Format("2006-01-02 15:04:05"))

	for _, msg := range sess.Messages {
		switch msg.Role {
		case model.RoleUser:
			b.WriteString("## You\n\n")
		case model.RoleAssistant:
			label := "Assistant"
			if info, ok := model.LookupModel(msg.Model); ok {
				label = info.Name
			}
			fmt.Fprintf(&b, "## %s\n\n", label)
		default:
			fmt.Fprintf(&b, "## %s\n\n", msg.Role)
		}
		b.WriteString(msg.Content)
		b.WriteString("\n\n")
	}

	return []byte(b.String())
}

// JSON renders a session as indented JSON.
func JSON(sess *model.ChatSession) ([]byte, error) {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile exports a session to path in the given format, atomically.
func WriteFile(sess *model.ChatSession, path string, format Format) error {
	var data []byte
	var err error

	switch format {
	case FormatMarkdown:
		data = Markdown(sess)
	case FormatJSON:
		data, err = JSON(sess)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	return util.AtomicWriteFile(path, data, 0o644)
}
