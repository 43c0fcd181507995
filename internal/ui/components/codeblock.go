// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package components provides the reusable pieces of the chatbot TUI:
// message bubbles, the session sidebar, the model picker, and the
// auth form.
package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// HighlightCode applies ANSI syntax highlighting to a fenced code
// block. Used when glamour rendering is disabled; glamour highlights
// its own code blocks. Falls back to the plain text on any failure.
func HighlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// RenderPlain renders markdown-ish text without glamour: fenced code
// blocks get chroma highlighting, everything else passes through.
func RenderPlain(text string) string {
	var out strings.Builder
	var code strings.Builder
	var lang string
	inFence := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				out.WriteString(HighlightCode(strings.TrimRight(code.String(), "\n"), lang))
				out.WriteString("\n")
				code.Reset()
				inFence = false
			} else {
				lang = strings.TrimPrefix(trimmed, "```")
				inFence = true
			}
			continue
		}
		if inFence {
			code.WriteString(line)
			code.WriteString("\n")
			continue
		}
		out.WriteString(line)
		out.WriteString("\n")
	}

	// Unterminated fence: emit what we have.
	if inFence {
		out.WriteString(HighlightCode(strings.TrimRight(code.String(), "\n"), lang))
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}
