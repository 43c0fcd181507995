// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/config"
)

// HandleConfig implements "chatbot config [show|set|path]".
func HandleConfig(args Args) int {
	parser := NewArgParser(args.Raw)

	switch parser.Subcommand() {
	case "", "show":
		return configShow()
	case "set":
		return configSet(parser.Positional(0), parser.Positional(1))
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Println(path)
		return 0
	default:
		fmt.Fprintln(os.Stderr, "usage: chatbot config [show|set <key> <value>|path]")
		return 1
	}
}

func configShow() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	key := "(not set)"
	if cfg.API.Key != "" {
		// SECURITY: never print the credential itself.
		key = "****" + tail(cfg.API.Key, 4)
	}

	fmt.Printf("api.key            %s\n", key)
	fmt.Printf("api.base_url       %s\n", cfg.API.BaseURL)
	fmt.Printf("api.default_model  %s\n", cfg.API.DefaultModel)
	fmt.Printf("api.timeout        %ds\n", cfg.API.TimeoutSeconds)
	fmt.Printf("ui.theme           %s\n", cfg.UI.Theme)
	fmt.Printf("ui.markdown        %t\n", cfg.UI.Markdown)
	if path, err := cfg.StorePath(); err == nil {
		fmt.Printf("storage.path       %s\n", path)
	}
	return 0
}

func configSet(key, value string) int {
	if key == "" || value == "" {
		fmt.Fprintln(os.Stderr, "usage: chatbot config set <key> <value>")
		return 1
	}

	// Edit the file as written, without env overrides baked in.
	path, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	switch key {
	case "api.key":
		cfg.API.Key = value
	case "api.base_url":
		cfg.API.BaseURL = value
	case "api.default_model":
		cfg.API.DefaultModel = value
	case "api.timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "error: timeout must be a positive integer\n")
			return 1
		}
		cfg.API.TimeoutSeconds = n
	case "ui.theme":
		if value != "auto" && value != "dark" && value != "light" {
			fmt.Fprintln(os.Stderr, "error: theme must be auto, dark, or light")
			return 1
		}
		cfg.UI.Theme = value
	case "ui.markdown":
		b, err := strconv.ParseBool(value)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: markdown must be true or false")
			return 1
		}
		cfg.UI.Markdown = b
	case "storage.path":
		cfg.Storage.Path = value
	default:
		fmt.Fprintf(os.Stderr, "error: unknown key %q\n", key)
		return 1
	}

	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("Set %s.\n", key)
	return 0
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
