// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("base URL = %q", cfg.API.BaseURL)
	}
	if cfg.API.DefaultModel != "deepseek/deepseek-chat-v3-0324:free" {
		t.Errorf("default model = %q", cfg.API.DefaultModel)
	}
	if cfg.API.TimeoutSeconds != 60 {
		t.Errorf("timeout = %d", cfg.API.TimeoutSeconds)
	}
	if !cfg.UI.Markdown {
		t.Error("markdown should default on")
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("base URL = %q", cfg.API.BaseURL)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[api]\nkey = \"sk-test\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.API.Key != "sk-test" {
		t.Errorf("key = %q", cfg.API.Key)
	}
	// Unset fields come from defaults.
	if cfg.API.DefaultModel == "" || cfg.API.TimeoutSeconds != 60 {
		t.Errorf("defaults not filled: %+v", cfg.API)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api\nbroken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-env")
	t.Setenv("CHATBOT_MODEL", "qwen/qwen3-coder:free")

	cfg := Default()
	cfg.API.Key = "sk-file"
	cfg.ApplyEnvOverrides()

	if cfg.API.Key != "sk-env" {
		t.Errorf("key = %q, want env value", cfg.API.Key)
	}
	if cfg.API.DefaultModel != "qwen/qwen3-coder:free" {
		t.Errorf("model = %q, want env value", cfg.API.DefaultModel)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.API.Key = "sk-round"
	cfg.UI.Theme = "dark"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("perm = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.API.Key != "sk-round" || loaded.UI.Theme != "dark" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	changed := make(chan *Config, 1)
	w, err := NewWatcher(path, 50*time.Millisecond, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := w.Watch(); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"dark\"\n"), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case cfg := <-changed:
		if cfg.UI.Theme != "dark" {
			t.Errorf("theme = %q, want dark", cfg.UI.Theme)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
