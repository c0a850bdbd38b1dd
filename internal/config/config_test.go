// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setHome points the config directory at a temp dir for the test.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows
	return home
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Backend.URL != DefaultBackendURL {
		t.Errorf("Backend.URL = %q, want %q", cfg.Backend.URL, DefaultBackendURL)
	}
	if cfg.Storage.Driver != "json" {
		t.Errorf("Storage.Driver = %q, want json", cfg.Storage.Driver)
	}
	if !cfg.UI.RenderMarkdown {
		t.Error("RenderMarkdown should default to true")
	}
}

func TestLoadMissingFilesReturnsDefaults(t *testing.T) {
	setHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config files: %v", err)
	}
	if cfg.Backend.URL != DefaultBackendURL {
		t.Errorf("Backend.URL = %q, want default", cfg.Backend.URL)
	}
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	setHome(t)

	cfg := Default()
	cfg.Backend.URL = "http://localhost:7860"
	cfg.UI.Theme = "dark"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path, _ := ConfigPathTOML()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend.URL != "http://localhost:7860" {
		t.Errorf("Backend.URL = %q after round trip", loaded.Backend.URL)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q after round trip", loaded.UI.Theme)
	}
}

func TestLoadJSONFallback(t *testing.T) {
	home := setHome(t)

	dir := filepath.Join(home, ".inkbot")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	jsonBody := `{"backend":{"url":"http://json-host:9000"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(jsonBody), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend.URL != "http://json-host:9000" {
		t.Errorf("Backend.URL = %q, want json-host", cfg.Backend.URL)
	}
	// Unset fields fall back to defaults
	if cfg.Storage.Driver != "json" {
		t.Errorf("Storage.Driver = %q, want default json", cfg.Storage.Driver)
	}
}

func TestTOMLTakesPrecedenceOverJSON(t *testing.T) {
	home := setHome(t)

	dir := filepath.Join(home, ".inkbot")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	toml := "[backend]\nurl = \"http://toml-host:1\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0600); err != nil {
		t.Fatal(err)
	}
	jsonBody := `{"backend":{"url":"http://json-host:2"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(jsonBody), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend.URL != "http://toml-host:1" {
		t.Errorf("Backend.URL = %q, TOML should win", cfg.Backend.URL)
	}
}

func TestEnvOverrides(t *testing.T) {
	setHome(t)
	t.Setenv("INKBOT_URL", "http://env-host:5000")
	t.Setenv("INKBOT_STORAGE", "sqlite")
	t.Setenv("INKBOT_THEME", "light")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend.URL != "http://env-host:5000" {
		t.Errorf("INKBOT_URL not applied, got %q", cfg.Backend.URL)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("INKBOT_STORAGE not applied, got %q", cfg.Storage.Driver)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("INKBOT_THEME not applied, got %q", cfg.UI.Theme)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Backend.URL = "not a url"
	cfg.Storage.Driver = "postgres"
	cfg.UI.Theme = "neon"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	for _, field := range []string{"backend.url", "storage.driver", "ui.theme"} {
		if !strings.Contains(msg, field) {
			t.Errorf("validation error missing %q: %v", field, msg)
		}
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(tomlPath, []byte("[ui]\ntheme = \"dark\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromPath(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromPath toml: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q, want dark", cfg.UI.Theme)
	}

	jsonPath := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(jsonPath, []byte(`{"ui":{"theme":"light"}}`), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadFromPath(jsonPath)
	if err != nil {
		t.Fatalf("LoadFromPath json: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("UI.Theme = %q, want light", cfg.UI.Theme)
	}
}

func TestLoadCorruptTOMLReportsError(t *testing.T) {
	home := setHome(t)

	dir := filepath.Join(home, ".inkbot")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("{{{not toml"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Error("expected a load error for corrupt TOML")
	}
	if cfg == nil {
		t.Fatal("Load should still return usable defaults")
	}
	if cfg.Backend.URL != DefaultBackendURL {
		t.Errorf("Backend.URL = %q, want default", cfg.Backend.URL)
	}
}

func TestDataDirOverride(t *testing.T) {
	setHome(t)

	cfg := Default()
	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(dir) != ".inkbot" {
		t.Errorf("default data dir = %q, want ~/.inkbot", dir)
	}

	cfg.Storage.DataDir = "/tmp/elsewhere"
	dir, err = cfg.DataDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/elsewhere" {
		t.Errorf("data dir override = %q", dir)
	}
}

func TestGlobalSetAndReset(t *testing.T) {
	setHome(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	custom := Default()
	custom.UI.Theme = "dark"
	SetGlobal(custom)

	if Global().UI.Theme != "dark" {
		t.Error("Global did not return the configured instance")
	}
}
