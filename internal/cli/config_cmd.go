// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration management command.
//
// Command: config
// Short:   Show and edit the ink-bot configuration
//
// Examples:
//   inkbot config show
//   inkbot config set backend.url http://localhost:7860
//   inkbot config path

package cli

import (
	"fmt"

	"github.com/jeranaias/inkbot-tui/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	switch args.Subcommand() {
	case "", "show":
		return showConfig()
	case "set":
		return setConfig(args.Positional(1), args.Positional(2))
	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand %q (try: show, set, path)", args.Subcommand())
	}
}

func showConfig() error {
	cfg := config.Global()

	fmt.Println(titleStyle.Render("ink-bot Configuration"))
	fmt.Println(row("backend.url", cfg.Backend.URL))
	fmt.Println(row("storage.driver", cfg.Storage.Driver))

	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	fmt.Println(row("storage.data_dir", dataDir))
	fmt.Println(row("ui.theme", cfg.UI.Theme))
	fmt.Println(row("ui.render_markdown", fmt.Sprintf("%t", cfg.UI.RenderMarkdown)))
	return nil
}

func setConfig(key, value string) error {
	if key == "" || value == "" {
		return fmt.Errorf("usage: inkbot config set <key> <value>")
	}

	cfg := config.Global()
	switch key {
	case "backend.url":
		cfg.Backend.URL = value
	case "storage.driver":
		cfg.Storage.Driver = value
	case "storage.data_dir":
		cfg.Storage.DataDir = value
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.render_markdown":
		cfg.UI.RenderMarkdown = value == "true" || value == "1"
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
