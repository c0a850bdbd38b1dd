// ink-bot - A terminal chat client for your hosted model backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/inkbot-tui/internal/backend"
	"github.com/jeranaias/inkbot-tui/internal/cli"
	"github.com/jeranaias/inkbot-tui/internal/config"
	"github.com/jeranaias/inkbot-tui/internal/connection"
	"github.com/jeranaias/inkbot-tui/internal/session"
	"github.com/jeranaias/inkbot-tui/internal/storage"
	"github.com/jeranaias/inkbot-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI()
	case cli.CmdSessions:
		exitOnError(cli.HandleSessions(args))
	case cli.CmdExport:
		exitOnError(cli.HandleExport(args))
	case cli.CmdStatus:
		exitOnError(cli.HandleStatus(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() {
	cfg, err := config.Load()
	if err != nil {
		// Defaults are still usable; tell the user and keep going.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	store := openStore(cfg)
	defer store.Close()

	tracker := connection.NewTracker()
	monitor := connection.NewMonitor(tracker)
	client := backend.NewClient(tracker)
	ctrl := session.NewController(store, client, cfg.Backend.URL)

	program := tea.NewProgram(
		chat.New(ctrl, store, monitor, cfg),
		tea.WithAltScreen(),
	)

	// Live config reload: push changes into the running UI.
	watcher, err := config.NewWatcher(500*time.Millisecond, func(cfg *config.Config, err error) {
		program.Send(chat.ConfigReloadedMsg{Config: cfg, Err: err})
	})
	if err == nil {
		if err := watcher.Watch(); err == nil {
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the configured conversation store, falling back to
// the JSON file store when sqlite cannot be opened.
func openStore(cfg *config.Config) storage.Store {
	store, err := cli.OpenStore(cfg)
	if err == nil {
		return store
	}
	fmt.Fprintf(os.Stderr, "Warning: %v, falling back to JSON storage\n", err)

	dir, dirErr := cfg.DataDir()
	if dirErr != nil {
		dir = "."
	}
	return storage.NewFileStore(filepath.Join(dir, "conversations.json"))
}
