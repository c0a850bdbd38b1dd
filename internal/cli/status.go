// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Status command implementation.
//
// Command: status
// Short:   Show backend reachability and storage state
// Aliases: s
//
// Status Sections:
//   Backend:   Configured URL and health probe result
//   Storage:   Driver, data directory, saved conversation count

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jeranaias/inkbot-tui/internal/config"
	"github.com/jeranaias/inkbot-tui/internal/connection"
)

// HandleStatus probes the backend and prints a status summary.
func HandleStatus(rawArgs []string) error {
	cfg := config.Global()

	fmt.Println(titleStyle.Render("ink-bot Status"))

	// Backend
	monitor := connection.NewMonitor(connection.NewTracker())
	ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
	defer cancel()
	state := monitor.Probe(ctx, cfg.Backend.URL)

	var health string
	switch state {
	case connection.StateConnected:
		health = okStyle.Render("reachable")
	default:
		health = errStyle.Render("unreachable")
	}
	fmt.Println(row("Backend", cfg.Backend.URL))
	fmt.Println(row("Health", health))

	// Storage
	fmt.Println(row("Driver", cfg.Storage.Driver))
	dir, err := cfg.DataDir()
	if err == nil {
		fmt.Println(row("Data dir", dir))
	}

	store, err := OpenStore(cfg)
	if err != nil {
		fmt.Println(row("Storage", errStyle.Render(err.Error())))
		return nil
	}
	defer store.Close()

	fmt.Println(row("Saved", fmt.Sprintf("%d conversations", len(store.List()))))

	return nil
}
