// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and dispatch for ink-bot.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdSessions
	CmdExport
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

const usageText = `inkbot - terminal chat client for your hosted model backend

Ink-bot talks to a remote chat API, keeps every conversation on disk,
and exports transcripts in several formats.

Usage:
  inkbot                      Start TUI (default)
  inkbot sessions [list]      List saved conversations
  inkbot sessions show <id>   Print a conversation transcript
  inkbot sessions delete <id> Delete a conversation
  inkbot export <id>          Export a conversation to a file
    --format txt|md|json      Export format (default: txt)
    --out <dir>               Target directory (default: current)
  inkbot status               Show backend and storage status
  inkbot config show          Print the active configuration
  inkbot config set <k> <v>   Set a configuration value
  inkbot config path          Print the config file path
  inkbot version, -v          Show version information
  inkbot help, -h             Show this help

Configuration keys:
  backend.url        Chat backend base URL
  storage.driver     Persistence backend: json or sqlite
  storage.data_dir   Conversation data directory
  ui.theme           Color theme: dark, light, auto

Environment:
  INKBOT_URL         Override backend.url
  INKBOT_DATA_DIR    Override storage.data_dir
  INKBOT_STORAGE     Override storage.driver
  INKBOT_THEME       Override ui.theme
`

// Parse inspects os.Args and returns the command to run plus its
// remaining arguments.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}

	cmd := strings.ToLower(args[0])
	rest := args[1:]

	switch cmd {
	case "tui":
		return CmdTUI, rest
	case "sessions", "session", "ls":
		return CmdSessions, rest
	case "export":
		return CmdExport, rest
	case "status", "s":
		return CmdStatus, rest
	case "config":
		return CmdConfig, rest
	case "version", "-v", "--version":
		return CmdVersion, rest
	case "help", "-h", "--help":
		return CmdHelp, rest
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, rest
	}
}

// HandleHelp prints usage information.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("inkbot %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
