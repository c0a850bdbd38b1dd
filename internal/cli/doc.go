// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the headless command
// handlers for ink-bot.
//
// Running the binary with no arguments starts the TUI. Everything else
// is a subcommand:
//
//	inkbot                      Start TUI (default)
//	inkbot sessions [list]      List saved conversations
//	inkbot sessions show <id>   Print a conversation transcript
//	inkbot sessions delete <id> Delete a conversation
//	inkbot export <id>          Export a conversation to a file
//	inkbot status               Show backend and storage status
//	inkbot config [show|set]    Configuration management
//	inkbot version              Show version information
package cli
