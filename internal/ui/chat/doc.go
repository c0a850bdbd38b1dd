// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Bubble Tea chat interface for ink-bot.
//
// The layout is a scrolling transcript viewport over a single-line
// input, with a status bar showing backend connectivity and a
// toggleable sidebar listing saved conversations.
package chat
