// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders conversation transcripts as downloadable
// artifacts.
//
// The canonical format is plain text: one blank-line-separated block
// per message, each formatted as "ROLE: content" with the role
// upper-cased. Markdown and JSON renderings are also available.
// Exported files are named with the current date, e.g.
// ink-bot-conversation-2025-06-01.txt.
package export
