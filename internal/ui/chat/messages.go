// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// messages.go - Bubble Tea message types used by the chat interface.
//
// Messages are organized into the following categories:
//   - Turns: completion of a chat round-trip
//   - Connection: health probe results
//   - Persistence: save, load, and delete outcomes
//   - Export: transcript export outcomes
//   - Config: live configuration reloads

package chat

import (
	"github.com/jeranaias/inkbot-tui/internal/config"
	"github.com/jeranaias/inkbot-tui/internal/connection"
	"github.com/jeranaias/inkbot-tui/internal/model"
	"github.com/jeranaias/inkbot-tui/internal/storage"
)

// TurnCompleteMsg signals that a chat round-trip finished. Reply is
// the assistant message appended to the transcript (a diagnostic
// message when Err is set).
type TurnCompleteMsg struct {
	Reply model.Message
	Err   error
}

// ProbeResultMsg delivers the outcome of a backend health probe.
// Throttled is set when the rate limiter skipped the probe; State then
// carries the last-known value.
type ProbeResultMsg struct {
	State     connection.State
	Throttled bool
}

// SavedMsg signals that the active conversation was written to the
// store.
type SavedMsg struct {
	Record storage.ConversationRecord
	Err    error
}

// SessionsLoadedMsg delivers the saved conversations for the sidebar.
type SessionsLoadedMsg struct {
	Records []storage.ConversationRecord
}

// DeletedMsg signals that a saved conversation was removed.
type DeletedMsg struct {
	ID  string
	Err error
}

// ExportedMsg signals that the transcript was exported to a file.
type ExportedMsg struct {
	Path string
	Err  error
}

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// clearStatusMsg expires a transient status-bar notice.
type clearStatusMsg struct {
	id int
}
