// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session orchestrates the active conversation.
//
// The Controller owns the in-memory transcript and the session
// identity, and binds the conversation store to the chat client. It
// moves between three states:
//
//   - Empty: no active id, no messages
//   - Active-unsaved: messages but no active id
//   - Active-saved: an active id; further saves update that record
//
// Exactly one turn may be in flight at a time; a second SubmitTurn
// while one is pending returns ErrBusy without touching the
// transcript. A failed turn keeps the user message and appends a
// diagnostic assistant reply instead of rolling back.
package session
