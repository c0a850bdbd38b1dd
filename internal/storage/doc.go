// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for the inkbot TUI.
//
// Records are kept newest-first by insertion: a save with a fresh id
// prepends, a save with an existing id replaces that record in place
// and leaves the order untouched. Every mutation rewrites the full
// collection to durable storage before returning.
//
// # Backends
//
//   - FileStore: one JSON document (conversations.json), written
//     atomically. The default.
//   - SQLiteStore: the same contract on a SQLite database, for users
//     with large histories.
//
// Reads fail open: a missing or corrupt durable store yields an empty
// collection, never an error. Writes report a *StorageError.
package storage
