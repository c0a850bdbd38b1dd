// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"time"

	"github.com/jeranaias/inkbot-tui/internal/model"
)

// =============================================================================
// RECORD TYPE
// =============================================================================

// ConversationRecord is a persisted snapshot of a conversation.
type ConversationRecord struct {
	// ID is assigned once and unique across all stored records.
	ID string `json:"id"`

	// Title is derived from the first message at creation time and
	// never re-derived afterwards.
	Title string `json:"title"`

	// Messages is the full ordered transcript.
	Messages []model.Message `json:"messages"`

	// Timestamp is refreshed every time the record is persisted.
	Timestamp time.Time `json:"timestamp"`
}

// Clone returns a deep copy of the record so callers cannot mutate
// stored state through a shared messages slice.
func (r ConversationRecord) Clone() ConversationRecord {
	out := r
	out.Messages = model.CloneMessages(r.Messages)
	return out
}

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store is the persistence contract for conversation records.
//
// Implementations keep exactly one record per id. List order is
// insertion order, newest first: Save prepends unknown ids and
// replaces known ids in place.
type Store interface {
	// List returns all records, newest-first by insertion.
	List() []ConversationRecord

	// Save prepends a new record or replaces the record with the
	// same id, leaving the order of the others unchanged. The full
	// collection is durably written before Save returns.
	Save(rec ConversationRecord) error

	// Delete removes the record with the given id. Deleting an
	// unknown id is a no-op.
	Delete(id string) error

	// Close releases any resources held by the store.
	Close() error
}

// =============================================================================
// ERRORS
// =============================================================================

// StorageError reports a durable-storage failure. Reads never produce
// one (absent or corrupt storage fails open to an empty collection);
// writes always surface one instead of failing silently.
type StorageError struct {
	Op   string // "save", "delete", "open"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return "storage " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
