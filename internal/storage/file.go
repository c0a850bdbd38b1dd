// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/jeranaias/inkbot-tui/internal/util"
)

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore persists the whole collection as one JSON document.
//
// The in-memory slice is authoritative between mutations; every Save
// and Delete rewrites the document atomically before returning, so a
// reader never observes a partial write.
type FileStore struct {
	mu      sync.Mutex
	path    string
	records []ConversationRecord
}

// NewFileStore opens (or initializes) the store backed by path.
//
// A missing or unreadable document yields an empty store; a document
// that fails to parse does too. Load errors are deliberately not
// surfaced - stale history must never block starting a session.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	s.records = loadRecords(path)
	return s
}

// loadRecords reads the document, failing open to an empty slice.
func loadRecords(path string) []ConversationRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var records []ConversationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// List returns all records, newest-first by insertion.
func (s *FileStore) List() []ConversationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ConversationRecord, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

// Save prepends a new record or replaces the existing record with the
// same id in place.
func (s *FileStore) Save(rec ConversationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec = rec.Clone()

	replaced := false
	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		s.records = append([]ConversationRecord{rec}, s.records...)
	}

	if err := s.persistLocked(); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Delete removes the record with the given id; unknown ids are a no-op.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.persistLocked(); err != nil {
		return &StorageError{Op: "delete", Path: s.path, Err: err}
	}
	return nil
}

// Close is a no-op for the file store; every mutation already syncs.
func (s *FileStore) Close() error {
	return nil
}

// persistLocked rewrites the full document. Callers hold s.mu.
func (s *FileStore) persistLocked() error {
	records := s.records
	if records == nil {
		records = []ConversationRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path, data, 0600)
}
