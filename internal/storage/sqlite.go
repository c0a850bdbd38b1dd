// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/inkbot-tui/internal/model"
)

// =============================================================================
// SQLITE STORE
// =============================================================================

// schema keeps the same ordering contract as the JSON document: the
// position column records insertion order, new records take the
// smallest position, and List reads position ascending.
const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	id        TEXT PRIMARY KEY,
	title     TEXT NOT NULL,
	messages  TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	position  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversations_position ON conversations(position);
`

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or initializes) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, &StorageError{Op: "open", Path: path, Err: fmt.Errorf("failed to set pragma: %w", err)}
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: fmt.Errorf("failed to initialize schema: %w", err)}
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// List returns all records, newest-first by insertion.
//
// Rows that fail to decode are skipped rather than failing the whole
// listing, matching the fails-open read behavior of the file store.
func (s *SQLiteStore) List() []ConversationRecord {
	rows, err := s.db.Query(
		"SELECT id, title, messages, timestamp FROM conversations ORDER BY position ASC")
	if err != nil {
		return nil
	}
	defer rows.Close()

	var records []ConversationRecord
	for rows.Next() {
		var (
			rec     ConversationRecord
			rawMsgs string
			rawTS   string
		)
		if err := rows.Scan(&rec.ID, &rec.Title, &rawMsgs, &rawTS); err != nil {
			continue
		}

		var msgs []model.Message
		if err := json.Unmarshal([]byte(rawMsgs), &msgs); err != nil {
			continue
		}
		rec.Messages = msgs

		if ts, err := time.Parse(time.RFC3339Nano, rawTS); err == nil {
			rec.Timestamp = ts
		}

		records = append(records, rec)
	}
	return records
}

// Save prepends a new record or replaces the existing record with the
// same id in place (its position is preserved).
func (s *SQLiteStore) Save(rec ConversationRecord) error {
	msgs := rec.Messages
	if msgs == nil {
		msgs = []model.Message{}
	}
	rawMsgs, err := json.Marshal(msgs)
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	rawTS := rec.Timestamp.Format(time.RFC3339Nano)

	tx, err := s.db.Begin()
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"UPDATE conversations SET title = ?, messages = ?, timestamp = ? WHERE id = ?",
		rec.Title, string(rawMsgs), rawTS, rec.ID)
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	if n, _ := res.RowsAffected(); n == 0 {
		// New record goes to the front of the list.
		_, err = tx.Exec(
			`INSERT INTO conversations (id, title, messages, timestamp, position)
			 VALUES (?, ?, ?, ?, (SELECT COALESCE(MIN(position), 0) - 1 FROM conversations))`,
			rec.ID, rec.Title, string(rawMsgs), rawTS)
		if err != nil {
			return &StorageError{Op: "save", Path: s.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Delete removes the record with the given id; unknown ids are a no-op.
func (s *SQLiteStore) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM conversations WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete", Path: s.path, Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
