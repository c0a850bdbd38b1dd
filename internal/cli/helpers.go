// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jeranaias/inkbot-tui/internal/config"
	"github.com/jeranaias/inkbot-tui/internal/storage"
)

// Conversation data file names inside the data directory.
const (
	jsonStoreFile   = "conversations.json"
	sqliteStoreFile = "conversations.db"
)

// OpenStore opens the conversation store selected by the configuration.
func OpenStore(cfg *config.Config) (storage.Store, error) {
	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	switch cfg.Storage.Driver {
	case "sqlite":
		return storage.NewSQLiteStore(filepath.Join(dir, sqliteStoreFile))
	case "json", "":
		return storage.NewFileStore(filepath.Join(dir, jsonStoreFile)), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// findRecord looks up a conversation by id, accepting unambiguous id
// prefixes for convenience.
func findRecord(store storage.Store, id string) (storage.ConversationRecord, error) {
	var matches []storage.ConversationRecord
	records := store.List()
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
		if len(id) >= 4 && len(rec.ID) > len(id) && rec.ID[:len(id)] == id {
			matches = append(matches, rec)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return storage.ConversationRecord{}, fmt.Errorf("no conversation with id %q", id)
	default:
		return storage.ConversationRecord{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}
