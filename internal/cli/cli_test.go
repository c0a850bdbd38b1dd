// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jeranaias/inkbot-tui/internal/model"
	"github.com/jeranaias/inkbot-tui/internal/storage"
)

func TestArgParser(t *testing.T) {
	args := NewArgParser([]string{"show", "abc123", "--format", "md", "--out=/tmp/x", "--confirm"})

	if args.Subcommand() != "show" {
		t.Errorf("Subcommand = %q", args.Subcommand())
	}
	if args.Positional(1) != "abc123" {
		t.Errorf("Positional(1) = %q", args.Positional(1))
	}
	if args.Flag("format") != "md" {
		t.Errorf("Flag(format) = %q", args.Flag("format"))
	}
	if args.Flag("out") != "/tmp/x" {
		t.Errorf("Flag(out) = %q", args.Flag("out"))
	}
	if !args.BoolFlag("confirm") {
		t.Error("BoolFlag(confirm) = false")
	}
	if args.Positional(9) != "" {
		t.Error("out-of-range positional should be empty")
	}
}

func TestArgParserEmpty(t *testing.T) {
	args := NewArgParser(nil)
	if args.Subcommand() != "" {
		t.Errorf("Subcommand = %q, want empty", args.Subcommand())
	}
	if args.Flag("anything") != "" || args.BoolFlag("anything") {
		t.Error("flags on empty parser should be zero-valued")
	}
}

func TestExporterFor(t *testing.T) {
	for _, format := range []string{"", "txt", "text", "md", "markdown", "json"} {
		if _, err := ExporterFor(format); err != nil {
			t.Errorf("ExporterFor(%q) failed: %v", format, err)
		}
	}
	if _, err := ExporterFor("pdf"); err == nil {
		t.Error("ExporterFor(pdf) should fail")
	}
}

func TestFindRecord(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "conversations.json"))
	defer store.Close()

	recs := []storage.ConversationRecord{
		{ID: "aaaa1111", Title: "first", Timestamp: time.Now()},
		{ID: "aaaa2222", Title: "second", Timestamp: time.Now()},
		{ID: "bbbb3333", Title: "third", Timestamp: time.Now()},
	}
	for _, rec := range recs {
		rec.Messages = []model.Message{model.NewUserMessage("hi")}
		if err := store.Save(rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := findRecord(store, "bbbb3333")
	if err != nil || got.Title != "third" {
		t.Errorf("exact match: got %q, err %v", got.Title, err)
	}

	got, err = findRecord(store, "bbbb")
	if err != nil || got.Title != "third" {
		t.Errorf("prefix match: got %q, err %v", got.Title, err)
	}

	if _, err := findRecord(store, "aaaa"); err == nil {
		t.Error("ambiguous prefix should fail")
	}
	if _, err := findRecord(store, "zzzz9999"); err == nil {
		t.Error("missing id should fail")
	}
}
