// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Transcript export.
//
// Command: export
// Short:   Export a saved conversation to a file
//
// Examples:
//   inkbot export 3f2a                      Export as text into the cwd
//   inkbot export 3f2a --format md          Export as Markdown
//   inkbot export --last --format json --out ~/notes

package cli

import (
	"fmt"

	"github.com/jeranaias/inkbot-tui/internal/config"
	"github.com/jeranaias/inkbot-tui/internal/export"
	"github.com/jeranaias/inkbot-tui/internal/storage"
)

// ExporterFor maps a format name to its exporter.
func ExporterFor(format string) (export.Exporter, error) {
	switch format {
	case "", "txt", "text":
		return export.TextExporter{}, nil
	case "md", "markdown":
		return export.MarkdownExporter{}, nil
	case "json":
		return export.JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (try: txt, md, json)", format)
	}
}

// HandleExport exports a saved conversation transcript to a file.
func HandleExport(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	exporter, err := ExporterFor(args.Flag("format"))
	if err != nil {
		return err
	}

	store, err := OpenStore(config.Global())
	if err != nil {
		return err
	}
	defer store.Close()

	var rec storage.ConversationRecord
	if args.BoolFlag("last") {
		records := store.List()
		if len(records) == 0 {
			return fmt.Errorf("no saved conversations to export")
		}
		rec = records[0]
	} else {
		id := args.Positional(0)
		if id == "" {
			return fmt.Errorf("usage: inkbot export <id> [--format txt|md|json] [--out dir]")
		}
		rec, err = findRecord(store, id)
		if err != nil {
			return err
		}
	}

	path, err := export.ToFile(rec.Messages, exporter, args.FlagOrDefault("out", "."))
	if err != nil {
		return err
	}

	fmt.Printf("Exported %q to %s\n", rec.Title, path)
	return nil
}
