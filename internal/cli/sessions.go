// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// sessions.go - Saved-conversation management.
//
// Command: sessions
// Short:   List, show, and delete saved conversations
//
// Examples:
//   inkbot sessions                   List saved conversations
//   inkbot sessions show 3f2a         Print a transcript (id prefix ok)
//   inkbot sessions delete 3f2a --confirm

package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/inkbot-tui/internal/config"
	"github.com/jeranaias/inkbot-tui/internal/util"
)

// HandleSessions dispatches the sessions subcommands.
func HandleSessions(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	switch args.Subcommand() {
	case "", "list":
		return listSessions()
	case "show":
		return showSession(args.Positional(1))
	case "delete", "rm":
		return deleteSession(args.Positional(1), args.BoolFlag("confirm"))
	default:
		return fmt.Errorf("unknown sessions subcommand %q (try: list, show, delete)", args.Subcommand())
	}
}

func listSessions() error {
	store, err := OpenStore(config.Global())
	if err != nil {
		return err
	}
	defer store.Close()

	records := store.List()

	fmt.Println(titleStyle.Render("Saved Conversations"))
	if len(records) == 0 {
		fmt.Println(dimStyle.Render("  (none yet - start chatting and press ctrl+s)"))
		return nil
	}

	for _, rec := range records {
		id := rec.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %s  %s  %s\n",
			dimStyle.Render(id),
			valueStyle.Render(util.TruncateString(rec.Title, 48)),
			dimStyle.Render(fmt.Sprintf("%d msgs, %s", len(rec.Messages), rec.Timestamp.Format("2006-01-02 15:04"))),
		)
	}
	return nil
}

func showSession(id string) error {
	if id == "" {
		return fmt.Errorf("usage: inkbot sessions show <id>")
	}

	store, err := OpenStore(config.Global())
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := findRecord(store, id)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(rec.Title))
	fmt.Println(dimStyle.Render(fmt.Sprintf("id: %s  saved: %s", rec.ID, rec.Timestamp.Format("2006-01-02 15:04:05"))))
	fmt.Println()

	for _, msg := range rec.Messages {
		fmt.Println(okStyle.Render(strings.ToUpper(msg.Role.String()) + ":"))
		fmt.Println(msg.Content)
		fmt.Println()
	}
	return nil
}

func deleteSession(id string, confirmed bool) error {
	if id == "" {
		return fmt.Errorf("usage: inkbot sessions delete <id> --confirm")
	}
	if !confirmed {
		return fmt.Errorf("refusing to delete without --confirm")
	}

	store, err := OpenStore(config.Global())
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := findRecord(store, id)
	if err != nil {
		return err
	}
	if err := store.Delete(rec.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %s (%s)\n", rec.ID, rec.Title)
	return nil
}
