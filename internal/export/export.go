// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeranaias/inkbot-tui/internal/model"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter renders a transcript into a target format.
type Exporter interface {
	// Export converts the transcript to the target format.
	Export(msgs []model.Message) ([]byte, error)

	// FileExtension returns the file extension, including the dot.
	FileExtension() string
}

// filenamePrefix is the base name of every exported artifact.
const filenamePrefix = "ink-bot-conversation-"

// Filename returns the artifact name for the given day, e.g.
// "ink-bot-conversation-2025-06-01.txt".
func Filename(exporter Exporter, now time.Time) string {
	return filenamePrefix + now.Format("2006-01-02") + exporter.FileExtension()
}

// ToFile renders the transcript and writes it into dir, returning the
// full path of the written file.
func ToFile(msgs []model.Message, exporter Exporter, dir string) (string, error) {
	if len(msgs) == 0 {
		return "", fmt.Errorf("nothing to export: transcript is empty")
	}

	content, err := exporter.Export(msgs)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, Filename(exporter, time.Now()))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
