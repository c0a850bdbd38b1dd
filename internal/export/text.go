// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/inkbot-tui/internal/model"
)

// TextExporter renders the transcript as plain text, one
// "ROLE: content" block per message separated by blank lines.
type TextExporter struct{}

// Export implements Exporter.
func (TextExporter) Export(msgs []model.Message) ([]byte, error) {
	blocks := make([]string, len(msgs))
	for i, msg := range msgs {
		blocks[i] = strings.ToUpper(msg.Role.String()) + ": " + msg.Content
	}
	return []byte(strings.Join(blocks, "\n\n")), nil
}

// FileExtension implements Exporter.
func (TextExporter) FileExtension() string {
	return ".txt"
}
