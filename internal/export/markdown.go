// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/inkbot-tui/internal/model"
)

// MarkdownExporter renders the transcript as Markdown with bolded
// role labels and horizontal rules between turns.
type MarkdownExporter struct{}

// Export implements Exporter.
func (MarkdownExporter) Export(msgs []model.Message) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# Conversation\n\n")

	for _, msg := range msgs {
		sb.WriteString("**" + msg.Role.DisplayName() + "**:\n\n")
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n---\n\n")
	}
	return []byte(sb.String()), nil
}

// FileExtension implements Exporter.
func (MarkdownExporter) FileExtension() string {
	return ".md"
}
