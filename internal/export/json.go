// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"

	"github.com/jeranaias/inkbot-tui/internal/model"
)

// JSONExporter renders the transcript as pretty-printed JSON.
type JSONExporter struct{}

// Export implements Exporter.
func (JSONExporter) Export(msgs []model.Message) ([]byte, error) {
	return json.MarshalIndent(msgs, "", "  ")
}

// FileExtension implements Exporter.
func (JSONExporter) FileExtension() string {
	return ".json"
}
