// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/inkbot-tui/internal/model"
)

var sampleTranscript = []model.Message{
	model.NewUserMessage("Explain quantum computing"),
	model.NewAssistantMessage("Quantum computing uses qubits."),
	model.NewUserMessage("Thanks"),
}

func TestTextExport(t *testing.T) {
	content, err := TextExporter{}.Export(sampleTranscript)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := "USER: Explain quantum computing\n\n" +
		"ASSISTANT: Quantum computing uses qubits.\n\n" +
		"USER: Thanks"
	if string(content) != want {
		t.Errorf("text export = %q, want %q", content, want)
	}
}

func TestMarkdownExport(t *testing.T) {
	content, err := MarkdownExporter{}.Export(sampleTranscript)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	text := string(content)
	if !strings.Contains(text, "**You**:") {
		t.Error("markdown export missing user label")
	}
	if !strings.Contains(text, "**Assistant**:") {
		t.Error("markdown export missing assistant label")
	}
	if !strings.Contains(text, "Quantum computing uses qubits.") {
		t.Error("markdown export missing message content")
	}
}

func TestJSONExportRoundTrip(t *testing.T) {
	content, err := JSONExporter{}.Export(sampleTranscript)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded []model.Message
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("decoded %d messages, want 3", len(decoded))
	}
	if decoded[1].Role != model.RoleAssistant {
		t.Errorf("decoded[1].Role = %q, want assistant", decoded[1].Role)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)

	if got := Filename(TextExporter{}, now); got != "ink-bot-conversation-2025-06-01.txt" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename(MarkdownExporter{}, now); got != "ink-bot-conversation-2025-06-01.md" {
		t.Errorf("Filename = %q", got)
	}
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ToFile(sampleTranscript, TextExporter{}, dir)
	if err != nil {
		t.Fatalf("ToFile failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("export written to %q, want dir %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "USER: ") {
		t.Errorf("export content = %q", data)
	}
}

func TestToFileEmptyTranscript(t *testing.T) {
	if _, err := ToFile(nil, TextExporter{}, t.TempDir()); err == nil {
		t.Error("expected error exporting an empty transcript")
	}
}
