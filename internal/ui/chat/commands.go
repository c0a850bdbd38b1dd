// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// commands.go - Bubble Tea command creators for the chat interface.

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/inkbot-tui/internal/connection"
	"github.com/jeranaias/inkbot-tui/internal/export"
	"github.com/jeranaias/inkbot-tui/internal/model"
	"github.com/jeranaias/inkbot-tui/internal/session"
	"github.com/jeranaias/inkbot-tui/internal/storage"
)

// submitTurnCmd runs a full chat round-trip in the background.
func submitTurnCmd(ctrl *session.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := ctrl.SubmitTurn(context.Background(), text)
		return TurnCompleteMsg{Reply: reply, Err: err}
	}
}

// probeCmd checks backend health and reports the resulting state.
func probeCmd(monitor *connection.Monitor, baseURL string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
		defer cancel()
		return ProbeResultMsg{State: monitor.Probe(ctx, baseURL)}
	}
}

// tryProbeCmd is probeCmd behind the monitor's rate limiter, for
// user-triggered re-checks.
func tryProbeCmd(monitor *connection.Monitor, baseURL string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
		defer cancel()
		state, ran := monitor.TryProbe(ctx, baseURL)
		return ProbeResultMsg{State: state, Throttled: !ran}
	}
}

// saveCmd persists the active conversation.
func saveCmd(ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		rec, err := ctrl.Save()
		return SavedMsg{Record: rec, Err: err}
	}
}

// loadSessionsCmd fetches the saved conversations for the sidebar.
func loadSessionsCmd(store storage.Store) tea.Cmd {
	return func() tea.Msg {
		return SessionsLoadedMsg{Records: store.List()}
	}
}

// deleteSessionCmd removes a saved conversation.
func deleteSessionCmd(ctrl *session.Controller, id string) tea.Cmd {
	return func() tea.Msg {
		return DeletedMsg{ID: id, Err: ctrl.Delete(id)}
	}
}

// exportCmd writes the transcript to a file in dir.
func exportCmd(msgs []model.Message, exporter export.Exporter, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.ToFile(msgs, exporter, dir)
		return ExportedMsg{Path: path, Err: err}
	}
}

// clearStatusCmd expires the transient status notice after a delay.
// The id guards against a newer notice being cleared by an older timer.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
