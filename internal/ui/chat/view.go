// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/inkbot-tui/internal/connection"
	"github.com/jeranaias/inkbot-tui/internal/model"
	"github.com/jeranaias/inkbot-tui/internal/storage"
	"github.com/jeranaias/inkbot-tui/internal/ui/styles"
)

// chromeLines is the vertical space used by header, input, status bar,
// and help footer.
const chromeLines = 4

// sidebarWidth is the column width of the saved-conversations panel.
const sidebarWidth = 34

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.showSidebar {
		main := lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.sidebarView(),
			m.viewport.View(),
		)
		b.WriteString(main)
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	if m.focus == focusURL {
		b.WriteString(m.urlInput.View())
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	b.WriteString(m.statusBarView())
	b.WriteString("\n")
	b.WriteString(m.helpView())

	return b.String()
}

// =============================================================================
// SECTIONS
// =============================================================================

func (m Model) headerView() string {
	title := m.theme.Title.Render("ink-bot")

	convTitle := "new conversation"
	if id := m.ctrl.ActiveID(); id != "" {
		convTitle = "saved conversation"
	}
	if n := len(m.ctrl.Messages()); n > 0 {
		convTitle = fmt.Sprintf("%s - %d messages", convTitle, n)
	}
	return title + "  " + m.theme.Dim.Render(convTitle)
}

func (m Model) statusBarView() string {
	indicator := connectionIndicator(m.theme, m.connState)

	left := indicator + "  " + m.theme.Dim.Render(m.ctrl.BaseURL())
	if m.status != "" {
		left += "  " + m.theme.Dim.Render("| ") + m.status
	}
	if m.busy {
		left += "  " + m.spin.View() + m.theme.Dim.Render("waiting for reply...")
	}
	return left
}

func (m Model) helpView() string {
	if m.showHelp {
		var rows []string
		for _, group := range m.keyMap.FullHelp() {
			var parts []string
			for _, binding := range group {
				parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
			}
			rows = append(rows, strings.Join(parts, "  "))
		}
		return m.theme.Help.Render(strings.Join(rows, "\n"))
	}

	var parts []string
	for _, binding := range m.keyMap.ShortHelp() {
		parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
	}
	return m.theme.Help.Render(strings.Join(parts, "  "))
}

func (m Model) sidebarView() string {
	height := m.viewport.Height - 2
	if height < 1 {
		height = 1
	}

	var lines []string
	lines = append(lines, m.theme.Title.Render("Saved"))
	if len(m.sidebar) == 0 {
		lines = append(lines, m.theme.Dim.Render("(nothing saved yet)"))
	}
	for i, rec := range m.sidebar {
		if len(lines) >= height {
			break
		}
		label := sidebarLabel(rec, sidebarWidth-4)
		if i == m.selected && m.focus == focusSidebar {
			lines = append(lines, m.theme.SidebarSelected.Render(label))
		} else {
			lines = append(lines, m.theme.SidebarItem.Render(label))
		}
	}

	return m.theme.SidebarBorder.
		Width(sidebarWidth - 2).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// renderTranscript renders the conversation, including the in-flight
// user message while a reply is pending.
func (m Model) renderTranscript() string {
	msgs := m.ctrl.Messages()

	if len(msgs) == 0 && !m.pending.active {
		return m.theme.Dim.Render("\n  Send a message to get started.\n")
	}

	var b strings.Builder
	for _, msg := range msgs {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}

	if m.pending.active {
		b.WriteString(m.renderMessage(model.NewUserMessage(m.pending.text)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMessage(msg model.Message) string {
	var label string
	switch msg.Role {
	case model.RoleUser:
		label = m.theme.UserLabel.Render("You")
	default:
		label = m.theme.AssistantLabel.Render("Assistant")
	}

	content := msg.Content
	if msg.Role == model.RoleAssistant {
		if isDiagnostic(msg) {
			content = m.theme.ErrorText.Render(content)
		} else if m.renderer != nil {
			if rendered, err := m.renderer.Render(content); err == nil {
				content = strings.TrimRight(rendered, "\n")
			}
		}
	}

	return label + "\n" + content + "\n"
}

// isDiagnostic reports whether an assistant message is a locally
// generated failure notice rather than a backend reply.
func isDiagnostic(msg model.Message) bool {
	return msg.Role == model.RoleAssistant &&
		strings.HasPrefix(msg.Content, "Connection Error:")
}

// =============================================================================
// HELPERS
// =============================================================================

// connectionIndicator renders the colored backend-state marker.
func connectionIndicator(theme *styles.Theme, state connection.State) string {
	switch state {
	case connection.StateConnected:
		return theme.Connected.Render("● connected")
	case connection.StateTesting:
		return theme.Testing.Render("◌ testing...")
	case connection.StateError:
		return theme.Offline.Render("✖ offline")
	default:
		return theme.Unknown.Render("? unknown")
	}
}

// sidebarLabel renders a record as a fixed-width sidebar row.
func sidebarLabel(rec storage.ConversationRecord, width int) string {
	if width < 4 {
		width = 4
	}
	title := rec.Title
	if runewidth.StringWidth(title) > width {
		title = runewidth.Truncate(title, width, "…")
	}
	return runewidth.FillRight(title, width)
}
