// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/inkbot-tui/internal/export"
	"github.com/jeranaias/inkbot-tui/internal/ui/styles"
)

// pending holds the user message shown in the transcript while the
// round-trip is still in flight.
type pendingTurn struct {
	active bool
	text   string
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - chromeLines
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.input.Width = m.width - 4
		m.urlInput.Width = m.width - 4
		m.rebuildRenderer()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case TurnCompleteMsg:
		m.busy = false
		m.pending = pendingTurn{}
		m.connState = m.monitor.State()
		m.refreshViewport()
		if msg.Err != nil {
			cmds = append(cmds, m.setStatus("send failed - see transcript"))
		}
		return m, tea.Batch(cmds...)

	case ProbeResultMsg:
		m.connState = msg.State
		if msg.Throttled {
			return m, m.setStatus("probe throttled, try again shortly")
		}
		return m, m.setStatus("connection: " + msg.State.String())

	case SavedMsg:
		if msg.Err != nil {
			return m, m.setStatus("save failed: " + msg.Err.Error())
		}
		cmds = append(cmds,
			m.setStatus(fmt.Sprintf("saved %q", msg.Record.Title)),
			loadSessionsCmd(m.store),
		)
		return m, tea.Batch(cmds...)

	case SessionsLoadedMsg:
		m.sidebar = msg.Records
		if m.selected >= len(m.sidebar) {
			m.selected = len(m.sidebar) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil

	case DeletedMsg:
		if msg.Err != nil {
			return m, m.setStatus("delete failed: " + msg.Err.Error())
		}
		m.refreshViewport()
		cmds = append(cmds, m.setStatus("conversation deleted"), loadSessionsCmd(m.store))
		return m, tea.Batch(cmds...)

	case ExportedMsg:
		if msg.Err != nil {
			return m, m.setStatus("export failed: " + msg.Err.Error())
		}
		return m, m.setStatus("exported to " + msg.Path)

	case ConfigReloadedMsg:
		if msg.Err != nil || msg.Config == nil {
			return m, m.setStatus("config reload failed")
		}
		m.cfg = msg.Config
		m.theme = styles.NewTheme(m.cfg.UI.Theme)
		m.ctrl.SetBaseURL(m.cfg.Backend.URL)
		m.rebuildRenderer()
		m.refreshViewport()
		cmds = append(cmds,
			m.setStatus("configuration reloaded"),
			probeCmd(m.monitor, m.ctrl.BaseURL()),
		)
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	// Forward everything else to the focused text input.
	var cmd tea.Cmd
	switch m.focus {
	case focusURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// handleKey dispatches a keypress based on the focused component.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	switch m.focus {
	case focusURL:
		return m.handleURLKey(msg)
	case focusSidebar:
		return m.handleSidebarKey(msg)
	default:
		return m.handleInputKey(msg)
	}
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.busy {
			return m, nil
		}
		m.busy = true
		m.pending = pendingTurn{active: true, text: text}
		m.input.Reset()
		m.refreshViewport()
		return m, tea.Batch(submitTurnCmd(m.ctrl, text), m.spin.Tick)

	case key.Matches(msg, m.keyMap.Save):
		return m, saveCmd(m.ctrl)

	case key.Matches(msg, m.keyMap.New):
		m.ctrl.StartNew()
		m.refreshViewport()
		return m, m.setStatus("new conversation")

	case key.Matches(msg, m.keyMap.Export):
		return m, exportCmd(m.ctrl.Messages(), export.TextExporter{}, ".")

	case key.Matches(msg, m.keyMap.Probe):
		return m, tryProbeCmd(m.monitor, m.ctrl.BaseURL())

	case key.Matches(msg, m.keyMap.Sidebar):
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.focus = focusSidebar
			m.input.Blur()
			return m, loadSessionsCmd(m.store)
		}
		m.focus = focusInput
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keyMap.EditURL):
		m.focus = focusURL
		m.input.Blur()
		m.urlInput.SetValue(m.ctrl.BaseURL())
		m.urlInput.Focus()
		return m, nil

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		if m.selected < len(m.sidebar)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		if m.selected < len(m.sidebar) {
			m.ctrl.Load(m.sidebar[m.selected])
			m.showSidebar = false
			m.focus = focusInput
			m.input.Focus()
			m.refreshViewport()
			return m, m.setStatus(fmt.Sprintf("loaded %q", m.sidebar[m.selected].Title))
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Delete):
		if m.selected < len(m.sidebar) {
			return m, deleteSessionCmd(m.ctrl, m.sidebar[m.selected].ID)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Cancel), key.Matches(msg, m.keyMap.Sidebar):
		m.showSidebar = false
		m.focus = focusInput
		m.input.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) handleURLKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		url := strings.TrimSpace(m.urlInput.Value())
		m.focus = focusInput
		m.urlInput.Blur()
		m.input.Focus()
		if url == "" || url == m.ctrl.BaseURL() {
			return m, nil
		}
		m.ctrl.SetBaseURL(url)
		m.cfg.Backend.URL = url
		return m, tea.Batch(
			m.setStatus("backend set to "+url),
			probeCmd(m.monitor, url),
		)

	case key.Matches(msg, m.keyMap.Cancel):
		m.focus = focusInput
		m.urlInput.Blur()
		m.input.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}
