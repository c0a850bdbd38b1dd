// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/inkbot-tui/internal/config"
	"github.com/jeranaias/inkbot-tui/internal/connection"
	"github.com/jeranaias/inkbot-tui/internal/session"
	"github.com/jeranaias/inkbot-tui/internal/storage"
	"github.com/jeranaias/inkbot-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// focusArea tracks which component receives keystrokes.
type focusArea int

const (
	focusInput   focusArea = iota // Typing a chat message
	focusSidebar                  // Navigating saved conversations
	focusURL                      // Editing the backend URL
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat interface.
type Model struct {
	// Wiring
	ctrl    *session.Controller
	store   storage.Store
	monitor *connection.Monitor
	cfg     *config.Config

	// Styling
	theme    *styles.Theme
	renderer *glamour.TermRenderer

	// UI components
	viewport viewport.Model
	input    textinput.Model
	urlInput textinput.Model
	spin     spinner.Model
	keyMap   KeyMap

	// Dimensions
	width  int
	height int
	ready  bool

	// Panels
	focus       focusArea
	showSidebar bool
	showHelp    bool
	sidebar     []storage.ConversationRecord
	selected    int

	// State
	pending   pendingTurn
	busy      bool
	connState connection.State
	status    string
	statusID  int
}

// New builds the chat model. The controller, store, and monitor are
// shared with the rest of the application.
func New(ctrl *session.Controller, store storage.Store, monitor *connection.Monitor, cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "Type your message..."
	input.Prompt = "> "
	input.CharLimit = 0
	input.Focus()

	urlInput := textinput.New()
	urlInput.Prompt = "backend url: "
	urlInput.CharLimit = 0

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	return Model{
		ctrl:      ctrl,
		store:     store,
		monitor:   monitor,
		cfg:       cfg,
		theme:     styles.NewTheme(cfg.UI.Theme),
		input:     input,
		urlInput:  urlInput,
		spin:      spin,
		keyMap:    DefaultKeyMap(),
		connState: connection.StateUnknown,
	}
}

// Init probes the backend and loads the saved conversations.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		probeCmd(m.monitor, m.ctrl.BaseURL()),
		loadSessionsCmd(m.store),
	)
}

// setStatus replaces the transient status notice and arms its expiry.
func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusID++
	return clearStatusCmd(m.statusID)
}

// rebuildRenderer resizes the markdown renderer to the viewport width.
func (m *Model) rebuildRenderer() {
	if !m.cfg.UI.RenderMarkdown {
		m.renderer = nil
		return
	}

	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.renderer = nil
		return
	}
	m.renderer = renderer
}

// refreshViewport re-renders the transcript and keeps the view pinned
// to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
