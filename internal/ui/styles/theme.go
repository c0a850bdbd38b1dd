// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the color themes and lipgloss styles shared
// by the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME
// =============================================================================

// Theme bundles the lipgloss styles used across the chat interface.
type Theme struct {
	Name string

	// Chrome
	Title     lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Dim       lipgloss.Style

	// Transcript
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	ErrorText      lipgloss.Style

	// Connection indicator
	Connected lipgloss.Style
	Testing   lipgloss.Style
	Offline   lipgloss.Style
	Unknown   lipgloss.Style

	// Sidebar
	SidebarBorder   lipgloss.Style
	SidebarItem     lipgloss.Style
	SidebarSelected lipgloss.Style

	// Input
	Prompt lipgloss.Style
}

// NewTheme builds the theme for the given name: "dark", "light", or
// "auto" (detects the terminal background).
func NewTheme(name string) *Theme {
	dark := true
	switch name {
	case "light":
		dark = false
	case "dark":
		dark = true
	default:
		name = "auto"
		dark = termenv.HasDarkBackground()
	}

	text := lipgloss.Color("252")
	dim := lipgloss.Color("241")
	if !dark {
		text = lipgloss.Color("235")
		dim = lipgloss.Color("245")
	}

	return &Theme{
		Name: name,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		StatusBar: lipgloss.NewStyle().
			Foreground(text).
			Background(lipgloss.Color("236")),
		Help: lipgloss.NewStyle().
			Foreground(dim),
		Dim: lipgloss.NewStyle().
			Foreground(dim),

		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")), // Green
		AssistantLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")), // Cyan
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")), // Red

		Connected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Testing: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")), // Yellow
		Offline: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Unknown: lipgloss.NewStyle().
			Foreground(dim),

		SidebarBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim),
		SidebarItem: lipgloss.NewStyle().
			Foreground(text),
		SidebarSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("39")),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
	}
}
