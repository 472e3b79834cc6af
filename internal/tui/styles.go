// Package tui provides an interactive terminal browser for the archive.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#FF6B6B") // Red - titles
	ColorAccent  = lipgloss.Color("#ffe66d") // Yellow - words
	ColorMuted   = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess = lipgloss.Color("#a8e6cf") // Green - confirmations
	ColorText    = lipgloss.Color("#f1faee") // Light text
	ColorLabel   = lipgloss.Color("#a8dadc") // Label color
	ColorBgAlt   = lipgloss.Color("#2d3436") // Alt background
	ColorBorder  = lipgloss.Color("#3d5a80") // Border color
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	listItemStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	listItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Padding(0, 1)

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Padding(1, 4).
			Margin(1, 0).
			Align(lipgloss.Center)

	pronStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
