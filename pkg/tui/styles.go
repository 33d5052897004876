// Package tui provides the terminal presentation layer of the weburl CLI:
// styled listings, highlighted artifacts, clipboard access and the
// interactive endpoint picker.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor    = lipgloss.Color("#6c6c6c")
	TextColor   = lipgloss.Color("#e0e0e0")
	AccentColor = lipgloss.Color("#7aa2f7")
	ErrorColor  = lipgloss.Color("#f7768e")
	VerbColor   = lipgloss.Color("#9ece6a")
	BodyColor   = lipgloss.Color("#e0af68")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	VerbStyle = lipgloss.NewStyle().
			Foreground(VerbColor).
			Bold(true).
			Width(7)

	BodyVerbStyle = VerbStyle.
			Foreground(BodyColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	ActiveStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

const (
	ActiveMarker   = "* "
	InactiveMarker = "  "
	ErrorPrefix    = "error "
)
