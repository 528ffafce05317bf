// Package styles defines shared lipgloss styles for the preview TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/FreedomWriter/mini-component-library/internal/constants"
)

var (
	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(constants.Colors.Primary.Terminal).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(constants.Colors.Gray500.Terminal)

	// LabelStyle for the size name beside each bar
	LabelStyle = lipgloss.NewStyle().
			Foreground(constants.Colors.Gray300.Terminal).
			Width(8)

	// TrackStyle paints the unfilled part of a bar
	TrackStyle = lipgloss.NewStyle().
			Background(constants.Colors.TransparentGray15.Terminal).
			Foreground(constants.Colors.TransparentGray35.Terminal)

	// FillStyle paints the filled part of a bar
	FillStyle = lipgloss.NewStyle().
			Foreground(constants.Colors.Primary.Terminal)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AF5F5F"))
)
