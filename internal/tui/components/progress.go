// Package components holds terminal renderings of library components.
package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FreedomWriter/mini-component-library/internal/components/element"
	"github.com/FreedomWriter/mini-component-library/internal/components/progressbar"
	"github.com/FreedomWriter/mini-component-library/internal/tui/styles"
)

const (
	filledChar = "█"
	emptyChar  = "░"

	pxPerRow = 8 // bar height in pixels per terminal row
	pxPerPad = 4 // padding in pixels per row of inset
)

// Progress draws a progressbar preset in the terminal, like:
//
//	████████░░░░░░░░ 50%
//
// The drawn fill is clamped to the track; the label keeps the raw value.
type Progress struct {
	Value float64
	Size  progressbar.Size
	Width int // columns of the track, padding included
}

// NewProgress creates a new Progress instance.
func NewProgress(value float64, size progressbar.Size, width int) Progress {
	return Progress{
		Value: value,
		Size:  size,
		Width: width,
	}
}

// View returns the rendered bar followed by its "<value>%" label.
func (p Progress) View() string {
	preset, err := progressbar.LookupPreset(p.Size)
	if err != nil {
		return styles.ErrorStyle.Render(err.Error())
	}

	padRows := preset.Padding / pxPerPad
	padCols := padRows * 2
	inner := p.Width - 2*padCols
	if inner <= 0 {
		return ""
	}

	filled := filledCells(p.Value, inner)
	line := styles.FillStyle.Render(strings.Repeat(filledChar, filled)) +
		styles.TrackStyle.Render(strings.Repeat(emptyChar, inner-filled))

	lines := make([]string, rowsFor(preset.Height))
	for i := range lines {
		lines[i] = line
	}

	track := styles.TrackStyle.
		Padding(padRows, padCols).
		Render(strings.Join(lines, "\n"))

	label := " " + element.FormatNumber(p.Value) + "%"
	return lipgloss.JoinHorizontal(lipgloss.Center, track, label)
}

// rowsFor converts a bar height in pixels to terminal rows, rounding to the
// nearest row and never drawing fewer than one.
func rowsFor(height int) int {
	rows := (height + pxPerRow/2) / pxPerRow
	if rows < 1 {
		rows = 1
	}
	return rows
}

func filledCells(value float64, width int) int {
	if math.IsNaN(value) || value <= 0 {
		return 0
	}
	if value >= 100 {
		return width
	}
	return int(math.Round(value * float64(width) / 100))
}
