// Package tui is an interactive terminal preview of the progress bar at every
// size.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FreedomWriter/mini-component-library/internal/components/progressbar"
	"github.com/FreedomWriter/mini-component-library/internal/tui/components"
	"github.com/FreedomWriter/mini-component-library/internal/tui/styles"
)

// Terminal bounds below which the preview is replaced by a notice.
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 14
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 80
	labelWidth      = 8  // styles.LabelStyle width
	labelSuffix     = 10 // room for " -100.5%" and a margin
)

// Model is the Bubble Tea model for the preview.
type Model struct {
	value  float64
	width  int
	height int

	keys keyMap
	help help.Model
}

// Run starts the preview.
func Run(opts ...Option) error {
	p := tea.NewProgram(
		initialModel(newOptions(opts...)),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func initialModel(o Options) Model {
	return Model{
		value: o.Value,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// Value returns the current value shown by every bar.
func (m Model) Value() float64 {
	return m.value
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Decrease):
			m.value -= coarseStep
		case key.Matches(msg, m.keys.Increase):
			m.value += coarseStep
		case key.Matches(msg, m.keys.DecreaseFine):
			m.value -= fineStep
		case key.Matches(msg, m.keys.IncreaseFine):
			m.value += fineStep
		case key.Matches(msg, m.keys.Empty):
			m.value = 0
		case key.Matches(msg, m.keys.Full):
			m.value = 100
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.tooSmall() {
		return m.renderTerminalTooSmall()
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("ProgressBar"))
	b.WriteString("\n")

	barWidth := m.barWidth()
	for _, size := range progressbar.Sizes() {
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			styles.LabelStyle.Render(string(size)),
			components.NewProgress(m.value, size, barWidth).View(),
		)
		b.WriteString(row)
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// tooSmall is false until the first WindowSizeMsg so the initial frame
// always renders.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < MinTerminalWidth || m.height < MinTerminalHeight
}

func (m Model) renderTerminalTooSmall() string {
	return fmt.Sprintf("Terminal too small\n\nMinimum: %dx%d\nCurrent: %dx%d",
		MinTerminalWidth, MinTerminalHeight, m.width, m.height)
}

func (m Model) barWidth() int {
	if m.width == 0 {
		return defaultBarWidth
	}
	w := m.width - labelWidth - labelSuffix
	if w > maxBarWidth {
		w = maxBarWidth
	}
	return w
}
