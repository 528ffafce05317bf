package tui

import "github.com/charmbracelet/bubbles/key"

const (
	coarseStep = 5
	fineStep   = 1
)

type keyMap struct {
	Decrease     key.Binding
	Increase     key.Binding
	DecreaseFine key.Binding
	IncreaseFine key.Binding
	Empty        key.Binding
	Full         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "-5"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+5"),
		),
		DecreaseFine: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←/H", "-1"),
		),
		IncreaseFine: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→/L", "+1"),
		),
		Empty: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "empty"),
		),
		Full: key.NewBinding(
			key.WithKeys("9"),
			key.WithHelp("9", "full"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase, k.DecreaseFine, k.IncreaseFine},
		{k.Empty, k.Full, k.Help, k.Quit},
	}
}
