package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNewOptions_Defaults(t *testing.T) {
	if o := newOptions(); o.Value != DefaultValue {
		t.Errorf("expected default value %d, got %v", DefaultValue, o.Value)
	}
	if o := newOptions(WithValue(70)); o.Value != 70 {
		t.Errorf("expected value 70, got %v", o.Value)
	}
}

func TestModel_Update_AdjustsValue(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want float64
	}{
		{"right arrow", []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}}, 55},
		{"left arrow", []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}}, 45},
		{"vim keys", []tea.Msg{runes("l"), runes("l"), runes("h")}, 55},
		{"fine steps", []tea.Msg{tea.KeyMsg{Type: tea.KeyShiftRight}, runes("L"), runes("H")}, 51},
		{"jump to empty", []tea.Msg{runes("0")}, 0},
		{"jump to full", []tea.Msg{runes("9")}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(initialModel(Options{Value: 50}), tt.msgs...)
			if m.Value() != tt.want {
				t.Errorf("value = %v, want %v", m.Value(), tt.want)
			}
		})
	}
}

func TestModel_Update_DoesNotClamp(t *testing.T) {
	m := send(initialModel(Options{Value: 100}), runes("l"))
	if m.Value() != 105 {
		t.Errorf("expected 105, got %v", m.Value())
	}

	m = send(initialModel(Options{Value: 0}), runes("h"))
	if m.Value() != -5 {
		t.Errorf("expected -5, got %v", m.Value())
	}
}

func TestModel_Update_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := initialModel(Options{}).Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", msg.String())
		}
	}
}

func TestModel_Update_ToggleHelp(t *testing.T) {
	m := send(initialModel(Options{}), runes("?"))
	if !m.help.ShowAll {
		t.Error("expected full help after ?")
	}
	m = send(m, runes("?"))
	if m.help.ShowAll {
		t.Error("expected short help after second ?")
	}
}

func TestModel_View_ShowsEverySize(t *testing.T) {
	m := send(initialModel(Options{Value: 45}), tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()

	for _, want := range []string{"small", "medium", "large", "45%", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q\n%s", want, view)
		}
	}
}

func TestModel_View_TerminalTooSmall(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		expectSmall bool
	}{
		{"exactly minimum size", MinTerminalWidth, MinTerminalHeight, false},
		{"width too small", MinTerminalWidth - 1, MinTerminalHeight, true},
		{"height too small", MinTerminalWidth, MinTerminalHeight - 1, true},
		{"larger than minimum", 120, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(initialModel(Options{}), tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			view := m.View()

			if tt.expectSmall != strings.Contains(view, "Terminal too small") {
				t.Errorf("expectSmall=%v, view:\n%s", tt.expectSmall, view)
			}
		})
	}
}

func TestModel_barWidth(t *testing.T) {
	if got := initialModel(Options{}).barWidth(); got != defaultBarWidth {
		t.Errorf("expected default width %d before resize, got %d", defaultBarWidth, got)
	}

	m := send(initialModel(Options{}), tea.WindowSizeMsg{Width: 60, Height: 20})
	if got, want := m.barWidth(), 60-labelWidth-labelSuffix; got != want {
		t.Errorf("barWidth = %d, want %d", got, want)
	}

	m = send(m, tea.WindowSizeMsg{Width: 300, Height: 20})
	if got := m.barWidth(); got != maxBarWidth {
		t.Errorf("expected width capped at %d, got %d", maxBarWidth, got)
	}
}
