package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/game"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeyMapperDefaults(t *testing.T) {
	km := NewKeyMapper(game.DefaultKeybinds())

	tests := []struct {
		key  string
		want Action
	}{
		{" ", ActionJump},
		{"p", ActionPause},
		{"b", ActionBoss},
		{"c", ActionCheat},
		{"r", ActionRestart},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"esc", ActionBack},
		{"s", ActionSave},
		{"x", ActionNone},
	}
	for _, tt := range tests {
		if got := km.Map(keyMsg(tt.key)); got != tt.want {
			t.Errorf("Map(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyMapperRebound(t *testing.T) {
	km := NewKeyMapper(game.Keybinds{Jump: "w", Pause: "o", BossKey: "g"})

	if got := km.Map(keyMsg("w")); got != ActionJump {
		t.Errorf("rebound jump = %v", got)
	}
	if got := km.Map(keyMsg(" ")); got != ActionNone {
		t.Errorf("space should be unbound after rebind, got %v", got)
	}
	if got := km.Map(keyMsg("o")); got != ActionPause {
		t.Errorf("rebound pause = %v", got)
	}
	if got := km.Map(keyMsg("g")); got != ActionBoss {
		t.Errorf("rebound boss = %v", got)
	}
}

func TestKeyMapperRebindablesWinOverFixed(t *testing.T) {
	// Binding pause to "r" must steal the key from restart.
	km := NewKeyMapper(game.Keybinds{Jump: "space", Pause: "r", BossKey: "b"})

	if got := km.Map(keyMsg("r")); got != ActionPause {
		t.Errorf("Map(r) = %v, expected ActionPause", got)
	}
}

func TestKeyMapperEmptyBindsFallBack(t *testing.T) {
	km := NewKeyMapper(game.Keybinds{})

	if got := km.Map(keyMsg(" ")); got != ActionJump {
		t.Errorf("empty binds should default jump to space, got %v", got)
	}
}
