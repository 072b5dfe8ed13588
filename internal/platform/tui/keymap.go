package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/game"
)

// Action is a logical in-game action derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionJump
	ActionPause
	ActionBoss
	ActionCheat
	ActionRestart
	ActionBack
	ActionSave
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions using the
// session's rebindable triggers. This centralizes key bindings and makes
// them testable.
type KeyMapper struct {
	binds game.Keybinds
}

// NewKeyMapper creates a key mapper for the given bindings. The bindings
// are sanitized, so an empty trigger can never shadow a fixed key.
func NewKeyMapper(binds game.Keybinds) *KeyMapper {
	return &KeyMapper{binds: binds.Sanitized()}
}

// Rebind replaces the mapper's bindings.
func (km *KeyMapper) Rebind(binds game.Keybinds) {
	km.binds = binds.Sanitized()
}

// Map translates a key message to an action. Rebindable triggers are
// checked first so a player can move pause off "p" and reuse the key;
// the fixed keys (quit, restart, cheat) are not rebindable.
func (km *KeyMapper) Map(msg tea.KeyMsg) Action {
	key := normalizeKey(msg.String())

	switch key {
	case "ctrl+c":
		return ActionQuit
	}

	switch key {
	case km.binds.Jump:
		return ActionJump
	case km.binds.Pause:
		return ActionPause
	case km.binds.BossKey:
		return ActionBoss
	}

	switch key {
	case "q":
		return ActionQuit
	case "r":
		return ActionRestart
	case "c":
		return ActionCheat
	case "s":
		return ActionSave
	case "esc":
		return ActionBack
	}

	return ActionNone
}

// normalizeKey converts Bubble Tea key strings into the trigger names
// stored in keybinds. The only divergence is the space bar, which Bubble
// Tea reports as a literal space.
func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
