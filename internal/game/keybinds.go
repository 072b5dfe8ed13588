package game

import "strings"

// Default input triggers for the three rebindable actions.
const (
	DefaultJumpKey  = "space"
	DefaultPauseKey = "p"
	DefaultBossKey  = "b"
)

// Keybinds maps the three rebindable logical actions to input trigger
// identifiers. Triggers are lowercase key names as reported by the
// terminal ("space", "p", "b", ...).
type Keybinds struct {
	Jump    string `json:"jump" yaml:"jump"`
	Pause   string `json:"pause" yaml:"pause"`
	BossKey string `json:"boss_key" yaml:"boss_key"`
}

// DefaultKeybinds returns the default bindings.
func DefaultKeybinds() Keybinds {
	return Keybinds{
		Jump:    DefaultJumpKey,
		Pause:   DefaultPauseKey,
		BossKey: DefaultBossKey,
	}
}

// Sanitized normalizes the bindings: triggers are trimmed and lowercased,
// and an empty trigger falls back to that action's default rather than
// ever binding the empty string.
func (k Keybinds) Sanitized() Keybinds {
	return Keybinds{
		Jump:    sanitizeTrigger(k.Jump, DefaultJumpKey),
		Pause:   sanitizeTrigger(k.Pause, DefaultPauseKey),
		BossKey: sanitizeTrigger(k.BossKey, DefaultBossKey),
	}
}

func sanitizeTrigger(trigger, fallback string) string {
	trigger = strings.ToLower(strings.TrimSpace(trigger))
	if trigger == "" {
		return fallback
	}
	return trigger
}
