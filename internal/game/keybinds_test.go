package game

import "testing"

func TestSanitized(t *testing.T) {
	tests := []struct {
		name string
		in   Keybinds
		want Keybinds
	}{
		{
			name: "all empty fall back to defaults",
			in:   Keybinds{},
			want: DefaultKeybinds(),
		},
		{
			name: "whitespace only is empty",
			in:   Keybinds{Jump: "  ", Pause: "\t", BossKey: " "},
			want: DefaultKeybinds(),
		},
		{
			name: "custom binds kept and normalized",
			in:   Keybinds{Jump: " W ", Pause: "Q", BossKey: "escape"},
			want: Keybinds{Jump: "w", Pause: "q", BossKey: "escape"},
		},
		{
			name: "partial override keeps other defaults",
			in:   Keybinds{Jump: "up"},
			want: Keybinds{Jump: "up", Pause: DefaultPauseKey, BossKey: DefaultBossKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Sanitized(); got != tt.want {
				t.Errorf("Sanitized() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultKeybinds(t *testing.T) {
	k := DefaultKeybinds()
	if k.Jump != "space" || k.Pause != "p" || k.BossKey != "b" {
		t.Errorf("DefaultKeybinds() = %+v", k)
	}
}
