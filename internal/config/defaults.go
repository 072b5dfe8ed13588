package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. Values mirror the
// embedded defaults/dash.yaml and serve as the final fallback when the
// embedded file cannot be parsed, and as the base that partial user
// configs are merged onto.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:   800,
			Height:  400,
			GroundY: 350,
		},
		Physics: PhysicsConfig{
			Gravity:     1.15,
			JumpImpulse: -15,
			GroundLevel: 248,
		},
		Speed: SpeedConfig{
			Base: 5,
			Step: 0.75,
			Max:  25,
		},
		Timers: TimerConfig{
			UpdateMs:        30,
			ScoreMs:         100,
			SpeedRampMs:     5000,
			InvincibilityMs: 10000,
		},
		Player: PlayerConfig{
			X:            75,
			Width:        80,
			Height:       120,
			CenterOffset: 26,
			MarginX:      30,
			MarginY:      7,
		},
		Obstacles: ObstacleConfig{
			Count:      2,
			GroundY:    340,
			SpawnMin:   750,
			SpawnMax:   850,
			GapMin:     400,
			GapMax:     800,
			RecycleMin: 800,
			RecycleMax: 1100,
			Margin:     30,
		},
		Sprites: []SpriteConfig{
			{Name: "rock", Width: 90, Height: 110, Glyph: "▓", Color: "gray"},
			{Name: "cactus", Width: 66, Height: 130, Glyph: "▒", Color: "green"},
		},
		BossURL: "https://www.google.com",
	}
}
