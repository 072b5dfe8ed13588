// Package config provides YAML-based tuning for the game: world geometry,
// physics constants, timer intervals, and the obstacle sprite table.
package config

import "time"

// Config contains every tunable the simulation and renderer read.
type Config struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Speed     SpeedConfig    `yaml:"speed"`
	Timers    TimerConfig    `yaml:"timers"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Sprites   []SpriteConfig `yaml:"sprites"`
	BossURL   string         `yaml:"boss_url"`
}

// WorldConfig defines the fixed world canvas the game simulates in.
// Positions are world units regardless of terminal size.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Top of the ground strip
}

// PhysicsConfig defines the jump arc.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity each update tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Initial velocity on jump (negative = up)
	GroundLevel float64 `yaml:"ground_level"` // Player rest position
}

// SpeedConfig defines the obstacle speed ramp.
type SpeedConfig struct {
	Base float64 `yaml:"base"` // Starting speed, world units per update tick
	Step float64 `yaml:"step"` // Added every ramp interval
	Max  float64 `yaml:"max"`  // Hard cap, never exceeded
}

// TimerConfig defines the loop's periodic intervals in milliseconds.
type TimerConfig struct {
	UpdateMs        int `yaml:"update_ms"`
	ScoreMs         int `yaml:"score_ms"`
	SpeedRampMs     int `yaml:"speed_ramp_ms"`
	InvincibilityMs int `yaml:"invincibility_ms"`
}

// Update returns the fixed simulation timestep.
func (t TimerConfig) Update() time.Duration {
	return time.Duration(t.UpdateMs) * time.Millisecond
}

// Score returns the score increment interval.
func (t TimerConfig) Score() time.Duration {
	return time.Duration(t.ScoreMs) * time.Millisecond
}

// SpeedRamp returns the speed increase interval.
func (t TimerConfig) SpeedRamp() time.Duration {
	return time.Duration(t.SpeedRampMs) * time.Millisecond
}

// Invincibility returns how long the invincibility cheat lasts.
func (t TimerConfig) Invincibility() time.Duration {
	return time.Duration(t.InvincibilityMs) * time.Millisecond
}

// PlayerConfig defines the player sprite and its collision margins.
type PlayerConfig struct {
	X            float64 `yaml:"x"`             // Fixed horizontal position
	Width        float64 `yaml:"width"`         // Sprite bounding box width
	Height       float64 `yaml:"height"`        // Sprite bounding box height
	CenterOffset float64 `yaml:"center_offset"` // Sprite center = ground_level pos + offset
	MarginX      float64 `yaml:"margin_x"`      // Inward collision margin, each horizontal side
	MarginY      float64 `yaml:"margin_y"`      // Inward collision margin, each vertical side
}

// ObstacleConfig defines the obstacle pool and its spawn/recycle ranges.
type ObstacleConfig struct {
	Count      int     `yaml:"count"`       // Pool size, obstacles are recycled not destroyed
	GroundY    float64 `yaml:"ground_y"`    // Vertical center obstacles sit at
	SpawnMin   float64 `yaml:"spawn_min"`   // Initial placement of the first obstacle
	SpawnMax   float64 `yaml:"spawn_max"`
	GapMin     float64 `yaml:"gap_min"`     // Offset range for subsequent initial obstacles
	GapMax     float64 `yaml:"gap_max"`
	RecycleMin float64 `yaml:"recycle_min"` // Re-entry range once scrolled off-screen
	RecycleMax float64 `yaml:"recycle_max"`
	Margin     float64 `yaml:"margin"`      // Inward collision margin, all four sides
}

// SpriteConfig describes one entry of the fixed obstacle sprite table.
// Obstacles reference sprites by index; an unknown index falls back to 0.
type SpriteConfig struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"` // Single rune used by the terminal renderer
	Color  string  `yaml:"color"`
}
