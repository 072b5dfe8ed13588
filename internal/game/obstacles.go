package game

import (
	"math/rand"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Obstacle is one entry of the fixed-size obstacle pool. Obstacles scroll
// left and are recycled to a fresh forward position once off-screen; they
// are never destroyed, so the pool size stays constant.
type Obstacle struct {
	X      float64 // Horizontal center position
	Y      float64 // Vertical center position (ground row)
	Sprite int     // Index into the sprite table; unknown indexes render as 0
}

// ObstacleSet manages the pool: initial placement, movement, and recycling.
type ObstacleSet struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstacleConfig
	sprites   []config.SpriteConfig
}

// NewObstacleSet creates an empty pool. Call Spawn or Restore to populate it.
func NewObstacleSet(seed int64, cfg config.ObstacleConfig, sprites []config.SpriteConfig) *ObstacleSet {
	return &ObstacleSet{
		obstacles: make([]Obstacle, 0, cfg.Count),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		sprites:   sprites,
	}
}

// Spawn performs initial placement, only when the pool is empty: the first
// obstacle lands at a random position in [spawn_min, spawn_max), each
// subsequent one at the previous position plus a random gap in
// [gap_min, gap_max). After this, recycling is independent per obstacle
// and obstacles may bunch or re-order; that is intended.
func (s *ObstacleSet) Spawn() {
	if len(s.obstacles) > 0 {
		return
	}
	x := s.randRange(s.cfg.SpawnMin, s.cfg.SpawnMax)
	for i := 0; i < s.cfg.Count; i++ {
		s.obstacles = append(s.obstacles, Obstacle{
			X:      x,
			Y:      s.cfg.GroundY,
			Sprite: s.rng.Intn(s.spriteCount()),
		})
		x += s.randRange(s.cfg.GapMin, s.cfg.GapMax)
	}
}

// Restore rebuilds the pool from persisted obstacle states. Sprite indexes
// outside the table fall back to 0. An empty list triggers a fresh Spawn.
func (s *ObstacleSet) Restore(saved []Obstacle) {
	s.obstacles = s.obstacles[:0]
	for _, o := range saved {
		if o.Sprite < 0 || o.Sprite >= s.spriteCount() {
			o.Sprite = 0
		}
		if o.Y == 0 {
			o.Y = s.cfg.GroundY
		}
		s.obstacles = append(s.obstacles, o)
	}
	if len(s.obstacles) == 0 {
		s.Spawn()
	}
}

// Advance moves every obstacle left by speed and recycles any that passed
// the left edge to a random position in [recycle_min, recycle_max).
// Recycling is per-obstacle and independent.
func (s *ObstacleSet) Advance(speed float64) {
	for i := range s.obstacles {
		s.obstacles[i].X -= speed
		if s.obstacles[i].X < 0 {
			s.obstacles[i].X = s.randRange(s.cfg.RecycleMin, s.cfg.RecycleMax)
		}
	}
}

// All returns the current obstacle states in pool order.
func (s *ObstacleSet) All() []Obstacle {
	return s.obstacles
}

// Bounds returns the sprite bounding box of obstacle i.
func (s *ObstacleSet) Bounds(i int) core.Rect {
	o := s.obstacles[i]
	sp := s.SpriteFor(o)
	return core.RectAround(o.X, o.Y, sp.Width, sp.Height)
}

// SpriteFor resolves an obstacle's sprite table entry, falling back to
// entry 0 for unknown indexes.
func (s *ObstacleSet) SpriteFor(o Obstacle) config.SpriteConfig {
	if len(s.sprites) == 0 {
		// Misconfigured sprite table; use a sane stand-in.
		return config.SpriteConfig{Name: "rock", Width: 90, Height: 110, Glyph: "▓", Color: "gray"}
	}
	if o.Sprite < 0 || o.Sprite >= len(s.sprites) {
		return s.sprites[0]
	}
	return s.sprites[o.Sprite]
}

func (s *ObstacleSet) spriteCount() int {
	if len(s.sprites) == 0 {
		return 1
	}
	return len(s.sprites)
}

// randRange returns a uniform float64 in [min, max).
func (s *ObstacleSet) randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}
