package game

import (
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
)

func newTestSet(seed int64) *ObstacleSet {
	cfg := config.Default()
	return NewObstacleSet(seed, cfg.Obstacles, cfg.Sprites)
}

func TestSpawnPlacement(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := newTestSet(seed)
		s.Spawn()

		all := s.All()
		if len(all) != 2 {
			t.Fatalf("seed %d: spawned %d obstacles, expected 2", seed, len(all))
		}
		first := all[0].X
		if first < 750 || first >= 850 {
			t.Errorf("seed %d: first obstacle at %v, expected [750, 850)", seed, first)
		}
		gap := all[1].X - all[0].X
		if gap < 400 || gap >= 800 {
			t.Errorf("seed %d: gap %v, expected [400, 800)", seed, gap)
		}
		for i, o := range all {
			if o.Y != 340 {
				t.Errorf("seed %d: obstacle %d at ground %v, expected 340", seed, i, o.Y)
			}
			if o.Sprite < 0 || o.Sprite > 1 {
				t.Errorf("seed %d: obstacle %d sprite %d out of table", seed, i, o.Sprite)
			}
		}
	}
}

func TestSpawnIdempotent(t *testing.T) {
	s := newTestSet(1)
	s.Spawn()
	before := append([]Obstacle{}, s.All()...)

	s.Spawn()
	after := s.All()
	if len(after) != len(before) {
		t.Fatalf("second Spawn changed pool size: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("second Spawn moved obstacle %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestRecycleRange(t *testing.T) {
	// Drive the pool long enough that every obstacle recycles many times;
	// each recycled position must land in [800, 1100).
	s := newTestSet(7)
	s.Spawn()

	recycles := 0
	for tick := 0; tick < 20000; tick++ {
		prev := append([]Obstacle{}, s.All()...)
		s.Advance(25)
		for i, o := range s.All() {
			if o.X > prev[i].X {
				recycles++
				if o.X < 800 || o.X >= 1100 {
					t.Fatalf("tick %d: recycled to %v, expected [800, 1100)", tick, o.X)
				}
			}
		}
	}
	if recycles < 100 {
		t.Fatalf("only %d recycles observed, test is not exercising the range", recycles)
	}
}

func TestAdvanceMovesLeft(t *testing.T) {
	s := newTestSet(3)
	s.Spawn()
	before := append([]Obstacle{}, s.All()...)

	s.Advance(5)
	for i, o := range s.All() {
		if o.X != before[i].X-5 {
			t.Errorf("obstacle %d: X = %v, expected %v", i, o.X, before[i].X-5)
		}
	}
}

func TestRestoreKeepsPositions(t *testing.T) {
	s := newTestSet(3)
	saved := []Obstacle{{X: 900, Y: 340, Sprite: 1}, {X: 420, Y: 340, Sprite: 0}}
	s.Restore(saved)

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("restored %d obstacles, expected 2", len(all))
	}
	for i := range saved {
		if all[i] != saved[i] {
			t.Errorf("obstacle %d = %+v, expected %+v", i, all[i], saved[i])
		}
	}
}

func TestRestoreDefaultsGroundRow(t *testing.T) {
	s := newTestSet(3)
	s.Restore([]Obstacle{{X: 900, Y: 0, Sprite: 0}})

	if got := s.All()[0].Y; got != 340 {
		t.Errorf("restored ground row = %v, expected 340", got)
	}
}

func TestRestoreEmptyRespawns(t *testing.T) {
	s := newTestSet(3)
	s.Restore(nil)

	if got := len(s.All()); got != 2 {
		t.Errorf("empty restore left %d obstacles, expected fresh spawn of 2", got)
	}
}

func TestSpriteForFallback(t *testing.T) {
	s := newTestSet(3)

	if got := s.SpriteFor(Obstacle{Sprite: 99}); got.Name != "rock" {
		t.Errorf("out-of-range sprite resolved to %q, expected first entry", got.Name)
	}
	if got := s.SpriteFor(Obstacle{Sprite: 1}); got.Name != "cactus" {
		t.Errorf("sprite 1 resolved to %q, expected cactus", got.Name)
	}

	empty := NewObstacleSet(1, config.Default().Obstacles, nil)
	sp := empty.SpriteFor(Obstacle{})
	if sp.Width <= 0 || sp.Height <= 0 {
		t.Errorf("empty sprite table stand-in has no size: %+v", sp)
	}
}

func TestBoundsCenteredOnObstacle(t *testing.T) {
	s := newTestSet(3)
	s.Restore([]Obstacle{{X: 500, Y: 340, Sprite: 0}})

	b := s.Bounds(0)
	if b.X != 500-45 || b.Y != 340-55 {
		t.Errorf("bounds origin = (%v, %v), expected (455, 285)", b.X, b.Y)
	}
	if b.W != 90 || b.H != 110 {
		t.Errorf("bounds size = %vx%v, expected 90x110", b.W, b.H)
	}
}
