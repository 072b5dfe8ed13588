package game

import (
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
)

func TestPlayerJumpPhysics(t *testing.T) {
	p := NewPlayerActor(248)
	p.Jump(-15)

	if !p.Jumping || p.Velocity != -15 {
		t.Fatalf("after Jump: %+v", p)
	}

	// First step applies gravity before movement, so the initial rise is
	// impulse plus one gravity increment.
	p.stepPhysics(1.15, 248)
	if p.Velocity != -13.85 {
		t.Errorf("velocity after first step = %v, expected -13.85", p.Velocity)
	}
	if p.Y != 248-13.85 {
		t.Errorf("Y after first step = %v, expected %v", p.Y, 248-13.85)
	}
}

func TestPlayerLandsExactlyOnGround(t *testing.T) {
	p := NewPlayerActor(248)
	p.Jump(-15)

	for i := 0; i < 200 && p.Jumping; i++ {
		p.stepPhysics(1.15, 248)
	}

	if p.Jumping {
		t.Fatal("player never landed")
	}
	if p.Y != 248 || p.Velocity != 0 {
		t.Errorf("landed state = %+v, expected Y=248 vel=0", p)
	}
}

func TestPlayerGroundedIsStable(t *testing.T) {
	p := NewPlayerActor(248)
	for i := 0; i < 10; i++ {
		p.stepPhysics(1.15, 248)
	}
	if p.Y != 248 || p.Velocity != 0 || p.Jumping {
		t.Errorf("grounded player drifted: %+v", p)
	}
}

func TestPlayerJumpIgnoredAirborne(t *testing.T) {
	p := NewPlayerActor(248)
	p.Jump(-15)
	p.stepPhysics(1.15, 248)

	vel := p.Velocity
	p.Jump(-15)
	if p.Velocity != vel {
		t.Errorf("airborne jump reset velocity: %v -> %v", vel, p.Velocity)
	}
}

func TestPlayerBounds(t *testing.T) {
	cfg := config.Default().Player
	p := NewPlayerActor(248)

	b := p.Bounds(cfg)
	if b.X != 75-40 || b.Y != 274-60 {
		t.Errorf("bounds origin = (%v, %v), expected (35, 214)", b.X, b.Y)
	}
	if b.W != 80 || b.H != 120 {
		t.Errorf("bounds size = %vx%v, expected 80x120", b.W, b.H)
	}
}
