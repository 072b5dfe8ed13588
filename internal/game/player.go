package game

import (
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// PlayerActor is the single player-controlled entity. Its horizontal
// position is fixed; only vertical motion is simulated.
//
// Invariant: Jumping == false implies Y == ground level and Velocity == 0.
type PlayerActor struct {
	Y        float64 // Vertical position; ground rest value from config (248)
	Velocity float64 // Signed vertical velocity, negative = up
	Jumping  bool
}

// NewPlayerActor returns a player at rest on the ground.
func NewPlayerActor(groundLevel float64) PlayerActor {
	return PlayerActor{Y: groundLevel}
}

// Jump starts a jump with the given impulse. No-op while airborne.
func (p *PlayerActor) Jump(impulse float64) {
	if p.Jumping {
		return
	}
	p.Jumping = true
	p.Velocity = impulse
}

// stepPhysics advances one fixed timestep of the jump arc: gravity is
// applied to velocity, velocity to position, and landing clamps back to
// the ground. Grounded players do not move.
func (p *PlayerActor) stepPhysics(gravity, groundLevel float64) {
	if !p.Jumping {
		return
	}
	p.Velocity += gravity
	p.Y += p.Velocity
	if p.Y >= groundLevel {
		p.Y = groundLevel
		p.Velocity = 0
		p.Jumping = false
	}
}

// Bounds returns the player's sprite bounding box in world coordinates.
// The sprite is anchored by its center, offset from the physics position.
func (p PlayerActor) Bounds(pc config.PlayerConfig) core.Rect {
	return core.RectAround(pc.X, p.Y+pc.CenterOffset, pc.Width, pc.Height)
}
