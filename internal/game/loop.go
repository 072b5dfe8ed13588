// Package game implements the core fixed-timestep loop of the runner:
// jump physics, the recycled obstacle pool, margin-based AABB collision,
// the linear speed ramp, and the session state machine. It depends only
// on the timer queue; all rendering and input live in the platform layer.
package game

import (
	"math"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/sched"
)

// State identifies where the loop is in its lifecycle.
type State int

const (
	StateMenu State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Loop orchestrates the player, obstacle pool, and collision check each
// tick. It owns the session flags and schedules its own timers on the
// queue: a 30ms update tick, a 100ms score tick, a 5s speed ramp, and a
// one-shot invincibility expiry. Pausing cancels the update and score
// tokens; resuming issues fresh ones. The ramp token keeps firing while
// paused, only the increment is gated.
type Loop struct {
	cfg       config.Config
	clock     *sched.Queue
	seed      int64
	session   Session
	player    PlayerActor
	obstacles *ObstacleSet
	state     State

	updateTok *sched.Token
	scoreTok  *sched.Token
	rampTok   *sched.Token
	invTok    *sched.Token

	onGameOver func(Summary)
}

// NewLoop creates a loop in the Menu state. Keybinds and leaderboard may
// be seeded from persisted state before Start.
func NewLoop(cfg config.Config, clock *sched.Queue, seed int64) *Loop {
	return &Loop{
		cfg:   cfg,
		clock: clock,
		seed:  seed,
		state: StateMenu,
		session: Session{
			Keybinds: DefaultKeybinds(),
		},
	}
}

// SetGameOverFunc registers the callback invoked once per terminal
// collision, after the leaderboard has been updated.
func (l *Loop) SetGameOverFunc(fn func(Summary)) {
	l.onGameOver = fn
}

// SetKeybinds replaces the session keybinds after sanitizing them: empty
// triggers fall back to that action's default. The presentation layer is
// expected to drop its old bindings and re-read Keybinds afterwards.
func (l *Loop) SetKeybinds(k Keybinds) {
	l.session.Keybinds = k.Sanitized()
}

// Keybinds returns the current sanitized bindings.
func (l *Loop) Keybinds() Keybinds {
	return l.session.Keybinds
}

// SetLeaderboard seeds the leaderboard, typically from a persisted
// snapshot at startup.
func (l *Loop) SetLeaderboard(lb Leaderboard) {
	l.session.Leaderboard = append(Leaderboard{}, lb...)
}

// Start begins a fresh session and enters Running: default speed, zero
// score, player at rest, obstacle pool spawned, timers scheduled.
// Keybinds and leaderboard survive across sessions.
func (l *Loop) Start(playerName string) {
	if playerName == "" {
		playerName = "Player"
	}
	l.cancelTimers()

	l.session.PlayerName = playerName
	l.session.Score = 0
	l.session.Running = true
	l.session.Paused = false
	l.session.Invincible = false
	l.session.Speed = l.cfg.Speed.Base

	l.player = NewPlayerActor(l.cfg.Physics.GroundLevel)
	l.obstacles = NewObstacleSet(l.seed, l.cfg.Obstacles, l.cfg.Sprites)
	l.obstacles.Spawn()

	l.state = StateRunning
	l.scheduleUpdate()
	l.scheduleScore()
	l.scheduleRamp()
}

// Restore rebuilds a session from a checkpoint and enters Paused, so the
// player resumes deliberately. Missing obstacle state triggers a fresh
// spawn. Only the ramp timer is armed; Resume arms the rest.
func (l *Loop) Restore(cp Checkpoint) {
	l.cancelTimers()

	name := cp.PlayerName
	if name == "" {
		name = "Player"
	}
	l.session.PlayerName = name
	l.session.Score = cp.Score
	l.session.Running = true
	l.session.Paused = true
	l.session.Invincible = false
	l.session.Speed = cp.Speed
	l.session.Keybinds = cp.Keybinds.Sanitized()
	l.session.Leaderboard = append(Leaderboard{}, cp.Leaderboard...)

	l.player = PlayerActor{
		Y:        cp.PlayerY,
		Velocity: cp.PlayerVel,
		Jumping:  cp.PlayerJumping,
	}
	l.obstacles = NewObstacleSet(l.seed, l.cfg.Obstacles, l.cfg.Sprites)
	l.obstacles.Restore(cp.Obstacles)

	l.state = StatePaused
	l.scheduleRamp()
}

// Checkpoint captures the current session for persistence. Valid to call
// at any point; by convention it happens at pause boundaries.
func (l *Loop) Checkpoint() Checkpoint {
	cp := Checkpoint{
		PlayerName:    l.session.PlayerName,
		Score:         l.session.Score,
		PlayerY:       l.player.Y,
		PlayerJumping: l.player.Jumping,
		PlayerVel:     l.player.Velocity,
		Speed:         l.session.Speed,
		Keybinds:      l.session.Keybinds,
		Leaderboard:   append(Leaderboard{}, l.session.Leaderboard...),
	}
	if l.obstacles != nil {
		cp.Obstacles = append([]Obstacle{}, l.obstacles.All()...)
	}
	return cp
}

// Jump starts a jump. Ignored while airborne, paused, or not running.
func (l *Loop) Jump() {
	if !l.session.Running || l.session.Paused {
		return
	}
	l.player.Jump(l.cfg.Physics.JumpImpulse)
}

// TogglePause flips the paused flag. Pausing cancels the update and score
// timers; resuming re-arms both. Without the re-arm the loop would stall
// silently, which is why pause state is owned here and not in the UI.
func (l *Loop) TogglePause() {
	if !l.session.Running {
		return
	}
	if l.session.Paused {
		l.Resume()
	} else {
		l.Pause()
	}
}

// Pause freezes per-tick mutation. The speed-ramp timer keeps firing.
func (l *Loop) Pause() {
	if !l.session.Running || l.session.Paused {
		return
	}
	l.session.Paused = true
	l.state = StatePaused
	l.updateTok.Cancel()
	l.scoreTok.Cancel()
}

// Resume re-enters Running and re-arms the update and score timers.
func (l *Loop) Resume() {
	if !l.session.Running || !l.session.Paused {
		return
	}
	l.session.Paused = false
	l.state = StateRunning
	l.scheduleUpdate()
	l.scheduleScore()
}

// BossKey forces a pause if not already paused and returns the external
// URL the platform should open. Returns "" when no session is running.
func (l *Loop) BossKey() string {
	if !l.session.Running {
		return ""
	}
	l.Pause()
	return l.cfg.BossURL
}

// ActivateInvincibility turns collision off for the configured window
// (10s by default) and schedules the auto-expiry. No-op while active.
func (l *Loop) ActivateInvincibility() {
	if l.session.Invincible || !l.session.Running {
		return
	}
	l.session.Invincible = true
	l.invTok = l.clock.After(l.cfg.Timers.Invincibility(), l.DeactivateInvincibility)
}

// DeactivateInvincibility re-enables collision.
func (l *Loop) DeactivateInvincibility() {
	l.session.Invincible = false
}

// Quit abandons the session without recording a result, returning the
// loop to the Menu state. Used by save-and-quit.
func (l *Loop) Quit() {
	l.cancelTimers()
	l.session.Running = false
	l.session.Paused = false
	l.session.Invincible = false
	l.state = StateMenu
}

// step is the per-tick transition. Order is load-bearing: player physics,
// then obstacle movement and recycling, then collision, then the
// game-over transition.
func (l *Loop) step() {
	if !l.session.Running || l.session.Paused {
		return
	}

	l.player.stepPhysics(l.cfg.Physics.Gravity, l.cfg.Physics.GroundLevel)

	l.obstacles.Advance(l.session.Speed)

	// Collision is skipped entirely while invincible, not evaluated and
	// ignored.
	hit := false
	if !l.session.Invincible {
		playerBox := l.player.Bounds(l.cfg.Player)
		for i := range l.obstacles.All() {
			if Collides(playerBox, l.obstacles.Bounds(i), l.cfg.Player.MarginX, l.cfg.Player.MarginY, l.cfg.Obstacles.Margin) {
				hit = true
			}
		}
	}
	if hit {
		l.gameOver()
	}
}

// gameOver ends the session: running clears, timers stop, the result
// joins the leaderboard, and the registered callback fires so the
// platform can clear the saved snapshot and render the terminal state.
func (l *Loop) gameOver() {
	l.session.Running = false
	l.state = StateGameOver
	l.cancelTimers()

	l.session.Leaderboard = l.session.Leaderboard.Add(l.session.PlayerName, l.session.Score)

	if l.onGameOver != nil {
		l.onGameOver(Summary{
			PlayerName:  l.session.PlayerName,
			Score:       l.session.Score,
			Leaderboard: append(Leaderboard{}, l.session.Leaderboard...),
		})
	}
}

// scheduleUpdate arms the fixed 30ms simulation tick. The tick re-arms
// itself only while still Running and unpaused; Resume re-arms after a
// pause, game over stops the chain.
func (l *Loop) scheduleUpdate() {
	l.updateTok = l.clock.After(l.cfg.Timers.Update(), func() {
		l.step()
		if l.session.Running && !l.session.Paused {
			l.scheduleUpdate()
		}
	})
}

// scheduleScore arms the 100ms score tick.
func (l *Loop) scheduleScore() {
	l.scoreTok = l.clock.After(l.cfg.Timers.Score(), func() {
		if !l.session.Running || l.session.Paused {
			return
		}
		l.session.Score++
		l.scheduleScore()
	})
}

// scheduleRamp arms the 5s speed ramp. Unlike the other timers it keeps
// firing while paused; only the increment is gated.
func (l *Loop) scheduleRamp() {
	l.rampTok = l.clock.After(l.cfg.Timers.SpeedRamp(), func() {
		if !l.session.Paused && l.session.Speed < l.cfg.Speed.Max {
			l.session.Speed = math.Min(l.session.Speed+l.cfg.Speed.Step, l.cfg.Speed.Max)
		}
		if l.session.Running {
			l.scheduleRamp()
		}
	})
}

func (l *Loop) cancelTimers() {
	l.updateTok.Cancel()
	l.scoreTok.Cancel()
	l.rampTok.Cancel()
	l.invTok.Cancel()
}

// Session returns a copy of the session state for rendering.
func (l *Loop) Session() Session {
	return l.session
}

// Player returns a copy of the player actor for rendering.
func (l *Loop) Player() PlayerActor {
	return l.player
}

// Obstacles returns the live obstacle set, or nil before the first Start.
// Callers must treat it as read-only.
func (l *Loop) Obstacles() *ObstacleSet {
	return l.obstacles
}

// State returns the loop's lifecycle state.
func (l *Loop) State() State {
	return l.state
}
