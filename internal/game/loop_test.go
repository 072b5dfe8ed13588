package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/sched"
)

// quietConfig returns the default config with obstacles placed far beyond
// reach, so loop behavior can be observed without a collision ending the
// session.
func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Obstacles.SpawnMin = 500000
	cfg.Obstacles.SpawnMax = 500100
	cfg.Obstacles.RecycleMin = 500000
	cfg.Obstacles.RecycleMax = 500100
	return cfg
}

// collisionCheckpoint returns a checkpoint that parks an obstacle right on
// top of the player, so the first unpaused tick collides.
func collisionCheckpoint() Checkpoint {
	return Checkpoint{
		PlayerName: "Crash",
		Score:      7,
		PlayerY:    248,
		Speed:      5,
		Keybinds:   DefaultKeybinds(),
		Obstacles:  []Obstacle{{X: 80, Y: 340, Sprite: 0}},
	}
}

func newTestLoop(cfg config.Config) (*Loop, *sched.Queue) {
	clock := sched.New()
	return NewLoop(cfg, clock, 12345), clock
}

func TestStartFreshSession(t *testing.T) {
	l, _ := newTestLoop(quietConfig())
	l.Start("Alice")

	s := l.Session()
	if s.PlayerName != "Alice" {
		t.Errorf("PlayerName = %q, expected %q", s.PlayerName, "Alice")
	}
	if !s.Running || s.Paused || s.Invincible {
		t.Errorf("fresh session flags = running=%v paused=%v invincible=%v", s.Running, s.Paused, s.Invincible)
	}
	if s.Score != 0 {
		t.Errorf("fresh session score = %d, expected 0", s.Score)
	}
	if s.Speed != 5 {
		t.Errorf("fresh session speed = %v, expected 5", s.Speed)
	}
	if l.State() != StateRunning {
		t.Errorf("State() = %v, expected Running", l.State())
	}
	if got := len(l.Obstacles().All()); got != 2 {
		t.Errorf("obstacle pool size = %d, expected 2", got)
	}
}

func TestStartDefaultsPlayerName(t *testing.T) {
	l, _ := newTestLoop(quietConfig())
	l.Start("")

	if name := l.Session().PlayerName; name != "Player" {
		t.Errorf("empty name should default to Player, got %q", name)
	}
}

func TestScoreCadence(t *testing.T) {
	// 10100ms of simulated time with a 100ms score tick gives exactly
	// 101 increments, and the obstacle pool never changes size.
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")

	clock.Advance(10100 * time.Millisecond)

	if score := l.Session().Score; score != 101 {
		t.Errorf("score after 10100ms = %d, expected 101", score)
	}
	if got := len(l.Obstacles().All()); got != 2 {
		t.Errorf("obstacle pool size after 10100ms = %d, expected 2", got)
	}
	if !l.Session().Running {
		t.Error("session should still be running with obstacles out of reach")
	}
}

func TestScoreMonotoneWhileRunning(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")

	prev := 0
	for i := 0; i < 50; i++ {
		clock.Advance(70 * time.Millisecond)
		score := l.Session().Score
		if score < prev {
			t.Fatalf("score decreased from %d to %d", prev, score)
		}
		prev = score
	}
}

func TestScoreFrozenWhilePaused(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")
	clock.Advance(500 * time.Millisecond)

	l.Pause()
	before := l.Session().Score

	clock.Advance(5 * time.Second)
	if got := l.Session().Score; got != before {
		t.Errorf("score changed while paused: %d -> %d", before, got)
	}
}

func TestResumeRestartsTickSchedule(t *testing.T) {
	// Pausing cancels the update and score timers; resuming must re-arm
	// both or the loop silently stalls.
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")
	clock.Advance(500 * time.Millisecond)

	l.Pause()
	clock.Advance(3 * time.Second)
	l.Resume()

	before := l.Session().Score
	obstacleBefore := l.Obstacles().All()[0].X
	clock.Advance(time.Second)

	if got := l.Session().Score; got != before+10 {
		t.Errorf("score after resume = %d, expected %d", got, before+10)
	}
	if got := l.Obstacles().All()[0].X; got == obstacleBefore {
		t.Error("obstacles did not move after resume")
	}
}

func TestTogglePause(t *testing.T) {
	l, _ := newTestLoop(quietConfig())
	l.Start("Alice")

	l.TogglePause()
	if !l.Session().Paused || l.State() != StatePaused {
		t.Error("TogglePause should pause a running session")
	}
	l.TogglePause()
	if l.Session().Paused || l.State() != StateRunning {
		t.Error("TogglePause should resume a paused session")
	}
}

func TestJumpArc(t *testing.T) {
	cfg := quietConfig()
	l, clock := newTestLoop(cfg)
	l.Start("Alice")

	l.Jump()
	p := l.Player()
	if !p.Jumping {
		t.Fatal("Jump should set the jumping flag")
	}
	if p.Velocity != cfg.Physics.JumpImpulse {
		t.Errorf("jump velocity = %v, expected %v", p.Velocity, cfg.Physics.JumpImpulse)
	}

	clock.Advance(30 * time.Millisecond)
	p = l.Player()
	if p.Y >= cfg.Physics.GroundLevel {
		t.Errorf("player should have risen above ground, Y = %v", p.Y)
	}

	// Let the full arc play out; the player must land exactly at rest.
	clock.Advance(3 * time.Second)
	p = l.Player()
	if p.Jumping {
		t.Error("player should have landed")
	}
	if p.Y != cfg.Physics.GroundLevel || p.Velocity != 0 {
		t.Errorf("landed state = (Y=%v, vel=%v), expected (%v, 0)", p.Y, p.Velocity, cfg.Physics.GroundLevel)
	}
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")

	l.Jump()
	clock.Advance(90 * time.Millisecond)
	velBefore := l.Player().Velocity

	l.Jump() // mid-air, must not re-apply the impulse
	if got := l.Player().Velocity; got != velBefore {
		t.Errorf("mid-air jump changed velocity: %v -> %v", velBefore, got)
	}
}

func TestJumpIgnoredWhilePaused(t *testing.T) {
	l, _ := newTestLoop(quietConfig())
	l.Start("Alice")
	l.Pause()

	l.Jump()
	if l.Player().Jumping {
		t.Error("jump should be ignored while paused")
	}
}

func TestSpeedRamp(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")

	for n := 1; n <= 5; n++ {
		clock.Advance(5 * time.Second)
		want := 5 + 0.75*float64(n)
		if got := l.Session().Speed; got != want {
			t.Errorf("speed after %d ramp intervals = %v, expected %v", n, got, want)
		}
	}
}

func TestSpeedRampCapped(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")

	// 40 intervals would give 35 uncapped; the cap holds at 25.
	clock.Advance(200 * time.Second)
	if got := l.Session().Speed; got != 25 {
		t.Errorf("speed after long ramp = %v, expected cap 25", got)
	}
}

func TestSpeedRampGatedWhilePaused(t *testing.T) {
	// The ramp timer keeps firing while paused, but the increment is
	// skipped, so speed stays put until after resume.
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")

	l.Pause()
	clock.Advance(15100 * time.Millisecond)
	if got := l.Session().Speed; got != 5 {
		t.Errorf("speed changed while paused: %v", got)
	}

	l.Resume()
	clock.Advance(5 * time.Second)
	if got := l.Session().Speed; got != 5.75 {
		t.Errorf("speed after resume = %v, expected 5.75", got)
	}
}

func TestCollisionEndsSession(t *testing.T) {
	l, clock := newTestLoop(config.Default())

	var summary *Summary
	l.SetGameOverFunc(func(s Summary) { summary = &s })

	l.Restore(collisionCheckpoint())
	l.Resume()
	clock.Advance(100 * time.Millisecond)

	if l.Session().Running {
		t.Fatal("session should have ended on collision")
	}
	if l.State() != StateGameOver {
		t.Errorf("State() = %v, expected GameOver", l.State())
	}
	if summary == nil {
		t.Fatal("game-over callback was not invoked")
	}
	if summary.PlayerName != "Crash" {
		t.Errorf("summary name = %q, expected %q", summary.PlayerName, "Crash")
	}
	if len(summary.Leaderboard) != 1 || summary.Leaderboard[0].Name != "Crash" {
		t.Errorf("leaderboard after game over = %+v", summary.Leaderboard)
	}

	// All timers stop: the score must be frozen from here on.
	frozen := l.Session().Score
	clock.Advance(5 * time.Second)
	if got := l.Session().Score; got != frozen {
		t.Errorf("score changed after game over: %d -> %d", frozen, got)
	}
}

func TestInvincibilityGatesCollision(t *testing.T) {
	l, clock := newTestLoop(config.Default())
	l.Restore(collisionCheckpoint())
	l.Resume()
	l.ActivateInvincibility()

	clock.Advance(300 * time.Millisecond)
	if !l.Session().Running {
		t.Fatal("session ended despite invincibility")
	}
}

func TestInvincibilityExpires(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")
	l.ActivateInvincibility()

	if !l.Session().Invincible {
		t.Fatal("invincibility should be active")
	}

	clock.Advance(9999 * time.Millisecond)
	if !l.Session().Invincible {
		t.Error("invincibility expired early")
	}

	clock.Advance(time.Millisecond)
	if l.Session().Invincible {
		t.Error("invincibility did not expire after its window")
	}
}

func TestInvincibilityNoRestartWhileActive(t *testing.T) {
	// Re-activating during the window must not extend it.
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")
	l.ActivateInvincibility()

	clock.Advance(8 * time.Second)
	l.ActivateInvincibility()

	clock.Advance(2 * time.Second)
	if l.Session().Invincible {
		t.Error("re-activation extended the invincibility window")
	}
}

func TestBossKeyForcesPause(t *testing.T) {
	cfg := quietConfig()
	l, _ := newTestLoop(cfg)
	l.Start("Alice")

	url := l.BossKey()
	if url != cfg.BossURL {
		t.Errorf("BossKey() = %q, expected %q", url, cfg.BossURL)
	}
	if !l.Session().Paused {
		t.Error("boss key should force pause")
	}

	// Already paused: stays paused, still returns the URL.
	if url := l.BossKey(); url != cfg.BossURL {
		t.Errorf("BossKey() while paused = %q, expected %q", url, cfg.BossURL)
	}
	if !l.Session().Paused {
		t.Error("boss key should keep the game paused")
	}
}

func TestBossKeyOutsideSession(t *testing.T) {
	l, _ := newTestLoop(quietConfig())
	if url := l.BossKey(); url != "" {
		t.Errorf("BossKey() with no session = %q, expected empty", url)
	}
}

func TestRestoreEntersPaused(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Restore(Checkpoint{
		PlayerName: "Bob",
		Score:      42,
		PlayerY:    248,
		Speed:      8,
		Keybinds:   Keybinds{Jump: "j", Pause: "p", BossKey: "b"},
	})

	s := l.Session()
	if !s.Running || !s.Paused {
		t.Errorf("restored session flags = running=%v paused=%v, expected true/true", s.Running, s.Paused)
	}
	if s.Score != 42 || s.Speed != 8 {
		t.Errorf("restored score/speed = %d/%v, expected 42/8", s.Score, s.Speed)
	}
	if s.Keybinds.Jump != "j" {
		t.Errorf("restored jump bind = %q, expected %q", s.Keybinds.Jump, "j")
	}

	// Paused: nothing moves until an explicit resume.
	clock.Advance(2 * time.Second)
	if got := l.Session().Score; got != 42 {
		t.Errorf("score advanced while restored-paused: %d", got)
	}

	l.Resume()
	clock.Advance(time.Second)
	if got := l.Session().Score; got != 52 {
		t.Errorf("score after resume = %d, expected 52", got)
	}
}

func TestRestoreWithoutObstaclesSpawnsFreshPool(t *testing.T) {
	l, _ := newTestLoop(quietConfig())
	l.Restore(Checkpoint{PlayerName: "Bob", Score: 1, PlayerY: 248, Speed: 5})

	if got := len(l.Obstacles().All()); got != 2 {
		t.Errorf("restored empty pool spawned %d obstacles, expected 2", got)
	}
}

func TestRestoreClampsUnknownSprite(t *testing.T) {
	l, _ := newTestLoop(quietConfig())
	cp := Checkpoint{
		PlayerName: "Bob",
		PlayerY:    248,
		Speed:      5,
		Obstacles:  []Obstacle{{X: 900, Y: 340, Sprite: 99}, {X: 1400, Y: 340, Sprite: -3}},
	}
	l.Restore(cp)

	for i, o := range l.Obstacles().All() {
		if o.Sprite != 0 {
			t.Errorf("obstacle %d sprite = %d, expected fallback 0", i, o.Sprite)
		}
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Start("Carol")
	clock.Advance(700 * time.Millisecond)
	l.Jump()
	clock.Advance(60 * time.Millisecond)
	l.Pause()

	cp := l.Checkpoint()

	l2, _ := newTestLoop(quietConfig())
	l2.Restore(cp)

	s1, s2 := l.Session(), l2.Session()
	if s1.Score != s2.Score || s1.Speed != s2.Speed || s1.PlayerName != s2.PlayerName {
		t.Errorf("restored session = %+v, expected %+v", s2, s1)
	}
	p1, p2 := l.Player(), l2.Player()
	if p1 != p2 {
		t.Errorf("restored player = %+v, expected %+v", p2, p1)
	}
	o1, o2 := l.Obstacles().All(), l2.Obstacles().All()
	if len(o1) != len(o2) {
		t.Fatalf("restored %d obstacles, expected %d", len(o2), len(o1))
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Errorf("obstacle %d = %+v, expected %+v", i, o2[i], o1[i])
		}
	}
}

func TestQuitReturnsToMenu(t *testing.T) {
	l, clock := newTestLoop(quietConfig())
	l.Start("Alice")
	clock.Advance(time.Second)
	l.Pause()
	l.Quit()

	if l.State() != StateMenu {
		t.Errorf("State() after Quit = %v, expected Menu", l.State())
	}
	score := l.Session().Score
	clock.Advance(5 * time.Second)
	if got := l.Session().Score; got != score {
		t.Error("timers still firing after Quit")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	l, clock := newTestLoop(config.Default())
	l.Restore(collisionCheckpoint())
	l.Resume()
	clock.Advance(100 * time.Millisecond)

	if l.State() != StateGameOver {
		t.Fatal("expected game over before restart")
	}

	l.Start("Again")
	s := l.Session()
	if !s.Running || s.Score != 0 || s.Speed != 5 {
		t.Errorf("restarted session = %+v", s)
	}
	// Leaderboard persists across sessions.
	if len(s.Leaderboard) != 1 {
		t.Errorf("leaderboard lost on restart: %+v", s.Leaderboard)
	}
}

func TestSetKeybindsSanitizes(t *testing.T) {
	l, _ := newTestLoop(quietConfig())
	l.SetKeybinds(Keybinds{Jump: "", Pause: "  Q ", BossKey: "x"})

	k := l.Keybinds()
	if k.Jump != DefaultJumpKey {
		t.Errorf("empty jump bind = %q, expected default %q", k.Jump, DefaultJumpKey)
	}
	if k.Pause != "q" {
		t.Errorf("pause bind = %q, expected normalized %q", k.Pause, "q")
	}
	if k.BossKey != "x" {
		t.Errorf("boss bind = %q, expected %q", k.BossKey, "x")
	}
}
