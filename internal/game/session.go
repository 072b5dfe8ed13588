package game

// Session is the mutable per-game state owned by the Loop. The
// presentation layer only ever sees copies of it for rendering.
type Session struct {
	PlayerName  string  // Set once at session start; defaults to "Player"
	Score       int     // Increases while running and unpaused
	Running     bool    // True from start until a terminal collision
	Paused      bool    // Independent of Running; freezes per-tick mutation
	Invincible  bool    // Disables collision termination; auto-clears
	Speed       float64 // Obstacle scroll speed, world units per update tick
	Keybinds    Keybinds
	Leaderboard Leaderboard
}

// Checkpoint is the flat session state that crosses the persistence
// boundary: everything needed to restore a paused game mid-run.
type Checkpoint struct {
	PlayerName    string
	Score         int
	PlayerY       float64
	PlayerJumping bool
	PlayerVel     float64
	Speed         float64
	Keybinds      Keybinds
	Leaderboard   Leaderboard
	Obstacles     []Obstacle
}

// Summary is the terminal result handed to the presentation layer when a
// session ends.
type Summary struct {
	PlayerName  string
	Score       int
	Leaderboard Leaderboard
}
