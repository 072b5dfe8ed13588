// Package save persists a single game snapshot as a flat JSON document,
// so a paused run survives process restarts. Decoding is lenient: every
// missing field gets its default, and a file is only considered resumable
// when both the score and the keybinds were actually present.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/game"
)

// Store reads and writes the snapshot file at a fixed path.
type Store struct {
	path string
	cfg  config.Config
}

// New creates a store for the given path. The config supplies per-field
// defaults for lenient decoding (ground level, base speed).
func New(path string, cfg config.Config) *Store {
	return &Store{path: path, cfg: cfg}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Snapshot is the decoded save state. Resumable reports whether the file
// carried both a score and keybinds; snapshots without them still yield
// their keybinds and leaderboard but must not offer a resume.
type Snapshot struct {
	PlayerName    string
	Score         int
	PlayerY       float64
	PlayerJumping bool
	PlayerVel     float64
	Speed         float64
	Keybinds      game.Keybinds
	Leaderboard   game.Leaderboard
	Obstacles     []game.Obstacle
	Resumable     bool
}

// Checkpoint converts the snapshot into the loop's restore input.
func (s Snapshot) Checkpoint() game.Checkpoint {
	return game.Checkpoint{
		PlayerName:    s.PlayerName,
		Score:         s.Score,
		PlayerY:       s.PlayerY,
		PlayerJumping: s.PlayerJumping,
		PlayerVel:     s.PlayerVel,
		Speed:         s.Speed,
		Keybinds:      s.Keybinds,
		Leaderboard:   s.Leaderboard,
		Obstacles:     s.Obstacles,
	}
}

// persisted is the on-disk document. Field names are part of the save
// format and must stay stable across versions.
type persisted struct {
	PlayerName    string          `json:"player_name"`
	Score         int             `json:"score"`
	DinoY         float64         `json:"dino_y"`
	DinoJump      bool            `json:"dino_jump"`
	DinoSpeed     float64         `json:"dino_speed"`
	ObstacleSpeed float64         `json:"obstacle_speed"`
	Keybinds      game.Keybinds   `json:"keybinds"`
	Leaderboard   []game.Entry    `json:"leaderboard"`
	Obstacles     []obstacleState `json:"obstacles"`
}

type obstacleState struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	ImageIndex int     `json:"image_index"`
}

// raw mirrors persisted with pointer fields, so decoding can tell a
// missing key apart from a zero value.
type raw struct {
	PlayerName    *string         `json:"player_name"`
	Score         *int            `json:"score"`
	DinoY         *float64        `json:"dino_y"`
	DinoJump      *bool           `json:"dino_jump"`
	DinoSpeed     *float64        `json:"dino_speed"`
	ObstacleSpeed *float64        `json:"obstacle_speed"`
	Keybinds      *game.Keybinds  `json:"keybinds"`
	Leaderboard   []game.Entry    `json:"leaderboard"`
	Obstacles     []obstacleState `json:"obstacles"`
}

// Load reads the snapshot file. A missing or malformed file is not an
// error, it simply means there is nothing to resume; Load returns nil in
// both cases. Real I/O failures are reported.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		// Corrupt save files are treated the same as absent ones.
		return nil, nil
	}

	snap := &Snapshot{
		PlayerName: "Player",
		PlayerY:    s.cfg.Physics.GroundLevel,
		Speed:      s.cfg.Speed.Base,
		Keybinds:   game.DefaultKeybinds(),
		Resumable:  r.Score != nil && r.Keybinds != nil,
	}
	if r.PlayerName != nil && *r.PlayerName != "" {
		snap.PlayerName = *r.PlayerName
	}
	if r.Score != nil {
		snap.Score = *r.Score
	}
	if r.DinoY != nil {
		snap.PlayerY = *r.DinoY
	}
	if r.DinoJump != nil {
		snap.PlayerJumping = *r.DinoJump
	}
	if r.DinoSpeed != nil {
		snap.PlayerVel = *r.DinoSpeed
	}
	if r.ObstacleSpeed != nil {
		snap.Speed = *r.ObstacleSpeed
	}
	if r.Keybinds != nil {
		snap.Keybinds = r.Keybinds.Sanitized()
	}
	if len(r.Leaderboard) > 0 {
		snap.Leaderboard = append(game.Leaderboard{}, r.Leaderboard...)
	}
	for _, o := range r.Obstacles {
		snap.Obstacles = append(snap.Obstacles, game.Obstacle{X: o.X, Y: o.Y, Sprite: o.ImageIndex})
	}
	return snap, nil
}

// Save writes the checkpoint to disk, creating the parent directory if
// needed. The write goes through a temp file and rename so a crash never
// leaves a truncated snapshot behind.
func (s *Store) Save(cp game.Checkpoint) error {
	doc := persisted{
		PlayerName:    cp.PlayerName,
		Score:         cp.Score,
		DinoY:         cp.PlayerY,
		DinoJump:      cp.PlayerJumping,
		DinoSpeed:     cp.PlayerVel,
		ObstacleSpeed: cp.Speed,
		Keybinds:      cp.Keybinds,
		Leaderboard:   cp.Leaderboard,
		Obstacles:     make([]obstacleState, 0, len(cp.Obstacles)),
	}
	if doc.Leaderboard == nil {
		doc.Leaderboard = []game.Entry{}
	}
	for _, o := range cp.Obstacles {
		doc.Obstacles = append(doc.Obstacles, obstacleState{X: o.X, Y: o.Y, ImageIndex: o.Sprite})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// SaveProfile writes a snapshot carrying only identity, keybinds, and the
// leaderboard. The written file has no score key, so it can never offer a
// resume; game over uses this to drop the run while keeping the board.
func (s *Store) SaveProfile(name string, k game.Keybinds, lb game.Leaderboard) error {
	doc := map[string]any{
		"player_name": name,
		"keybinds":    k,
		"leaderboard": lb,
	}
	if lb == nil {
		doc["leaderboard"] = []game.Entry{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit profile: %w", err)
	}
	return nil
}

// Clear removes the snapshot file. Removing a file that is already gone
// is not an error; game over clears unconditionally.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
