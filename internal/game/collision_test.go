package game

import (
	"testing"

	"github.com/vovakirdan/dino-dash/internal/core"
)

func TestCollides(t *testing.T) {
	// Player box at rest with the default geometry: center (75, 274),
	// 80x120 sprite, margins 30 horizontal and 7 vertical.
	player := core.RectAround(75, 274, 80, 120)

	tests := []struct {
		name     string
		obstacle core.Rect
		want     bool
	}{
		{
			name:     "dead center",
			obstacle: core.RectAround(75, 340, 90, 110),
			want:     true,
		},
		{
			name:     "far right",
			obstacle: core.RectAround(800, 340, 90, 110),
			want:     false,
		},
		{
			name: "sprites overlap but margins clear",
			// Sprite boxes overlap from x=75 to 115, but the shrunk boxes
			// (player right 85, obstacle left 105) stay apart.
			obstacle: core.RectAround(120, 340, 90, 110),
			want:     false,
		},
		{
			name: "inner edges exactly touching",
			// Player inner right edge is 85; obstacle inner left edge at
			// 85 means touching, and touching is not a hit.
			obstacle: core.RectAround(100, 340, 90, 110),
			want:     false,
		},
		{
			name:     "just inside the inner edge",
			obstacle: core.RectAround(99, 340, 90, 110),
			want:     true,
		},
		{
			name: "player above the obstacle",
			// Mid-jump the player clears the obstacle vertically.
			obstacle: core.RectAround(75, 500, 90, 110),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collides(player, tt.obstacle, 30, 7, 30)
			if got != tt.want {
				t.Errorf("Collides(%+v) = %v, expected %v", tt.obstacle, got, tt.want)
			}
		})
	}
}

func TestCollidesJumpClearsObstacle(t *testing.T) {
	// Near the jump apex the player center has risen far enough that the
	// shrunk boxes no longer overlap vertically.
	apex := core.RectAround(75, 274-97, 80, 120)
	obstacle := core.RectAround(75, 340, 90, 110)

	if Collides(apex, obstacle, 30, 7, 30) {
		t.Error("player at jump apex should clear the obstacle")
	}
}
