package game

import "github.com/vovakirdan/dino-dash/internal/core"

// Collides reports whether the player and obstacle sprite boxes overlap
// after both are shrunk inward by their collision margins. The margins
// are deliberately large relative to the sprites, so near-miss visuals
// are expected; the hit box is forgiving on purpose.
//
// Overlap is strict on both axes: boxes that merely touch do not collide.
// Margins big enough to invert a box make it collide with nothing.
func Collides(player, obstacle core.Rect, playerMarginX, playerMarginY, obstacleMargin float64) bool {
	p := player.Inset(playerMarginX, playerMarginY)
	o := obstacle.Inset(obstacleMargin, obstacleMargin)
	return p.Overlaps(o)
}
