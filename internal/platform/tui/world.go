package tui

import (
	"fmt"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
)

// WorldRenderer projects the fixed-size game world onto a terminal
// screen of arbitrary dimensions. Game logic runs entirely in world
// units; only this type knows about character cells.
type WorldRenderer struct {
	cfg config.Config
}

// NewWorldRenderer creates a renderer for the given config.
func NewWorldRenderer(cfg config.Config) *WorldRenderer {
	return &WorldRenderer{cfg: cfg}
}

// Render draws the full frame: ground, player, obstacles, HUD, and any
// state overlay.
func (r *WorldRenderer) Render(dst *core.Screen, loop *game.Loop) {
	dst.Clear()

	if dst.Width() < 40 || dst.Height() < 10 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	r.drawGround(dst)
	r.drawObstacles(dst, loop)
	r.drawPlayer(dst, loop)
	r.drawHUD(dst, loop)

	switch loop.State() {
	case game.StatePaused:
		r.drawPauseOverlay(dst, loop)
	case game.StateGameOver:
		r.drawGameOverOverlay(dst, loop)
	}
}

// toScreen converts world coordinates to screen cells.
func (r *WorldRenderer) toScreen(dst *core.Screen, wx, wy float64) (int, int) {
	x := int(wx * float64(dst.Width()) / r.cfg.World.Width)
	y := int(wy * float64(dst.Height()) / r.cfg.World.Height)
	return x, y
}

// toScreenRect converts a world rect, guaranteeing at least one cell so
// small sprites never vanish on narrow terminals.
func (r *WorldRenderer) toScreenRect(dst *core.Screen, rect core.Rect) (x, y, w, h int) {
	x, y = r.toScreen(dst, rect.X, rect.Y)
	x2, y2 := r.toScreen(dst, rect.Right(), rect.Bottom())
	w = core.Max(x2-x, 1)
	h = core.Max(y2-y, 1)
	return x, y, w, h
}

func (r *WorldRenderer) drawGround(dst *core.Screen) {
	_, gy := r.toScreen(dst, 0, r.cfg.World.GroundY)
	if gy >= dst.Height() {
		gy = dst.Height() - 1
	}
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, gy, '═', core.ColorGray)
	}
}

func (r *WorldRenderer) drawPlayer(dst *core.Screen, loop *game.Loop) {
	bounds := loop.Player().Bounds(r.cfg.Player)
	x, y, w, h := r.toScreenRect(dst, bounds)

	color := core.ColorYellow
	if loop.Session().Invincible {
		color = core.ColorBrightWhite
	}
	dst.DrawRect(x, y, w, h, '█', color)
	// Eye on the top row, facing the obstacles.
	dst.SetCell(x+w-1, y, '◉', color)
}

func (r *WorldRenderer) drawObstacles(dst *core.Screen, loop *game.Loop) {
	set := loop.Obstacles()
	if set == nil {
		return
	}
	for i, o := range set.All() {
		sprite := set.SpriteFor(o)
		x, y, w, h := r.toScreenRect(dst, set.Bounds(i))
		glyph := '▓'
		if gl := []rune(sprite.Glyph); len(gl) > 0 {
			glyph = gl[0]
		}
		dst.DrawRect(x, y, w, h, glyph, colorByName(sprite.Color))
	}
}

func (r *WorldRenderer) drawHUD(dst *core.Screen, loop *game.Loop) {
	s := loop.Session()

	dst.DrawText(2, 0, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawText(2, 1, fmt.Sprintf("Speed: %.2f", s.Speed))
	if s.Invincible {
		dst.DrawTextColored(2, 2, "* INVINCIBLE *", core.ColorBrightWhite)
	}

	name := s.PlayerName
	dst.DrawText(dst.Width()-len(name)-2, 0, name)
}

func (r *WorldRenderer) drawPauseOverlay(dst *core.Screen, loop *game.Loop) {
	lines := []string{
		"P A U S E D",
		"",
		fmt.Sprintf("%s resume · s save+menu · q save+quit", loop.Keybinds().Pause),
	}
	r.drawOverlay(dst, lines)
}

func (r *WorldRenderer) drawGameOverOverlay(dst *core.Screen, loop *game.Loop) {
	s := loop.Session()
	lines := []string{
		"G A M E   O V E R",
		"",
		fmt.Sprintf("%s scored %d", s.PlayerName, s.Score),
		"",
	}
	for i, e := range s.Leaderboard {
		lines = append(lines, fmt.Sprintf("%d. %-12s %6d", i+1, e.Name, e.Score))
	}
	lines = append(lines, "", "r restart · esc menu · q quit")
	r.drawOverlay(dst, lines)
}

// drawOverlay draws a centered bordered box with the given lines.
func (r *WorldRenderer) drawOverlay(dst *core.Screen, lines []string) {
	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 6
	boxH := len(lines) + 2
	if boxW > dst.Width() {
		boxW = dst.Width()
	}

	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+1+i, l)
	}
}
