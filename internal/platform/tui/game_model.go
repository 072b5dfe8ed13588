package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
	"github.com/vovakirdan/dino-dash/internal/save"
	"github.com/vovakirdan/dino-dash/internal/sched"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

// maxTickDelta caps how much simulated time one UI tick may advance, so
// a suspended terminal does not fast-forward the whole run on wake.
const maxTickDelta = 250 * time.Millisecond

// GameModel is the Bubble Tea model for an active run. It translates
// wall-clock tick messages into timer queue advances and key messages
// into loop operations; all game rules live in the loop.
type GameModel struct {
	loop     *game.Loop
	clock    *sched.Queue
	screen   *core.Screen
	renderer *WorldRenderer
	keys     *KeyMapper
	runtime  core.RuntimeConfig
	saves    *save.Store
	logger   *log.Logger

	// openURL handles the boss key. Nil disables it (SSH sessions have
	// no local browser).
	openURL func(string) error

	lastTick   time.Time
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps an already started or restored loop. The caller
// wires the game-over callback (run recording, snapshot clearing) before
// handing the loop over.
func NewGameModel(loop *game.Loop, clock *sched.Queue, cfg config.Config, rt core.RuntimeConfig, saves *save.Store, logger *log.Logger, openURL func(string) error) GameModel {
	return GameModel{
		loop:     loop,
		clock:    clock,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		renderer: NewWorldRenderer(cfg),
		keys:     NewKeyMapper(loop.Keybinds()),
		runtime:  rt,
		saves:    saves,
		logger:   logger,
		openURL:  openURL,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Map(msg) {
	case ActionQuit:
		m.saveCheckpoint()
		m.quitting = true
		return m, tea.Quit

	case ActionJump:
		m.loop.Jump()

	case ActionPause:
		m.loop.TogglePause()
		if m.loop.State() == game.StatePaused {
			// Pause boundaries are the autosave points.
			m.saveCheckpoint()
		}

	case ActionBoss:
		if url := m.loop.BossKey(); url != "" {
			m.saveCheckpoint()
			if m.openURL != nil {
				if err := m.openURL(url); err != nil {
					m.logger.Warn("could not open boss URL", "url", url, "error", err)
				}
			}
		}

	case ActionCheat:
		m.loop.ActivateInvincibility()

	case ActionRestart:
		if m.loop.State() == game.StateGameOver {
			m.loop.Start(m.loop.Session().PlayerName)
			m.keys.Rebind(m.loop.Keybinds())
		}

	case ActionSave:
		if m.loop.State() == game.StatePaused {
			m.saveCheckpoint()
			m.loop.Quit()
			m.backToMenu = true
		}

	case ActionBack:
		switch m.loop.State() {
		case game.StatePaused:
			m.saveCheckpoint()
			m.loop.Quit()
			m.backToMenu = true
		case game.StateGameOver:
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleTick advances the timer queue by the elapsed wall time. The queue
// fires the update, score, ramp, and invincibility callbacks in deadline
// order, so simulation cadence is independent of the render rate.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxTickDelta {
		elapsed = maxTickDelta
	}
	m.lastTick = now

	m.clock.Advance(elapsed)
	return m, tickCmd(m.runtime.TickRate)
}

// saveCheckpoint persists the current session. Best-effort: a failed save
// is logged and the game continues.
func (m GameModel) saveCheckpoint() {
	if m.saves == nil || !m.loop.Session().Running {
		return
	}
	if err := m.saves.Save(m.loop.Checkpoint()); err != nil {
		m.logger.Warn("could not save snapshot", "error", err)
	}
}

// View renders the world.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.renderer.Render(m.screen, m.loop)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WireGameOver registers the standard game-over side effects on a loop:
// the run is recorded in the database and the snapshot is reduced to a
// profile so the board survives but the run cannot be resumed.
func WireGameOver(loop *game.Loop, saves *save.Store, runs *storage.Store, logger *log.Logger) {
	loop.SetGameOverFunc(func(sum game.Summary) {
		if runs != nil {
			if _, err := runs.RecordRun(sum.PlayerName, sum.Score); err != nil {
				logger.Warn("could not record run", "error", err)
			}
		}
		if saves != nil {
			if err := saves.SaveProfile(sum.PlayerName, loop.Keybinds(), sum.Leaderboard); err != nil {
				logger.Warn("could not persist leaderboard", "error", err)
			}
		}
	})
}
