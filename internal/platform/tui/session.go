package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/pkg/browser"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
	"github.com/vovakirdan/dino-dash/internal/save"
	"github.com/vovakirdan/dino-dash/internal/sched"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenSettings
	screenScores
)

// SessionModel manages the full flow: menu -> game -> menu, with the
// settings and run history screens as side trips. It is the top-level
// model for both local play and SSH sessions.
type SessionModel struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	saves   *save.Store
	runs    *storage.Store
	logger  *log.Logger
	openURL func(string) error

	screen    sessionScreen
	menu      MenuModel
	settings  SessionSettings
	loop      *game.Loop
	gameModel *GameModel
	scores    ScoreboardModel

	keybinds    game.Keybinds
	leaderboard game.Leaderboard
	playerName  string
	quitting    bool
}

// SessionSettings is a small wrapper so the zero value is usable.
type SessionSettings struct {
	model  SettingsModel
	active bool
}

// SessionOptions configures a new session.
type SessionOptions struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Saves   *save.Store
	Runs    *storage.Store
	Logger  *log.Logger

	// OpenURL handles the boss key. Nil disables opening (SSH).
	OpenURL func(string) error

	// StartName skips the menu and starts a run immediately.
	StartName string
	// StartResume skips the menu and resumes the saved run if one
	// exists; falls back to the menu otherwise.
	StartResume bool
}

// NewSessionModel creates a session. Keybinds and the leaderboard are
// seeded from the snapshot file when present.
func NewSessionModel(opts SessionOptions) SessionModel {
	m := SessionModel{
		cfg:      opts.Config,
		runtime:  opts.Runtime,
		saves:    opts.Saves,
		runs:     opts.Runs,
		logger:   opts.Logger,
		openURL:  opts.OpenURL,
		keybinds: game.DefaultKeybinds(),
	}
	if m.runtime.Seed == 0 {
		m.runtime.Seed = time.Now().UnixNano()
	}

	snapshot := m.loadSnapshot()
	if snapshot != nil {
		m.keybinds = snapshot.Keybinds
		m.leaderboard = snapshot.Leaderboard
		m.playerName = snapshot.PlayerName
	}
	m.menu = NewMenuModel(snapshot, m.runtime.ScreenW, m.runtime.ScreenH)

	switch {
	case opts.StartResume && snapshot != nil && snapshot.Resumable:
		cp := snapshot.Checkpoint()
		m.startGame(cp.PlayerName, &cp)
	case opts.StartName != "":
		m.startGame(opts.StartName, nil)
	}

	return m
}

// loadSnapshot reads the save file, logging and ignoring failures.
func (m *SessionModel) loadSnapshot() *save.Snapshot {
	if m.saves == nil {
		return nil
	}
	snapshot, err := m.saves.Load()
	if err != nil {
		m.logger.Warn("could not load snapshot", "error", err)
		return nil
	}
	return snapshot
}

// startGame builds a fresh loop and game model. A nil checkpoint starts
// a new run; otherwise the checkpoint is restored (entering paused).
func (m *SessionModel) startGame(name string, cp *game.Checkpoint) {
	clock := sched.New()
	loop := game.NewLoop(m.cfg, clock, m.runtime.Seed)
	WireGameOver(loop, m.saves, m.runs, m.logger)

	if cp != nil {
		m.loop = loop
		loop.Restore(*cp)
	} else {
		loop.SetKeybinds(m.keybinds)
		loop.SetLeaderboard(m.leaderboard)
		m.loop = loop
		loop.Start(name)
	}
	m.playerName = loop.Session().PlayerName
	m.keybinds = loop.Keybinds()

	// Each run gets its own seed so restarts do not replay the same
	// obstacle sequence.
	m.runtime.Seed++

	gm := NewGameModel(loop, clock, m.cfg, m.runtime, m.saves, m.logger, m.openURL)
	m.gameModel = &gm
	m.screen = screenGame
}

// Init initializes whichever screen the session starts on.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame && m.gameModel != nil {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceNewGame:
		name := m.menu.PlayerName()
		if name == "" {
			name = m.playerName
		}
		m.startGame(name, nil)
		return m, m.gameModel.Init()

	case ChoiceResume:
		snapshot := m.loadSnapshot()
		if snapshot == nil || !snapshot.Resumable {
			// Save vanished between menu build and selection.
			m.menu = NewMenuModel(snapshot, m.runtime.ScreenW, m.runtime.ScreenH)
			return m, m.menu.Init()
		}
		cp := snapshot.Checkpoint()
		m.startGame(cp.PlayerName, &cp)
		return m, m.gameModel.Init()

	case ChoiceSettings:
		m.settings = SessionSettings{
			model:  NewSettingsModel(m.keybinds, m.runtime.ScreenW, m.runtime.ScreenH),
			active: true,
		}
		m.screen = screenSettings
		return m, m.settings.model.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.runs, m.runtime.ScreenW, m.runtime.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		// Pick up the board and binds the run may have changed.
		m.leaderboard = m.loop.Session().Leaderboard
		m.keybinds = m.loop.Keybinds()
		m.gameModel = nil
		m.loop = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.loadSnapshot(), m.runtime.ScreenW, m.runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.model.Update(msg)
	if settings, ok := newModel.(SettingsModel); ok {
		m.settings.model = settings
	}

	if m.settings.model.done {
		if result := m.settings.model.Result(); result != nil {
			m.keybinds = *result
			if m.saves != nil {
				if err := m.saves.SaveProfile(m.playerName, m.keybinds, m.leaderboard); err != nil {
					m.logger.Warn("could not persist keybinds", "error", err)
				}
			}
		}
		m.screen = screenMenu
		m.menu = NewMenuModel(m.loadSnapshot(), m.runtime.ScreenW, m.runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.done {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.loadSnapshot(), m.runtime.ScreenW, m.runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenSettings:
		return m.settings.model.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Run starts a local Bubble Tea program for the session. The boss key
// opens the external URL in the local browser unless overridden.
func Run(opts SessionOptions) error {
	if opts.OpenURL == nil {
		opts.OpenURL = browser.OpenURL
	}

	model := NewSessionModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
