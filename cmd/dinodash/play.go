package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/platform/tui"
	"github.com/vovakirdan/dino-dash/internal/save"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

var (
	flagName   string
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. Without flags this opens the menu; --name starts a
run immediately and --resume continues the saved run if one exists.

Controls (rebindable via 'dinodash keys'):
  Space      - Jump
  P          - Pause (autosaves)
  B          - Boss key: pause and open the boss URL
  R          - Restart (after game over)
  S          - Save and return to menu (while paused)
  Q/Ctrl+C   - Save and quit

Examples:
  dinodash play
  dinodash play --name alice
  dinodash play --resume
  dinodash play --config ./my-dash.yaml --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the menu)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved run")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dinodash"})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without run history - the game still works
		store = nil
	}

	saves := save.New(resolveSavePath(), gameCfg)

	runErr := tui.Run(tui.SessionOptions{
		Config:      gameCfg,
		Runtime:     rt,
		Saves:       saves,
		Runs:        store,
		Logger:      logger,
		StartName:   flagName,
		StartResume: flagResume,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
