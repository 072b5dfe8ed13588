package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/game"
	"github.com/vovakirdan/dino-dash/internal/save"
)

var (
	flagKeyJump  string
	flagKeyPause string
	flagKeyBoss  string
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show or change keybinds",
	Long: `Show the current keybinds, or change them with flags. Changed binds
are written to the save file and picked up by the next game.

Trigger names follow terminal key names: "space", "p", "up", "enter".
An empty value resets that action to its default.

Examples:
  dinodash keys
  dinodash keys --jump w
  dinodash keys --pause o --boss escape`,
	Run: runKeys,
}

func init() {
	keysCmd.Flags().StringVar(&flagKeyJump, "jump", "", "Trigger for jump")
	keysCmd.Flags().StringVar(&flagKeyPause, "pause", "", "Trigger for pause")
	keysCmd.Flags().StringVar(&flagKeyBoss, "boss", "", "Trigger for the boss key")
}

func runKeys(cmd *cobra.Command, _ []string) {
	saves := save.New(resolveSavePath(), loadGameConfig())

	binds := game.DefaultKeybinds()
	name := "Player"
	var board game.Leaderboard

	snapshot, err := saves.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading save file: %v\n", err)
		os.Exit(1)
	}
	if snapshot != nil {
		binds = snapshot.Keybinds
		name = snapshot.PlayerName
		board = snapshot.Leaderboard
	}

	changed := false
	if cmd.Flags().Changed("jump") {
		binds.Jump = flagKeyJump
		changed = true
	}
	if cmd.Flags().Changed("pause") {
		binds.Pause = flagKeyPause
		changed = true
	}
	if cmd.Flags().Changed("boss") {
		binds.BossKey = flagKeyBoss
		changed = true
	}
	binds = binds.Sanitized()

	if changed {
		if snapshot != nil && snapshot.Resumable {
			// Keep the resumable run, just swap its binds.
			cp := snapshot.Checkpoint()
			cp.Keybinds = binds
			err = saves.Save(cp)
		} else {
			err = saves.SaveProfile(name, binds, board)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing save file: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Keybinds:")
	fmt.Printf("  jump:     %s\n", binds.Jump)
	fmt.Printf("  pause:    %s\n", binds.Pause)
	fmt.Printf("  boss key: %s\n", binds.BossKey)
}
