// dinodash is a terminal side-scrolling runner: jump over obstacles,
// survive the speed ramp, keep your place on the board.
//
// Usage:
//
//	dinodash play            - Play (menu, or --name to start right away)
//	dinodash scores          - Show the run history
//	dinodash keys            - Show or change keybinds
//	dinodash serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Render tick rate (default: 60)
//	--seed <value>  - RNG seed for reproducible obstacle layouts
//	--db <path>     - Run history database (default: ~/.dinodash/runs.db)
//	--save <path>   - Snapshot file (default: ~/.dinodash/save.json)
//	--config <path> - Custom game config YAML
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSavePath string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinodash",
	Short: "Dino Dash - a terminal runner",
	Long: `Dino Dash is a terminal side-scrolling runner. Jump over the rocks
and cacti, survive the speed ramp, and claim a spot in the top 5.

Available commands:
  play     - Play the game
  scores   - View the run history
  keys     - Show or change keybinds
  serve    - Start SSH server for remote play

Examples:
  dinodash play
  dinodash play --name alice
  dinodash play --resume
  dinodash scores
  dinodash serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinodash/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "~/.dinodash/save.json", "Path to snapshot file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the game config honoring --config.
func loadGameConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveSavePath expands ~ in the --save flag.
func resolveSavePath() string {
	path := flagSavePath
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot expand home directory: %v\n", err)
			os.Exit(1)
		}
		path = filepath.Join(home, path[1:])
	}
	return path
}
