// tilefall is a falling-tile merge puzzle played in the terminal.
//
// Usage:
//
//	tilefall play [mode]     - Play a game (classic by default)
//	tilefall menu            - Start menu to pick a mode interactively
//	tilefall serve           - Start SSH server for remote play
//	tilefall scores [mode]   - Show high scores
//	tilefall sim             - Run a headless deterministic simulation
//	tilefall config dump     - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tilefall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its modes
	_ "github.com/vovakirdan/tilefall/internal/games/tilefall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilefall",
	Short: "Tilefall - A falling-tile merge puzzle in your terminal",
	Long: `Tilefall is a terminal puzzle game where numbered tiles fall into
columns and merge when equal values stack. Steer falling tiles left and
right, stack merges into bigger tiles, and keep the columns below the
danger line.

Available commands:
  play     - Play a mode directly (classic or zen)
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless deterministic simulation
  config   - Inspect configuration

Examples:
  tilefall play
  tilefall play zen
  tilefall menu
  tilefall serve --ssh :2222
  tilefall scores
  tilefall sim --ticks 3600 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilefall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
