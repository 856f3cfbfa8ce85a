package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the default configuration YAML",
	Long: `Print the embedded default configuration.

Redirect the output to create a starting point for a custom config:

  tilefall config dump > ~/.tilefall/configs/tilefall.yaml`,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Load the configuration the game would use and print its values.`,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("board:      %gx%g px, %d columns, tile size %g\n",
			cfg.Board.Width, cfg.Board.Height, cfg.Board.ColumnCount, cfg.Board.TileSize)
		fmt.Printf("gravity:    base %g, max %g, per level %g\n",
			cfg.Physics.BaseGravity, cfg.Physics.MaxGravity, cfg.Physics.GravityPerLevel)
		fmt.Printf("spawn:      every %gs, max %d active, values %v\n",
			cfg.Spawn.Interval, cfg.Spawn.MaxActiveTiles, cfg.Spawn.TileValues)
		fmt.Printf("difficulty: enabled=%v, level up every %d points\n",
			cfg.Difficulty.Enabled, cfg.Difficulty.LevelUpScore)
	},
}

func init() {
	configShowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configShowCmd)
}
