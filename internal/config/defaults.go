package config

import (
	_ "embed"
)

//go:embed defaults/tilefall.yaml
var defaultTilefallYAML []byte

// DefaultTilefallConfig returns the default game configuration.
func DefaultTilefallConfig() TilefallConfig {
	return TilefallConfig{
		Board: BoardConfig{
			Width:       320,
			Height:      640,
			ColumnCount: 5,
			TileSize:    64,
		},
		Physics: PhysicsConfig{
			BaseGravity:     200,
			MaxGravity:      800,
			GravityPerLevel: 50,
		},
		Spawn: SpawnConfig{
			Interval:       2.0,
			MaxActiveTiles: 3,
			TileValues:     []int{2, 4},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			LevelUpScore: 64,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `tilefall config dump`.
func DefaultYAML() []byte {
	return defaultTilefallYAML
}
