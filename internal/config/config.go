// Package config provides YAML-based game configuration loading and
// difficulty management for the tilefall platform.
package config

import "github.com/vovakirdan/tilefall/internal/engine"

// TilefallConfig contains all configuration for the falling-tile game.
type TilefallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield geometry in pixels.
type BoardConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	ColumnCount int     `yaml:"column_count"`
	TileSize    float64 `yaml:"tile_size"`
}

// PhysicsConfig defines gravity parameters.
type PhysicsConfig struct {
	BaseGravity     float64 `yaml:"base_gravity"`
	MaxGravity      float64 `yaml:"max_gravity"`
	GravityPerLevel float64 `yaml:"gravity_per_level"`
}

// SpawnConfig defines tile spawning parameters.
type SpawnConfig struct {
	Interval       float64 `yaml:"interval"` // seconds between spawn attempts
	MaxActiveTiles int     `yaml:"max_active_tiles"`
	TileValues     []int   `yaml:"tile_values"`
}

// DifficultyConfig defines the level progression system.
type DifficultyConfig struct {
	Enabled      bool `yaml:"enabled"`
	LevelUpScore int  `yaml:"level_up_score"` // score per level, 0 disables
}

// ToEngine converts the YAML configuration into an engine.Config.
func (c TilefallConfig) ToEngine(seed int64) engine.Config {
	levelUp := c.Difficulty.LevelUpScore
	if !c.Difficulty.Enabled {
		levelUp = 0
	}
	return engine.Config{
		BoardWidth:      c.Board.Width,
		BoardHeight:     c.Board.Height,
		ColumnCount:     c.Board.ColumnCount,
		TileSize:        c.Board.TileSize,
		BaseGravity:     c.Physics.BaseGravity,
		MaxGravity:      c.Physics.MaxGravity,
		GravityPerLevel: c.Physics.GravityPerLevel,
		SpawnInterval:   c.Spawn.Interval,
		MaxActiveTiles:  c.Spawn.MaxActiveTiles,
		TileValues:      append([]int(nil), c.Spawn.TileValues...),
		LevelUpScore:    levelUp,
		Seed:            seed,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// LevelUpScoreForPreset returns the level_up_score for a difficulty preset.
// Smaller thresholds mean gravity ramps faster.
func LevelUpScoreForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 128
	case DifficultyNormal:
		return 64
	case DifficultyHard:
		return 32
	default:
		return 64
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *TilefallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.LevelUpScore = LevelUpScoreForPreset(preset)
}
