// Package engine implements the deterministic tilefall simulation: tile
// spawning, gravity-driven falling, settle resolution, merging, stack
// stabilization and game-over detection. This package is UI-agnostic and
// deterministic; the platform drives it through Initialize, Tick and
// MoveTileHorizontal.
package engine

import "fmt"

// Epsilon is the tolerance used to treat near-equal float positions as
// exactly adjacent or equal (landing alignment, merge adjacency).
const Epsilon = 0.01

// Config holds the immutable tunables of one engine instance.
// All dimensional fields are in pixels; velocities in pixels per second.
type Config struct {
	BoardWidth  float64 // Total board width
	BoardHeight float64 // Total board height
	ColumnCount int     // Number of columns
	TileSize    float64 // Edge length of one square tile

	BaseGravity     float64 // Downward acceleration at level 1
	MaxGravity      float64 // Upper bound of the gravity curve
	GravityPerLevel float64 // Acceleration added per difficulty level

	SpawnInterval  float64 // Seconds between spawn attempts
	MaxActiveTiles int     // Cap on simultaneously falling tiles
	TileValues     []int   // Value pool for spawned tiles

	// LevelUpScore is the score needed per difficulty level.
	// Zero disables progression (level stays at 1).
	LevelUpScore int

	// Seed for the engine's random source. Zero means the caller wants a
	// time-based seed; the platform resolves that before calling New.
	Seed int64
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return fmt.Errorf("engine: board dimensions must be positive, got %gx%g", c.BoardWidth, c.BoardHeight)
	}
	if c.ColumnCount <= 0 {
		return fmt.Errorf("engine: column count must be positive, got %d", c.ColumnCount)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("engine: tile size must be positive, got %g", c.TileSize)
	}
	if c.BoardHeight < 3*c.TileSize {
		return fmt.Errorf("engine: board height %g leaves no room above the danger line", c.BoardHeight)
	}
	if c.BaseGravity <= 0 {
		return fmt.Errorf("engine: base gravity must be positive, got %g", c.BaseGravity)
	}
	if c.MaxGravity < c.BaseGravity {
		return fmt.Errorf("engine: max gravity %g below base gravity %g", c.MaxGravity, c.BaseGravity)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("engine: spawn interval must be positive, got %g", c.SpawnInterval)
	}
	if c.MaxActiveTiles <= 0 {
		return fmt.Errorf("engine: max active tiles must be positive, got %d", c.MaxActiveTiles)
	}
	if len(c.TileValues) == 0 {
		return fmt.Errorf("engine: tile value pool is empty")
	}
	for _, v := range c.TileValues {
		if v <= 0 {
			return fmt.Errorf("engine: tile values must be positive, got %d", v)
		}
	}
	if c.LevelUpScore < 0 {
		return fmt.Errorf("engine: level-up score must not be negative, got %d", c.LevelUpScore)
	}
	return nil
}

// Gravity returns the downward acceleration for the given difficulty level,
// clamped into [BaseGravity, MaxGravity].
func (c Config) Gravity(level int) float64 {
	if level < 1 {
		level = 1
	}
	g := c.BaseGravity + float64(level-1)*c.GravityPerLevel
	if g < c.BaseGravity {
		return c.BaseGravity
	}
	if g > c.MaxGravity {
		return c.MaxGravity
	}
	return g
}

// Rows returns how many whole tiles fit in the board height.
func (c Config) Rows() int {
	return int(c.BoardHeight / c.TileSize)
}
