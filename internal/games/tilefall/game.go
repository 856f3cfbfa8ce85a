// Package tilefall implements the falling-tile merge puzzle as a platform
// game. The physics and merge rules live in internal/engine; this package
// adapts the engine to the registry interface, maps input to horizontal
// moves of the lowest falling tile, and renders the board.
package tilefall

import (
	"github.com/vovakirdan/tilefall/internal/config"
	"github.com/vovakirdan/tilefall/internal/core"
	"github.com/vovakirdan/tilefall/internal/engine"
	"github.com/vovakirdan/tilefall/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeZen     Mode = "zen" // fixed gravity, no level progression
)

// Game implements the falling-tile merge game.
type Game struct {
	mode Mode
	cfg  config.TilefallConfig
	eng  *engine.Engine
	st   engine.State
	dt   float64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused       bool
	tooSmall     bool
	invariantErr error
}

// Package-level variables for config
var (
	selectedConfig  *config.TilefallConfig
	seededBestScore int
)

// SetConfig overrides the YAML config for the next Reset. Used by the CLI
// to pass a loaded config with a difficulty preset applied.
func SetConfig(cfg config.TilefallConfig) {
	c := cfg
	selectedConfig = &c
}

// SetBestScore seeds the best score shown in the HUD, typically from the
// score database. Applied on the next Reset.
func SetBestScore(score int) {
	seededBestScore = score
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a new zen mode game with progression disabled.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("tilefall", func() registry.Game {
		return New()
	})
	registry.Register("tilefall_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "tilefall_zen"
	}
	return "tilefall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Tilefall (Zen)"
	}
	return "Tilefall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.invariantErr = nil

	if selectedConfig != nil {
		g.cfg = *selectedConfig
	} else {
		g.cfg, _ = config.Load("")
	}
	if g.mode == ModeZen {
		g.cfg.Difficulty.Enabled = false
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	eng, err := engine.New(g.cfg.ToEngine(cfg.Seed))
	if err != nil {
		// Bad user config; fall back to the embedded defaults.
		fallback := config.DefaultTilefallConfig()
		if g.mode == ModeZen {
			fallback.Difficulty.Enabled = false
		}
		g.cfg = fallback
		eng, _ = engine.New(fallback.ToEngine(cfg.Seed))
	}
	g.eng = eng
	g.st = g.eng.Initialize()
	g.st.BestScore = seededBestScore

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Board.ColumnCount*cellWidth + 2
	minH := g.rows()*cellHeight + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

func (g *Game) rows() int {
	if g.cfg.Board.TileSize <= 0 {
		return 0
	}
	return int(g.cfg.Board.Height / g.cfg.Board.TileSize)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.st.GameOver() || g.invariantErr != nil {
		// Restart is handled by the platform.
		return core.StepResult{State: g.State()}
	}

	// Horizontal moves steer the lowest falling tile.
	switch {
	case in.Has(core.ActionLeft):
		g.steer(-1)
	case in.Has(core.ActionRight):
		g.steer(+1)
	}

	next, err := g.eng.Tick(g.st, g.dt)
	if err != nil {
		// The simulation reached an inconsistent state; freeze rather
		// than continue from a corrupt board.
		g.invariantErr = err
		return core.StepResult{State: g.State()}
	}
	g.st = next

	return core.StepResult{State: g.State()}
}

// steer moves the lowest falling tile one column in the given direction.
// The move is rejected by the engine if the target column is blocked.
func (g *Game) steer(dir int) {
	id, col, ok := lowestFalling(g.st.Board)
	if !ok {
		return
	}
	g.st = g.eng.MoveTileHorizontal(g.st, id, col+dir)
}

// lowestFalling returns the falling tile closest to the floor.
func lowestFalling(b engine.Board) (id string, col int, ok bool) {
	bestY := -1.0
	for _, c := range b.Columns {
		for _, t := range c.Tiles {
			if t.Settled {
				continue
			}
			if bestY < 0 || t.Y < bestY {
				bestY = t.Y
				id = t.ID
				col = t.Column
			}
		}
	}
	return id, col, bestY >= 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.st.Score,
		BestScore: g.st.BestScore,
		Level:     g.st.Level,
		MaxTile:   g.st.Board.MaxValue(),
		GameOver:  g.st.GameOver() || g.invariantErr != nil,
		Paused:    g.paused || g.tooSmall,
	}
}
