package engine

import (
	"fmt"
	"math/rand"
)

// Engine owns the mutable context of one simulation run: the seeded random
// source, the tile-id counter and the spawn timer. Everything else lives in
// the State snapshots it produces. An engine instance is not safe for
// concurrent use; callers must serialize Tick and MoveTileHorizontal.
type Engine struct {
	cfg        Config
	rng        *rand.Rand
	nextID     int
	spawnTimer float64
}

// New creates an engine for the given configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Initialize builds the starting snapshot: an empty board, zero score,
// tick zero, level one. The spawn timer and id counter are reset too, so
// an engine can be reused for a fresh run.
func (e *Engine) Initialize() State {
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))
	e.nextID = 0
	e.spawnTimer = 0
	return State{
		Board: NewBoard(e.cfg.ColumnCount, e.cfg.BoardHeight, e.cfg.TileSize),
		Level: 1,
	}
}

// Tick advances the simulation by dt seconds and returns the next snapshot.
// The pipeline order is fixed: settle, merge, stabilize, validate, spawn,
// then the tick counter. A game-over state is frozen: Tick returns it
// unchanged. A non-nil error is an InvariantError and means the returned
// (input) state must not be advanced further.
func (e *Engine) Tick(s State, dt float64) (State, error) {
	if s.GameOver() {
		return s, nil
	}

	next := s.Clone()

	resolveFalling(&next.Board, e.cfg.Gravity(next.Level), dt)

	next.Score += resolveMerges(&next.Board, e.nextTileID)
	if next.Score > next.BestScore {
		next.BestScore = next.Score
	}

	stabilize(&next.Board)

	if err := validateBoard(&next.Board); err != nil {
		return s, err
	}

	e.spawnTimer += dt
	if e.spawnTimer >= e.cfg.SpawnInterval {
		e.spawnTimer = 0
		e.trySpawn(&next.Board)
	}

	next.Tick++
	next.Level = e.levelForScore(next.Score)
	return next, nil
}

// MoveTileHorizontal relocates a falling tile into the target column.
// Invalid requests (unknown tile, settled tile, out-of-range or same
// column, colliding target) return the input state unchanged.
func (e *Engine) MoveTileHorizontal(s State, tileID string, targetCol int) State {
	next := s.Clone()
	if !moveTile(&next.Board, tileID, targetCol) {
		return s
	}
	return next
}

// levelForScore maps the current score onto a difficulty level.
func (e *Engine) levelForScore(score int) int {
	if e.cfg.LevelUpScore <= 0 {
		return 1
	}
	return 1 + score/e.cfg.LevelUpScore
}

// nextTileID hands out process-unique tile identifiers.
func (e *Engine) nextTileID() string {
	e.nextID++
	return fmt.Sprintf("tile-%d", e.nextID)
}
