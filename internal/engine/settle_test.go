package engine

import (
	"math"
	"testing"
)

const testDt = 1.0 / 60

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return eng
}

// tickUntil advances the state until cond holds or maxTicks pass.
func tickUntil(t *testing.T, eng *Engine, st State, maxTicks int, cond func(State) bool) State {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if cond(st) {
			return st
		}
		var err error
		st, err = eng.Tick(st, testDt)
		if err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if !cond(st) {
		t.Fatalf("condition not reached after %d ticks", maxTicks)
	}
	return st
}

func TestSingleTileSettlesOnFloor(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()
	st.Board.Columns[0].Tiles = []Tile{
		{ID: "t1", Value: 2, Column: 0, Y: 576},
	}

	st = tickUntil(t, eng, st, 600, func(s State) bool {
		return s.Board.FallingCount() == 0
	})

	tile := st.Board.Columns[0].Tiles[0]
	if !tile.Settled {
		t.Error("tile should be settled")
	}
	if tile.Y != 0 {
		t.Errorf("tile y = %g, want exactly 0", tile.Y)
	}
	if tile.Velocity != 0 {
		t.Errorf("settled tile velocity = %g, want 0", tile.Velocity)
	}
}

func TestTileStacksOnSettledTile(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()
	st.Board.Columns[2].Tiles = []Tile{
		{ID: "base", Value: 2, Column: 2, Y: 0, Settled: true},
		{ID: "drop", Value: 4, Column: 2, Y: 300},
	}

	st = tickUntil(t, eng, st, 600, func(s State) bool {
		return s.Board.FallingCount() == 0
	})

	_, ti, ok := st.Board.FindTile("drop")
	if !ok {
		t.Fatal("dropped tile vanished")
	}
	tile := st.Board.Columns[2].Tiles[ti]
	if tile.Y != 64 {
		t.Errorf("stacked tile y = %g, want exactly tileSize (64)", tile.Y)
	}
	if !tile.Settled {
		t.Error("stacked tile should be settled")
	}
}

// Two tiles falling in the same column must chain-stack in one run: the
// lower one becomes the landing surface for the upper one.
func TestChainStackingSameColumn(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()
	st.Board.Columns[1].Tiles = []Tile{
		{ID: "low", Value: 2, Column: 1, Y: 200},
		{ID: "high", Value: 4, Column: 1, Y: 500},
	}

	st = tickUntil(t, eng, st, 900, func(s State) bool {
		return s.Board.FallingCount() == 0
	})

	var low, high Tile
	for _, tile := range st.Board.Columns[1].Tiles {
		switch tile.ID {
		case "low":
			low = tile
		case "high":
			high = tile
		}
	}
	if low.Y != 0 {
		t.Errorf("lower tile y = %g, want 0", low.Y)
	}
	if high.Y != 64 {
		t.Errorf("upper tile y = %g, want 64", high.Y)
	}
}

func TestFallingTileNeverOverlapsStack(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()
	st.Board.Columns[0].Tiles = []Tile{
		{ID: "s1", Value: 2, Column: 0, Y: 0, Settled: true},
		{ID: "s2", Value: 4, Column: 0, Y: 64, Settled: true},
		{ID: "f1", Value: 2, Column: 0, Y: 520},
	}

	for i := 0; i < 600; i++ {
		var err error
		st, err = eng.Tick(st, testDt)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if st.Board.FallingCount() == 0 {
			break
		}
	}

	_, ti, _ := st.Board.FindTile("f1")
	got := st.Board.Columns[0].Tiles[ti].Y
	if math.Abs(got-128) > Epsilon {
		t.Errorf("tile landed at y = %g, want 128", got)
	}
}

// A large dt would overshoot the floor by many tile sizes in one step; the
// resolver must still land the tile exactly on its settle position.
func TestLargeTimeStepClampsToSettle(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()
	st.Board.Columns[3].Tiles = []Tile{
		{ID: "fast", Value: 2, Column: 3, Y: 400, Velocity: 900},
	}

	st, err := eng.Tick(st, 1.0) // One full second
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}

	tile := st.Board.Columns[3].Tiles[0]
	if !tile.Settled || tile.Y != 0 {
		t.Errorf("tile = %+v, want settled at y=0", tile)
	}
}
