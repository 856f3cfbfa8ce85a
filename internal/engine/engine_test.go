package engine

import "testing"

func TestInitializeEmptyState(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()

	if st.Board.TileCount() != 0 {
		t.Error("initial board should be empty")
	}
	if st.Score != 0 || st.Tick != 0 {
		t.Errorf("initial score/tick = %d/%d, want 0/0", st.Score, st.Tick)
	}
	if st.Level != 1 {
		t.Errorf("initial level = %d, want 1", st.Level)
	}
	if len(st.Board.Columns) != 5 {
		t.Errorf("column count = %d, want 5", len(st.Board.Columns))
	}
	if st.GameOver() {
		t.Error("empty board must not be game over")
	}
}

func TestTickCountStrictlyIncreases(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()

	for i := 1; i <= 10; i++ {
		var err error
		st, err = eng.Tick(st, testDt)
		if err != nil {
			t.Fatalf("Tick: %v", err)
		}
		if st.Tick != uint64(i) {
			t.Fatalf("tick count = %d after %d ticks", st.Tick, i)
		}
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	eng, err := New(spawnConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := eng.Initialize()
	st.Board.Columns[0].Tiles = []Tile{
		{ID: "f", Value: 2, Column: 0, Y: 400},
	}
	before := st.Fingerprint()

	if _, err := eng.Tick(st, testDt); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if st.Fingerprint() != before {
		t.Error("Tick mutated its input snapshot")
	}
}

func TestGameOverStateIsFrozen(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()

	// 640/64 = 10 rows; 9 settled tiles put the top one at y=512, on the
	// danger line.
	tiles := make([]Tile, 0, 9)
	for k := 0; k < 9; k++ {
		tiles = append(tiles, Tile{
			ID: "s" + string(rune('a'+k)), Value: 2 << (k % 3),
			Column: 0, Y: float64(k) * 64, Settled: true,
		})
	}
	st.Board.Columns[0].Tiles = tiles

	if !st.GameOver() {
		t.Fatal("stack reaching boardHeight-2*tileSize must be game over")
	}

	got, err := eng.Tick(st, testDt)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !got.Equal(st) {
		t.Error("Tick on a game-over state must return it unchanged")
	}
	if got.Tick != st.Tick {
		t.Error("frozen state must not advance its tick count")
	}
}

func TestEightTilesIsNotGameOver(t *testing.T) {
	eng := newTestEngine(t)
	st := eng.Initialize()
	tiles := make([]Tile, 0, 8)
	for k := 0; k < 8; k++ {
		tiles = append(tiles, Tile{
			ID: "s" + string(rune('a'+k)), Value: 2,
			Column: 1, Y: float64(k) * 64, Settled: true,
		})
	}
	st.Board.Columns[1].Tiles = tiles

	if st.GameOver() {
		t.Error("a stack one below the danger line is still playable")
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() []uint64 {
		cfg := spawnConfig()
		eng, err := New(cfg)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		st := eng.Initialize()
		prints := make([]uint64, 0, 600)
		for i := 0; i < 600; i++ {
			st, err = eng.Tick(st, testDt)
			if err != nil {
				t.Fatalf("tick %d: %v", i, err)
			}
			prints = append(prints, st.Fingerprint())
		}
		return prints
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("states diverged at tick %d", i)
		}
	}
}

func TestDeterminismWithInterleavedMoves(t *testing.T) {
	run := func() uint64 {
		eng, err := New(spawnConfig())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		st := eng.Initialize()
		for i := 0; i < 600; i++ {
			st, err = eng.Tick(st, testDt)
			if err != nil {
				t.Fatalf("tick %d: %v", i, err)
			}
			// Nudge the lowest falling tile every 30 ticks, like a player.
			if i%30 == 29 {
				if id, col := lowestFalling(st.Board); id != "" {
					st = eng.MoveTileHorizontal(st, id, (col+1)%len(st.Board.Columns))
				}
			}
		}
		return st.Fingerprint()
	}

	if run() != run() {
		t.Fatal("identical call sequences must produce identical states")
	}
}

// lowestFalling returns the id and column of the falling tile closest to
// landing, mirroring what the platform's input mapping does.
func lowestFalling(b Board) (string, int) {
	bestID, bestCol := "", 0
	bestY := b.Height + 1
	for ci := range b.Columns {
		for _, tile := range b.Columns[ci].Tiles {
			if !tile.Settled && tile.Y < bestY {
				bestID, bestCol, bestY = tile.ID, ci, tile.Y
			}
		}
	}
	return bestID, bestCol
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	cfg := spawnConfig()
	cfg.SpawnInterval = 0.2 // Busy board
	eng, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := eng.Initialize()

	for i := 0; i < 3000 && !st.GameOver(); i++ {
		st, err = eng.Tick(st, testDt)
		if err != nil {
			t.Fatalf("invariant violated at tick %d: %v", i, err)
		}
		if verr := validateBoard(&st.Board); verr != nil {
			t.Fatalf("post-tick validation failed at tick %d: %v", i, verr)
		}
	}
}

func TestScoreAndBestScoreMonotonic(t *testing.T) {
	cfg := spawnConfig()
	cfg.SpawnInterval = 0.2
	cfg.TileValues = []int{2} // Single value maximizes merges
	eng, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := eng.Initialize()

	prevScore, prevBest := 0, 0
	merged := false
	for i := 0; i < 4000 && !st.GameOver(); i++ {
		st, err = eng.Tick(st, testDt)
		if err != nil {
			t.Fatalf("Tick: %v", err)
		}
		if st.Score < prevScore || st.BestScore < prevBest {
			t.Fatalf("score regressed at tick %d: %d<%d or %d<%d",
				i, st.Score, prevScore, st.BestScore, prevBest)
		}
		if st.BestScore < st.Score {
			t.Fatalf("best score %d below current %d", st.BestScore, st.Score)
		}
		if st.Score > prevScore {
			merged = true
		}
		prevScore, prevBest = st.Score, st.BestScore
	}
	if !merged {
		t.Error("expected at least one merge in a single-value run")
	}
}

func TestLevelFollowsScore(t *testing.T) {
	eng := newTestEngine(t) // LevelUpScore = 64
	st := eng.Initialize()
	st.Board.Columns[0].Tiles = []Tile{
		{ID: "a", Value: 32, Column: 0, Y: 0, Settled: true},
		{ID: "b", Value: 32, Column: 0, Y: 64, Settled: true},
	}

	st, err := eng.Tick(st, testDt)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if st.Score != 64 {
		t.Fatalf("score = %d, want 64", st.Score)
	}
	if st.Level != 2 {
		t.Errorf("level = %d, want 2 after one level-up worth of score", st.Level)
	}
}

func TestFixedLevelWhenProgressionDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.LevelUpScore = 0
	eng, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := eng.Initialize()
	st.Board.Columns[0].Tiles = []Tile{
		{ID: "a", Value: 128, Column: 0, Y: 0, Settled: true},
		{ID: "b", Value: 128, Column: 0, Y: 64, Settled: true},
	}

	st, err = eng.Tick(st, testDt)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if st.Level != 1 {
		t.Errorf("level = %d, want pinned 1", st.Level)
	}
}
