package tilefall

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tilefall/internal/config"
	"github.com/vovakirdan/tilefall/internal/core"
	"github.com/vovakirdan/tilefall/internal/registry"
)

func testGameConfig() config.TilefallConfig {
	return config.TilefallConfig{
		Board: config.BoardConfig{
			Width:       320,
			Height:      640,
			ColumnCount: 5,
			TileSize:    64,
		},
		Physics: config.PhysicsConfig{
			BaseGravity:     200,
			MaxGravity:      800,
			GravityPerLevel: 50,
		},
		Spawn: config.SpawnConfig{
			Interval:       0.2,
			MaxActiveTiles: 3,
			TileValues:     []int{2},
		},
		Difficulty: config.DifficultyConfig{
			Enabled:      true,
			LevelUpScore: 64,
		},
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	SetConfig(testGameConfig())
	SetBestScore(0)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed})
	return g
}

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}

func TestResetStartsEmpty(t *testing.T) {
	g := newTestGame(t, 42)

	st := g.State()
	if st.Score != 0 {
		t.Errorf("Score = %d, want 0", st.Score)
	}
	if st.Level != 1 {
		t.Errorf("Level = %d, want 1", st.Level)
	}
	if st.GameOver {
		t.Error("fresh game should not be over")
	}
	if got := g.st.Board.TileCount(); got != 0 {
		t.Errorf("TileCount = %d, want 0", got)
	}
}

func TestStepAdvancesTick(t *testing.T) {
	g := newTestGame(t, 42)

	for i := 0; i < 10; i++ {
		g.Step(emptyFrame())
	}
	if g.st.Tick != 10 {
		t.Errorf("Tick = %d, want 10", g.st.Tick)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 42)
	g.Step(emptyFrame())
	before := g.st.Tick

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Error("game should be paused")
	}

	for i := 0; i < 5; i++ {
		g.Step(emptyFrame())
	}
	if g.st.Tick != before {
		t.Errorf("Tick advanced to %d while paused", g.st.Tick)
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	SetConfig(testGameConfig())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("tiny screen should pause the game")
	}

	g.Step(emptyFrame())
	if g.st.Tick != 0 {
		t.Error("simulation should not advance on a too-small screen")
	}
}

func TestSteerMovesLowestFallingTile(t *testing.T) {
	g := newTestGame(t, 42)

	// Run until the first tile spawns.
	for i := 0; i < 600 && g.st.Board.FallingCount() == 0; i++ {
		g.Step(emptyFrame())
	}
	id, col, ok := lowestFalling(g.st.Board)
	if !ok {
		t.Fatal("no falling tile after 600 ticks")
	}

	// Steer toward the board interior so the move cannot be out of range.
	in := core.NewInputFrame()
	want := col + 1
	if col == g.cfg.Board.ColumnCount-1 {
		in.Set(core.ActionLeft)
		want = col - 1
	} else {
		in.Set(core.ActionRight)
	}
	g.Step(in)

	ci, ti, found := g.st.Board.FindTile(id)
	if !found {
		// The tile may have settled and merged on this very tick; the
		// steer itself is covered by the engine move tests.
		t.Skip("tile left the board during the steering tick")
	}
	if ci != want {
		t.Errorf("tile column = %d, want %d", ci, want)
	}
	if g.st.Board.Columns[ci].Tiles[ti].Column != want {
		t.Error("tile Column field does not match its column slot")
	}
}

func TestDeterministicPlaythrough(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 7)
		in := core.NewInputFrame()
		for i := 0; i < 900; i++ {
			in.Clear()
			if i%30 == 10 {
				in.Set(core.ActionLeft)
			}
			if i%45 == 20 {
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	a := run()
	b := run()
	if a.Fingerprint != b.Fingerprint {
		t.Errorf("fingerprints differ: %#x vs %#x", a.Fingerprint, b.Fingerprint)
	}
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestZenModeDisablesProgression(t *testing.T) {
	SetConfig(testGameConfig())
	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 3})

	if g.cfg.Difficulty.Enabled {
		t.Error("zen mode should disable difficulty progression")
	}
	if g.ID() != "tilefall_zen" {
		t.Errorf("ID = %q", g.ID())
	}
}

func TestBestScoreSeeded(t *testing.T) {
	SetConfig(testGameConfig())
	SetBestScore(500)
	defer SetBestScore(0)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1})

	if got := g.State().BestScore; got != 500 {
		t.Errorf("BestScore = %d, want 500", got)
	}
}

func TestRenderDrawsHUD(t *testing.T) {
	g := newTestGame(t, 42)
	for i := 0; i < 120; i++ {
		g.Step(emptyFrame())
	}

	dst := core.NewScreen(80, 30)
	g.Render(dst)

	out := dst.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Level 1") {
		t.Error("HUD should show the level")
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Error("board box should be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	SetConfig(testGameConfig())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 24, ScreenH: 10, TickRate: 60, Seed: 1})

	dst := core.NewScreen(24, 10)
	g.Render(dst)

	if !strings.Contains(dst.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	g := newTestGame(t, 42)
	for i := 0; i < 60; i++ {
		g.Step(emptyFrame())
	}

	snap := g.Snapshot()
	if snap.Tick != g.st.Tick {
		t.Errorf("snapshot tick %d != state tick %d", snap.Tick, g.st.Tick)
	}
	if snap.Mode != "classic" {
		t.Errorf("Mode = %q", snap.Mode)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, want playing", snap.State)
	}
	if snap.TileCount != g.st.Board.TileCount() {
		t.Error("snapshot tile count mismatch")
	}
}

func TestRegistryHasBothModes(t *testing.T) {
	for _, id := range []string{"tilefall", "tilefall_zen"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}
