package tilefall

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateBroken      GameStateType = "invariant_violation"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Score        int
	BestScore    int
	Level        int
	TileCount    int
	FallingCount int
	MaxTile      int
	Fingerprint  uint64
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.invariantErr != nil:
		state = StateBroken
	case g.st.GameOver():
		state = StateGameOver
	}

	return Snapshot{
		Tick:         g.st.Tick,
		Mode:         string(g.mode),
		Score:        g.st.Score,
		BestScore:    g.st.BestScore,
		Level:        g.st.Level,
		TileCount:    g.st.Board.TileCount(),
		FallingCount: g.st.Board.FallingCount(),
		MaxTile:      g.st.Board.MaxValue(),
		Fingerprint:  g.st.Fingerprint(),
		State:        state,
	}
}
