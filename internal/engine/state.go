package engine

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// State is one immutable snapshot of the simulation. The engine never
// mutates a snapshot it has handed out; Tick and MoveTileHorizontal return
// fresh values built from deep copies.
type State struct {
	Board     Board
	Score     int
	BestScore int
	Level     int // Difficulty level, >= 1
	Tick      uint64
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Board:     s.Board.Clone(),
		Score:     s.Score,
		BestScore: s.BestScore,
		Level:     s.Level,
		Tick:      s.Tick,
	}
}

// GameOver reports whether the snapshot is terminal.
func (s State) GameOver() bool {
	return s.Board.IsGameOver()
}

// Fingerprint returns an FNV-64a hash over the full tile set and counters.
// Two states with the same fingerprint are identical for determinism
// purposes; used by tests and the headless sim command.
func (s State) Fingerprint() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "T:%d;S:%d;B:%d;L:%d;", s.Tick, s.Score, s.BestScore, s.Level)

	for ci := range s.Board.Columns {
		tiles := make([]Tile, len(s.Board.Columns[ci].Tiles))
		copy(tiles, s.Board.Columns[ci].Tiles)
		sort.Slice(tiles, func(i, j int) bool { return tiles[i].ID < tiles[j].ID })

		fmt.Fprintf(h, "C%d:", ci)
		for _, t := range tiles {
			fmt.Fprintf(h, "%s:%d:%d:%.3f:%v:%.3f,", t.ID, t.Value, t.Column, t.Y, t.Settled, t.Velocity)
		}
	}
	return h.Sum64()
}

// Equal reports whether two states describe the same instant: same
// counters and the same tiles with identical identity, position and
// settle status. Tile order within columns is ignored.
func (s State) Equal(other State) bool {
	if s.Score != other.Score || s.BestScore != other.BestScore ||
		s.Level != other.Level || s.Tick != other.Tick {
		return false
	}
	if len(s.Board.Columns) != len(other.Board.Columns) {
		return false
	}
	for ci := range s.Board.Columns {
		a := s.Board.Columns[ci].Tiles
		b := other.Board.Columns[ci].Tiles
		if len(a) != len(b) {
			return false
		}
		byID := make(map[string]Tile, len(b))
		for _, t := range b {
			byID[t.ID] = t
		}
		for _, t := range a {
			u, ok := byID[t.ID]
			if !ok || u != t {
				return false
			}
		}
	}
	return true
}
