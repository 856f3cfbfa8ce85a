package engine

import (
	"math"
	"sort"
)

// resolveMerges fuses settled, value-equal, vertically-adjacent tile pairs.
// The fused tile keeps the lower slot, doubles the value and gets a fresh
// ID from newID. Returns the score gained (sum of fused values).
//
// Each tile participates in at most one merge per call; a tile produced
// here becomes merge-eligible only on the next tick. No same-tick chains.
func resolveMerges(b *Board, newID func() string) int {
	gained := 0
	for ci := range b.Columns {
		gained += mergeColumn(&b.Columns[ci], b.TileSize, newID)
	}
	return gained
}

func mergeColumn(col *Column, tileSize float64, newID func() string) int {
	if len(col.Tiles) < 2 {
		return 0
	}

	sorted := make([]Tile, len(col.Tiles))
	copy(sorted, col.Tiles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Y < sorted[j].Y })

	consumed := make(map[string]bool)
	var fused []Tile
	gained := 0

	for i, t := range sorted {
		if consumed[t.ID] || !t.Settled {
			continue
		}

		// Nearest settled tile sitting exactly one slot above.
		partner := -1
		for j := i + 1; j < len(sorted); j++ {
			u := sorted[j]
			if consumed[u.ID] || !u.Settled {
				continue
			}
			if math.Abs(u.Y-(t.Y+tileSize)) <= Epsilon {
				partner = j
			}
			break
		}
		if partner < 0 {
			continue
		}

		u := sorted[partner]
		if u.Value != t.Value {
			continue
		}

		consumed[t.ID] = true
		consumed[u.ID] = true
		nt := Tile{
			ID:      newID(),
			Value:   t.Value * 2,
			Column:  col.Index,
			Y:       t.Y,
			Settled: true,
		}
		fused = append(fused, nt)
		gained += nt.Value
	}

	if len(fused) == 0 {
		return 0
	}

	result := make([]Tile, 0, len(col.Tiles))
	for _, t := range col.Tiles {
		if !consumed[t.ID] {
			result = append(result, t)
		}
	}
	result = append(result, fused...)
	col.Tiles = result
	return gained
}
