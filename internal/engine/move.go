package engine

// moveSafetyMargin widens the overlap test for horizontal moves so a tile
// cannot be slotted flush against another tile mid-flight.
const moveSafetyMargin = Epsilon

// moveTile relocates a falling tile into the target column if the move is
// legal. Returns false (board untouched) when the target column is out of
// range, the tile is unknown or settled, the tile already lives in the
// target column, or the tile's y-range would overlap any tile already in
// the target column.
func moveTile(b *Board, tileID string, targetCol int) bool {
	if targetCol < 0 || targetCol >= len(b.Columns) {
		return false
	}

	ci, ti, ok := b.FindTile(tileID)
	if !ok {
		return false
	}
	t := b.Columns[ci].Tiles[ti]
	if t.Settled || ci == targetCol {
		return false
	}

	// Column-level AABB test against every occupant of the target column,
	// not just its top: multiple tiles can coexist at different heights.
	lo := t.Y - moveSafetyMargin
	hi := t.Y + b.TileSize + moveSafetyMargin
	for _, u := range b.Columns[targetCol].Tiles {
		if lo < u.Y+b.TileSize && u.Y < hi {
			return false
		}
	}

	b.Columns[ci].Tiles = append(b.Columns[ci].Tiles[:ti], b.Columns[ci].Tiles[ti+1:]...)
	t.Column = targetCol
	b.Columns[targetCol].Tiles = append(b.Columns[targetCol].Tiles, t)
	return true
}
