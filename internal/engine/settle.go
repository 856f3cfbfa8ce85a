package engine

// resolveFalling advances every falling tile by one gravity step and
// settles the ones that reach their resting position.
//
// Within a column the falling tiles are processed bottom-up, so a tile
// that lands this step immediately becomes the landing surface for the
// tile above it. That gives correct chain-stacking in a single pass.
func resolveFalling(b *Board, gravity, dt float64) {
	for ci := range b.Columns {
		resolveColumn(&b.Columns[ci], b.Height, b.TileSize, gravity, dt)
	}
}

func resolveColumn(col *Column, boardHeight, tileSize, gravity, dt float64) {
	settled := col.settledSorted()
	falling := col.fallingSorted()
	if len(falling) == 0 {
		return
	}

	// Tiles whose position is final for this step: every already-settled
	// tile, plus each falling tile once it has been resolved.
	finalized := make([]Tile, 0, len(col.Tiles))
	finalized = append(finalized, settled...)

	result := make([]Tile, 0, len(col.Tiles))
	result = append(result, settled...)

	for _, t := range falling {
		newVel := t.Velocity + gravity*dt
		desired := t.Y - newVel*dt

		// Resting position: top of the highest settled obstacle below,
		// or the floor.
		settleY := 0.0
		for _, f := range finalized {
			if f.Settled && f.Y < t.Y && f.Y+tileSize > settleY {
				settleY = f.Y + tileSize
			}
		}

		constrained := desired
		if constrained < settleY {
			constrained = settleY
		}
		if constrained < 0 {
			constrained = 0
		}
		if constrained > boardHeight-tileSize {
			constrained = boardHeight - tileSize
		}

		// Safety net: never finalize a position that overlaps a tile
		// already placed this step. Should only trigger at the exact
		// arrival instant.
		forced := false
		for _, f := range finalized {
			if constrained < f.Y+tileSize && f.Y < constrained+tileSize {
				constrained = settleY
				forced = true
				break
			}
		}

		if forced || desired <= settleY+Epsilon {
			t.Y = settleY
			t.Velocity = 0
			t.Settled = true
		} else {
			t.Y = constrained
			t.Velocity = newVel
		}

		finalized = append(finalized, t)
		result = append(result, t)
	}

	col.Tiles = result
}
