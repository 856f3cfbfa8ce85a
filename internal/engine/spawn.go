package engine

// trySpawn attempts to inject one new falling tile at the top of a random
// column. All skip conditions are silent no-ops: the spawn timer has
// already been reset by the caller regardless of the outcome.
func (e *Engine) trySpawn(b *Board) {
	if b.FallingCount() >= e.cfg.MaxActiveTiles {
		return
	}

	ci := e.rng.Intn(len(b.Columns))
	spawnY := b.Height - b.TileSize

	// The spawn slot needs one tile size of clearance below it; a column
	// whose topmost occupant reaches into that band is blocked.
	for _, t := range b.Columns[ci].Tiles {
		if t.Y+b.TileSize > spawnY-b.TileSize {
			return
		}
	}

	value := e.cfg.TileValues[e.rng.Intn(len(e.cfg.TileValues))]
	b.Columns[ci].Tiles = append(b.Columns[ci].Tiles, Tile{
		ID:     e.nextTileID(),
		Value:  value,
		Column: ci,
		Y:      spawnY,
	})
}
