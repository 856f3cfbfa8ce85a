package engine

import "sort"

// Tile is one square on the board. Y is the distance from the board floor
// to the tile's bottom edge (bottom-up coordinates, in pixels); the tile
// occupies the half-open interval [Y, Y+TileSize).
type Tile struct {
	ID       string
	Value    int
	Column   int
	Y        float64
	Settled  bool
	Velocity float64 // Downward-positive, pixels per second
}

// Overlaps reports whether two tiles of the given size share any vertical
// range. Both tiles are assumed to be in the same column.
func (t Tile) Overlaps(other Tile, tileSize float64) bool {
	return t.Y < other.Y+tileSize && other.Y < t.Y+tileSize
}

// Column holds the tiles currently occupying one board column.
// Order within Tiles carries no meaning; resolvers sort as needed.
type Column struct {
	Index int
	Tiles []Tile
}

// settledSorted returns the column's settled tiles sorted ascending by Y.
func (c *Column) settledSorted() []Tile {
	out := make([]Tile, 0, len(c.Tiles))
	for _, t := range c.Tiles {
		if t.Settled {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Y < out[j].Y })
	return out
}

// fallingSorted returns the column's falling tiles sorted ascending by Y,
// so the tile closest to landing comes first.
func (c *Column) fallingSorted() []Tile {
	out := make([]Tile, 0, len(c.Tiles))
	for _, t := range c.Tiles {
		if !t.Settled {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Y < out[j].Y })
	return out
}

// Board is the full grid at one instant.
type Board struct {
	Columns  []Column
	Height   float64
	TileSize float64
}

// NewBoard creates an empty board with the given geometry.
func NewBoard(columnCount int, height, tileSize float64) Board {
	cols := make([]Column, columnCount)
	for i := range cols {
		cols[i] = Column{Index: i}
	}
	return Board{Columns: cols, Height: height, TileSize: tileSize}
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	cols := make([]Column, len(b.Columns))
	for i, c := range b.Columns {
		tiles := make([]Tile, len(c.Tiles))
		copy(tiles, c.Tiles)
		cols[i] = Column{Index: c.Index, Tiles: tiles}
	}
	return Board{Columns: cols, Height: b.Height, TileSize: b.TileSize}
}

// FindTile locates a tile by ID. Returns the column index, the index within
// that column's slice, and whether it was found.
func (b *Board) FindTile(id string) (colIdx, tileIdx int, ok bool) {
	for ci := range b.Columns {
		for ti := range b.Columns[ci].Tiles {
			if b.Columns[ci].Tiles[ti].ID == id {
				return ci, ti, true
			}
		}
	}
	return 0, 0, false
}

// FallingCount returns the number of unsettled tiles on the whole board.
func (b *Board) FallingCount() int {
	n := 0
	for ci := range b.Columns {
		for _, t := range b.Columns[ci].Tiles {
			if !t.Settled {
				n++
			}
		}
	}
	return n
}

// TileCount returns the total number of tiles on the board.
func (b *Board) TileCount() int {
	n := 0
	for ci := range b.Columns {
		n += len(b.Columns[ci].Tiles)
	}
	return n
}

// MaxValue returns the largest tile value on the board, or 0 when empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	for ci := range b.Columns {
		for _, t := range b.Columns[ci].Tiles {
			if t.Value > maxVal {
				maxVal = t.Value
			}
		}
	}
	return maxVal
}

// IsGameOver reports whether any settled tile has reached the danger line,
// two tile sizes below the board top.
func (b *Board) IsGameOver() bool {
	limit := b.Height - 2*b.TileSize
	for ci := range b.Columns {
		for _, t := range b.Columns[ci].Tiles {
			if t.Settled && t.Y >= limit {
				return true
			}
		}
	}
	return false
}
