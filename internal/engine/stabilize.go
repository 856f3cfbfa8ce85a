package engine

import "sort"

// stabilize repacks each column's settled tiles from the floor upward so
// the k-th settled tile rests at exactly k*TileSize. Merges can leave a
// hole mid-stack; this closes it. Falling tiles pass through unchanged.
func stabilize(b *Board) {
	for ci := range b.Columns {
		col := &b.Columns[ci]

		idx := make([]int, 0, len(col.Tiles))
		for i, t := range col.Tiles {
			if t.Settled {
				idx = append(idx, i)
			}
		}
		sort.Slice(idx, func(a, z int) bool {
			return col.Tiles[idx[a]].Y < col.Tiles[idx[z]].Y
		})

		for rank, i := range idx {
			col.Tiles[i].Y = float64(rank) * b.TileSize
		}
	}
}
