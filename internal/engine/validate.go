package engine

import (
	"fmt"
	"math"
	"strings"
)

// Invariant violation codes reported by validateBoard.
const (
	CodeOverlap        = "OVERLAP"
	CodeGap            = "GAP"
	CodeDuplicateID    = "DUPLICATE_ID"
	CodeColumnMismatch = "COLUMN_MISMATCH"
	CodeOutOfBounds    = "OUT_OF_BOUNDS"
)

// InvariantError describes a board invariant violation detected after a
// tick. It indicates a defect in resolver logic, not a recoverable runtime
// condition; callers should treat it as a hard stop.
type InvariantError struct {
	Code    string
	TileIDs []string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("[%s] %s (tiles: %s)", e.Code, e.Message, strings.Join(e.TileIDs, ", "))
}

// validateBoard asserts the five board invariants: no vertical overlap
// within a column, gap-free settled stacks, globally unique tile IDs,
// column membership consistency, and no tile above the board top.
func validateBoard(b *Board) error {
	seen := make(map[string]bool)

	for ci := range b.Columns {
		col := &b.Columns[ci]

		for i := range col.Tiles {
			t := col.Tiles[i]

			if seen[t.ID] {
				return &InvariantError{
					Code:    CodeDuplicateID,
					TileIDs: []string{t.ID},
					Message: "tile id appears more than once on the board",
				}
			}
			seen[t.ID] = true

			if t.Column != col.Index {
				return &InvariantError{
					Code:    CodeColumnMismatch,
					TileIDs: []string{t.ID},
					Message: fmt.Sprintf("tile records column %d but lives in column %d", t.Column, col.Index),
				}
			}

			if t.Y < -Epsilon || t.Y+b.TileSize > b.Height+Epsilon {
				return &InvariantError{
					Code:    CodeOutOfBounds,
					TileIDs: []string{t.ID},
					Message: fmt.Sprintf("tile at y=%.3f extends outside [0, %.3f]", t.Y, b.Height),
				}
			}

			for j := i + 1; j < len(col.Tiles); j++ {
				u := col.Tiles[j]
				if t.Overlaps(u, b.TileSize) {
					return &InvariantError{
						Code:    CodeOverlap,
						TileIDs: []string{t.ID, u.ID},
						Message: fmt.Sprintf("tiles overlap at y=%.3f and y=%.3f in column %d", t.Y, u.Y, col.Index),
					}
				}
			}
		}

		for rank, t := range col.settledSorted() {
			want := float64(rank) * b.TileSize
			if math.Abs(t.Y-want) > Epsilon {
				return &InvariantError{
					Code:    CodeGap,
					TileIDs: []string{t.ID},
					Message: fmt.Sprintf("settled tile at y=%.3f, expected y=%.3f in column %d", t.Y, want, col.Index),
				}
			}
		}
	}

	return nil
}
