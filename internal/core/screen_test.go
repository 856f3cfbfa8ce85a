package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '#', ColorBrightRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(3,2) = %+v", cell)
	}

	// Out of bounds writes are ignored, reads return a blank cell.
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(10, 0, 'x', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %+v, want blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#', ColorCyan)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if got := s.Row(1); got != "  hi      " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipping at the right edge.
	s.DrawText(8, 0, "long")
	if got := s.Row(0); got != "        lo" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "abc")

	s.Resize(10, 5)
	if !strings.HasPrefix(s.Row(0), "abc") {
		t.Errorf("Row(0) after grow = %q", s.Row(0))
	}

	s.Resize(2, 1)
	if got := s.Row(0); got != "ab" {
		t.Errorf("Row(0) after shrink = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	want := "ab \ncd "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
