package minesweeper

import (
	"slices"
	"testing"
)

func newTestGrid(t *testing.T, width, height int, mines ...int) Grid {
	t.Helper()

	grid := NewGrid(width, height)
	if _, err := grid.SetMines(mines...); err != nil {
		t.Fatalf("SetMines failed: %v", err)
	}
	grid.ComputeContacts()

	return grid
}

func revealedIndices(grid Grid) []int {
	var revealed []int
	for i, c := range grid.Cells {
		if c.Revealed {
			revealed = append(revealed, i)
		}
	}
	return revealed
}

func TestRevealIdempotent(t *testing.T) {
	grid := newTestGrid(t, 3, 3, 4)

	if n := grid.Reveal(0); n != 1 {
		t.Fatalf("first reveal opened %d cells, want 1", n)
	}
	once := slices.Clone(grid.Cells)

	if n := grid.Reveal(0); n != 0 {
		t.Fatalf("second reveal opened %d cells, want 0", n)
	}

	if !slices.Equal(once, grid.Cells) {
		t.Fatal("second reveal changed the grid")
	}
}

func TestRevealWithoutMines(t *testing.T) {
	for _, start := range []int{0, 7, 19} {
		grid := newTestGrid(t, 5, 4)

		if n := grid.Reveal(start); n != 20 {
			t.Fatalf("reveal from %d opened %d cells, want 20", start, n)
		}
		if !grid.CheckWin() {
			t.Fatalf("reveal from %d left cells covered", start)
		}
	}
}

func TestRevealPocket(t *testing.T) {
	// ring of mines three steps around the center of a 9x9 board
	const size = 9
	const center = 4

	var ring []int
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if max(abs(x-center), abs(y-center)) == 3 {
				ring = append(ring, y*size+x)
			}
		}
	}

	grid := newTestGrid(t, size, size, ring...)

	n := grid.Reveal(center*size + center)
	if n != 25 {
		t.Fatalf("opened %d cells, want 25", n)
	}

	for i, c := range grid.Cells {
		inPocket := max(abs(c.Col-center), abs(c.Row-center)) <= 2
		if c.Revealed != inPocket {
			t.Fatalf("cell %d (%d, %d): revealed = %v", i, c.Col, c.Row, c.Revealed)
		}
		if inPocket && max(abs(c.Col-center), abs(c.Row-center)) == 2 && c.Contacts == 0 {
			t.Fatalf("border cell %d has no contacts", i)
		}
	}
}

func TestRevealSkipsFlags(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	grid.Cells[4].Flagged = true

	if n := grid.Reveal(0); n != 8 {
		t.Fatalf("opened %d cells, want 8", n)
	}
	if grid.Cells[4].Revealed {
		t.Fatal("flagged cell was revealed")
	}

	if n := grid.Reveal(4); n != 0 {
		t.Fatalf("reveal on a flag opened %d cells", n)
	}
}

func TestRevealSentinel(t *testing.T) {
	grid := newTestGrid(t, 3, 3)

	if n := grid.Reveal(NoCell); n != 0 {
		t.Fatalf("reveal on sentinel opened %d cells", n)
	}
	if len(revealedIndices(grid)) != 0 {
		t.Fatal("reveal on sentinel changed the grid")
	}
}

func TestRevealMineDoesNotSpread(t *testing.T) {
	grid := newTestGrid(t, 3, 3, 0)

	if n := grid.Reveal(0); n != 1 {
		t.Fatalf("opened %d cells, want 1", n)
	}
	if got := revealedIndices(grid); !slices.Equal(got, []int{0}) {
		t.Fatalf("revealed %v, want [0]", got)
	}
}

func TestSpreadFrom(t *testing.T) {
	grid := newTestGrid(t, 5, 1, 2)

	grid.Cells[4].Revealed = true
	if n := grid.SpreadFrom(4); n != 1 {
		t.Fatalf("opened %d cells, want 1", n)
	}
	if got := revealedIndices(grid); !slices.Equal(got, []int{3, 4}) {
		t.Fatalf("revealed %v, want [3 4]", got)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
