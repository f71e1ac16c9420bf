package minesweeper

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// PlaceMines marks count distinct cells as mines, chosen uniformly at random
// from every cell not listed in except. Returned indices are sorted.
func (grid *Grid) PlaceMines(rng *rand.Rand, count int, except ...int) ([]int, error) {
	if count >= grid.Len() {
		return nil, fmt.Errorf("%w: %d mines on %d cells", ErrTooManyMines, count, grid.Len())
	}

	minePlaces := make([]int, 0, grid.Len())
	for i := range grid.Cells {
		if !slices.Contains(except, i) {
			minePlaces = append(minePlaces, i)
		}
	}

	if count > len(minePlaces) {
		return nil, fmt.Errorf(
			"%w: %d mines but only %d free cells", ErrTooManyMines, count, len(minePlaces))
	}

	rng.Shuffle(len(minePlaces), func(i, j int) {
		minePlaces[i], minePlaces[j] = minePlaces[j], minePlaces[i]
	})

	mines := minePlaces[:count]
	slices.Sort(mines)

	for _, i := range mines {
		grid.Cells[i].IsMine = true
	}

	return mines, nil
}

// SetMines replaces the mine layout with a fixed one.
func (grid *Grid) SetMines(indices ...int) ([]int, error) {
	if len(indices) >= grid.Len() {
		return nil, fmt.Errorf("%w: %d mines on %d cells", ErrTooManyMines, len(indices), grid.Len())
	}

	for _, i := range indices {
		if !grid.IsIndexInBoard(i) {
			return nil, fmt.Errorf("mine index %d is outside of %dx%d board", i, grid.Width, grid.Height)
		}
	}

	for i := range grid.Cells {
		grid.Cells[i].IsMine = false
	}

	mines := slices.Clone(indices)
	slices.Sort(mines)
	mines = slices.Compact(mines)

	for _, i := range mines {
		grid.Cells[i].IsMine = true
	}

	return mines, nil
}

// SafeZone returns the cell itself and its real neighbors.
func (grid *Grid) SafeZone(i int) []int {
	zone := []int{i}
	for _, n := range grid.Neighbors(i) {
		if n != NoCell {
			zone = append(zone, n)
		}
	}
	return zone
}
