package minesweeper

import (
	"github.com/gammazero/deque"
)

// Reveal opens the cell at i. Revealed, flagged and NoCell targets are left alone.
// Zero-contact safe cells keep spreading to their 8 neighbors, so a single call
// opens the whole connected zero region plus its numbered border.
// Returns how many cells were newly revealed.
func (grid *Grid) Reveal(i int) int {
	var queue deque.Deque[int]
	queue.PushBack(i)

	return grid.spread(&queue)
}

// SpreadFrom reveals the neighbors of i the same way Reveal does.
// The cell at i itself is not touched.
func (grid *Grid) SpreadFrom(i int) int {
	var queue deque.Deque[int]
	for _, n := range grid.Neighbors(i) {
		queue.PushBack(n)
	}

	return grid.spread(&queue)
}

func (grid *Grid) spread(queue *deque.Deque[int]) int {
	revealed := 0

	for queue.Len() != 0 {
		i := queue.PopFront()

		if !grid.IsIndexInBoard(i) {
			continue
		}

		cell := &grid.Cells[i]
		if cell.Revealed || cell.Flagged {
			continue
		}

		cell.Revealed = true
		revealed++

		if cell.Contacts > 0 || cell.IsMine {
			continue
		}

		for _, n := range grid.Neighbors(i) {
			if n != NoCell && !grid.Cells[n].Revealed {
				queue.PushBack(n)
			}
		}
	}

	return revealed
}
