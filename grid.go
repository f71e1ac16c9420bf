package minesweeper

import (
	"fmt"
)

//==============================================
// GRID STUFFS
//==============================================

// NoCell is the sentinel link used past the board edges.
// It is never a mine and every link out of it is NoCell again.
const NoCell = -1

type Cell struct {
	Col int
	Row int

	Left   int
	Top    int
	Right  int
	Bottom int

	IsMine   bool
	Contacts int
	Flagged  bool
	Revealed bool
}

type Grid struct {
	Width  int
	Height int

	Cells []Cell
}

// NewGrid builds a width*height grid in row-major order
// and wires the four direct links of every cell.
func NewGrid(width, height int) Grid {
	var grid Grid

	grid.Width = width
	grid.Height = height
	if width <= 0 || height <= 0 {
		return grid
	}

	grid.Cells = make([]Cell, width*height)

	iter := NewBoardIterator(0, 0, width-1, height-1)
	for iter.HasNext() {
		x, y := iter.GetNext()
		cell := &grid.Cells[grid.Index(x, y)]

		cell.Col = x
		cell.Row = y

		cell.Left, cell.Top, cell.Right, cell.Bottom = NoCell, NoCell, NoCell, NoCell

		if x > 0 {
			cell.Left = grid.Index(x-1, y)
		}
		if y > 0 {
			cell.Top = grid.Index(x, y-1)
		}
		if x < width-1 {
			cell.Right = grid.Index(x+1, y)
		}
		if y < height-1 {
			cell.Bottom = grid.Index(x, y+1)
		}
	}

	grid.mustBeWellFormed()

	return grid
}

func (grid *Grid) mustBeWellFormed() {
	for i := range grid.Cells {
		c := &grid.Cells[i]

		if (c.Col == 0) != (c.Left == NoCell) ||
			(c.Row == 0) != (c.Top == NoCell) ||
			(c.Col == grid.Width-1) != (c.Right == NoCell) ||
			(c.Row == grid.Height-1) != (c.Bottom == NoCell) {
			panic(fmt.Sprintf("grid: malformed boundary links at cell %d", i))
		}

		if c.Left != NoCell && grid.Right(c.Left) != i {
			panic(fmt.Sprintf("grid: asymmetric left/right link at cell %d", i))
		}
		if c.Top != NoCell && grid.Bottom(c.Top) != i {
			panic(fmt.Sprintf("grid: asymmetric top/bottom link at cell %d", i))
		}
	}
}

func (grid *Grid) Len() int {
	return len(grid.Cells)
}

func (grid *Grid) Index(x, y int) int {
	return y*grid.Width + x
}

func (grid *Grid) IsPosInBoard(x, y int) bool {
	return x >= 0 && x < grid.Width && y >= 0 && y < grid.Height
}

func (grid *Grid) IsIndexInBoard(i int) bool {
	return i >= 0 && i < len(grid.Cells)
}

// =================================
// links
// =================================

func (grid *Grid) Left(i int) int {
	if !grid.IsIndexInBoard(i) {
		return NoCell
	}
	return grid.Cells[i].Left
}

func (grid *Grid) Top(i int) int {
	if !grid.IsIndexInBoard(i) {
		return NoCell
	}
	return grid.Cells[i].Top
}

func (grid *Grid) Right(i int) int {
	if !grid.IsIndexInBoard(i) {
		return NoCell
	}
	return grid.Cells[i].Right
}

func (grid *Grid) Bottom(i int) int {
	if !grid.IsIndexInBoard(i) {
		return NoCell
	}
	return grid.Cells[i].Bottom
}

func (grid *Grid) TopLeft(i int) int {
	return grid.Left(grid.Top(i))
}

func (grid *Grid) TopRight(i int) int {
	return grid.Right(grid.Top(i))
}

func (grid *Grid) BottomLeft(i int) int {
	return grid.Left(grid.Bottom(i))
}

func (grid *Grid) BottomRight(i int) int {
	return grid.Right(grid.Bottom(i))
}

// Neighbors returns the four direct links followed by the four diagonals.
// Links past the edge are NoCell.
func (grid *Grid) Neighbors(i int) [8]int {
	return [8]int{
		grid.Top(i),
		grid.Right(i),
		grid.Bottom(i),
		grid.Left(i),
		grid.TopRight(i),
		grid.TopLeft(i),
		grid.BottomRight(i),
		grid.BottomLeft(i),
	}
}

func (grid *Grid) IsMine(i int) bool {
	if !grid.IsIndexInBoard(i) {
		return false
	}
	return grid.Cells[i].IsMine
}

// ComputeContacts sets the contact count of every cell
// to the number of mines among its 8 neighbors.
func (grid *Grid) ComputeContacts() {
	for i := range grid.Cells {
		total := 0
		for _, n := range grid.Neighbors(i) {
			if grid.IsMine(n) {
				total += 1
			}
		}
		grid.Cells[i].Contacts = total
	}
}

func (grid *Grid) FlaggedIndices() []int {
	var flagged []int
	for i, c := range grid.Cells {
		if c.Flagged {
			flagged = append(flagged, i)
		}
	}
	return flagged
}

// CheckWin reports whether every non-mine cell is revealed.
func (grid *Grid) CheckWin() bool {
	for _, c := range grid.Cells {
		if !c.IsMine && !c.Revealed {
			return false
		}
	}
	return true
}

//==============================================
// board iterator
//==============================================

type BoardIterator struct {
	MinX int
	MinY int
	MaxX int
	MaxY int

	CurrentX int
	CurrentY int
}

// inclusive
func NewBoardIterator(x1 int, y1 int, x2 int, y2 int) BoardIterator {
	iterator := BoardIterator{
		MinX: min(x1, x2),
		MinY: min(y1, y2),

		MaxX: max(x1, x2),
		MaxY: max(y1, y2),
	}

	iterator.CurrentX = iterator.MinX
	iterator.CurrentY = iterator.MinY

	return iterator
}

func (bi *BoardIterator) HasNext() bool {
	return bi.CurrentY <= bi.MaxY && bi.MinX <= bi.MaxX
}

func (bi *BoardIterator) GetNext() (int, int) {
	x := bi.CurrentX
	y := bi.CurrentY

	bi.CurrentX++
	if bi.CurrentX > bi.MaxX {
		bi.CurrentX = bi.MinX
		bi.CurrentY++
	}

	return x, y
}

func (bi *BoardIterator) Reset() {
	bi.CurrentX = bi.MinX
	bi.CurrentY = bi.MinY
}
