package minesweeper

import (
	"slices"
)

// BestTimes holds the seconds of every won game in this process.
type BestTimes struct {
	times []int
}

func (bt *BestTimes) Add(seconds int) {
	bt.times = append(bt.times, seconds)
}

func (bt *BestTimes) Len() int {
	return len(bt.times)
}

// Sorted returns the recorded times, fastest first.
func (bt *BestTimes) Sorted() []int {
	sorted := slices.Clone(bt.times)
	slices.Sort(sorted)
	return sorted
}

// Record returns the fastest time, ok is false if nothing was won yet.
func (bt *BestTimes) Record() (int, bool) {
	if len(bt.times) == 0 {
		return 0, false
	}
	return slices.Min(bt.times), true
}
