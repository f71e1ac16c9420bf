package main

import (
	"time"

	"golang.org/x/exp/constraints"

	eb "github.com/hajimehoshi/ebiten/v2"
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

// UpdateDelta is the time one ebiten update stands for.
func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}
