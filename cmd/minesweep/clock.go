package main

import (
	"time"
)

var globalTimer time.Duration

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp() {
	t.Current += UpdateDelta()
}

// Consume returns how many whole durations have passed
// and keeps the remainder.
func (t *Timer) Consume() int {
	if t.Duration <= 0 {
		return 0
	}

	n := int(t.Current / t.Duration)
	t.Current -= time.Duration(n) * t.Duration

	return n
}

func (t *Timer) Reset() {
	t.Current = 0
}
