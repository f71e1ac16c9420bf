package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1

	SaveColorTableKey = eb.KeyF10
	InstantWinKey     = eb.KeyF8

	ResetBoardKey       eb.Key = eb.KeyR
	ResetToSameBoardKey eb.Key = eb.KeyT

	CopySummaryKey eb.Key = eb.KeyC
	MuteKey        eb.Key = eb.KeyM

	ScreenshotKey = eb.KeyF12
)
