// golang.design/x/clipboard panics without cgo on most platforms
// even though Init returns an error.

//go:build js || (!windows && !cgo)

package main

import (
	"minesweep/misc"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	misc.InfoLogger.Print("initializing clipboard")
	misc.WarnLogger.Print("clipboard is disabled")
}

func ClipboardWriteText(str string) bool {
	return false
}
