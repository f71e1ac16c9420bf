package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	ms "minesweep"
)

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

// JustPressedMouseButton returns the first of left or right button
// pressed this update.
func JustPressedMouseButton() (eb.MouseButton, bool) {
	for _, button := range []eb.MouseButton{eb.MouseButtonLeft, eb.MouseButtonRight} {
		if IsMouseButtonJustPressed(button) {
			return button, true
		}
	}
	return 0, false
}

// JustTouchedFPt returns where a touch started this update.
// Touches act as left clicks.
func JustTouchedFPt() (FPoint, bool) {
	touches := ebi.AppendJustPressedTouchIDs(nil)
	if len(touches) == 0 {
		return FPoint{}, false
	}
	x, y := eb.TouchPosition(touches[0])
	return FPt(f64(x), f64(y)), true
}

// JustPressedPointer reports a mouse press or touch that started this update.
func JustPressedPointer() (FPoint, ms.Button, bool) {
	if button, ok := JustPressedMouseButton(); ok {
		if button == eb.MouseButtonRight {
			return CursorFPt(), ms.ButtonRight, true
		}
		return CursorFPt(), ms.ButtonLeft, true
	}

	if pos, ok := JustTouchedFPt(); ok {
		return pos, ms.ButtonLeft, true
	}

	return FPoint{}, ms.ButtonLeft, false
}
