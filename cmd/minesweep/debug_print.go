package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	Show bool

	DebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func ToggleDebugMsgs() {
	dm := &TheDebugPrintManager
	dm.Show = !dm.Show
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	if !dm.Show || len(dm.DebugMsgs) == 0 {
		return
	}

	dm.builder.Reset()

	for i, msg := range dm.DebugMsgs {
		// builder doesn't actually errors out
		// no need to check error
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		if i != len(dm.DebugMsgs)-1 {
			dm.builder.WriteString("\n")
		}
	}

	const fontSize = 16
	const hozMargin = 5
	const vertMargin = 5

	face := &ebt.GoTextFace{
		Source: FaceSource,
		Size:   fontSize,
	}
	lineSpacing := face.Metrics().HAscent + face.Metrics().HDescent + 3

	text := dm.builder.String()

	w, h := ebt.Measure(text, face, lineSpacing)

	boxW, boxH := w+hozMargin*2, h+vertMargin*2

	dstW, dstH := f64(dst.Bounds().Dx()), f64(dst.Bounds().Dy())
	rect := FRect(dstW-boxW, dstH-boxH, dstW, dstH)

	// draw background
	DrawFilledRect(dst, rect, color.NRGBA{255, 255, 255, 255}, false)
	DrawFilledRect(dst, rect.Inset(2), color.NRGBA{0, 0, 0, 255}, false)

	// draw text
	op := &ebt.DrawOptions{}
	op.GeoM.Translate(rect.Min.X+hozMargin, rect.Min.Y+vertMargin)
	op.ColorScale.ScaleWithColor(color.NRGBA{255, 255, 255, 255})
	op.LineSpacing = lineSpacing

	ebt.Draw(dst, text, face, op)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
