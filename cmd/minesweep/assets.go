package main

import (
	"bytes"
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"minesweep/misc"
)

var FaceSource *ebt.GoTextFaceSource

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

func LoadAssets() {
	var err error
	FaceSource, err = ebt.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		misc.ErrLogger.Fatalf("failed to load font : %v", err)
	}
}
