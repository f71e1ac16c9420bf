package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"minesweep/misc"
)

var TheScreenshotManager struct {
	Requested bool
	Dir       string
}

func RequestScreenshot() {
	TheScreenshotManager.Requested = true
}

// TakeRequestedScreenshot saves img if a screenshot was requested.
// It has to run at the end of Draw so img holds the whole frame.
func TakeRequestedScreenshot(img *eb.Image) {
	sm := &TheScreenshotManager
	if !sm.Requested {
		return
	}
	sm.Requested = false

	path, err := TakeScreenshot(img, sm.Dir)
	if err != nil {
		misc.ErrLogger.Printf("failed to take screenshot : %v", err)
		return
	}
	misc.InfoLogger.Printf("saved screenshot %s", path)
}

func TakeScreenshot(img *eb.Image, dirPath string) (string, error) {
	if dirPath == "" {
		dirPath = "."
	}

	fullPath, err := screenshotPath(dirPath, time.Now())
	if err != nil {
		return "", err
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	img.ReadPixels(rgba.Pix)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := png.Encode(file, rgba); err != nil {
		return "", err
	}

	return fullPath, nil
}

// screenshotPath picks a file name in dirPath that doesn't exist yet.
func screenshotPath(dirPath string, now time.Time) (string, error) {
	timeStr := now.Format("0102150405")

	filename := fmt.Sprintf("pic-%s.png", timeStr)

	for nameCounter := 2; ; nameCounter++ {
		fullPath := filepath.Join(dirPath, filename)

		_, err := os.Stat(fullPath)
		if errors.Is(err, fs.ErrNotExist) {
			return fullPath, nil
		}
		if err != nil {
			return "", err
		}

		filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
	}
}
