package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"minesweep/misc"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorHudBar
	ColorHudText
	ColorTextShadow

	ColorTileNormal1
	ColorTileNormal2

	ColorTileRevealed1
	ColorTileRevealed2

	ColorNumber1
	ColorNumber2
	ColorNumber3
	ColorNumber4
	ColorNumber5
	ColorNumber6
	ColorNumber7
	ColorNumber8

	ColorMine
	ColorMineHit
	ColorFlag
	ColorFlagPole

	ColorClock
	ColorRestartButton

	ColorOverlay
	ColorMessage

	ColorTableSize
)

var colorTableNames = [ColorTableSize]string{
	ColorBg: "bg",

	ColorHudBar:     "hud-bar",
	ColorHudText:    "hud-text",
	ColorTextShadow: "text-shadow",

	ColorTileNormal1: "tile-normal-1",
	ColorTileNormal2: "tile-normal-2",

	ColorTileRevealed1: "tile-revealed-1",
	ColorTileRevealed2: "tile-revealed-2",

	ColorNumber1: "number-1",
	ColorNumber2: "number-2",
	ColorNumber3: "number-3",
	ColorNumber4: "number-4",
	ColorNumber5: "number-5",
	ColorNumber6: "number-6",
	ColorNumber7: "number-7",
	ColorNumber8: "number-8",

	ColorMine:     "mine",
	ColorMineHit:  "mine-hit",
	ColorFlag:     "flag",
	ColorFlagPole: "flag-pole",

	ColorClock:         "clock",
	ColorRestartButton: "restart-button",

	ColorOverlay: "overlay",
	ColorMessage: "message",
}

var defaultColorTable = [ColorTableSize]string{
	ColorBg: "rgb(30, 60, 0)",

	ColorHudBar:     "rgb(80, 155, 0)",
	ColorHudText:    "white",
	ColorTextShadow: "rgba(0, 0, 0, 0.6)",

	ColorTileNormal1: "rgb(165, 230, 80)",
	ColorTileNormal2: "rgb(150, 215, 75)",

	ColorTileRevealed1: "rgb(245, 235, 200)",
	ColorTileRevealed2: "rgb(235, 225, 185)",

	ColorNumber1: "rgb(80, 160, 230)",
	ColorNumber2: "rgb(50, 190, 40)",
	ColorNumber3: "rgb(215, 35, 35)",
	ColorNumber4: "rgb(95, 5, 190)",
	ColorNumber5: "rgb(255, 215, 10)",
	ColorNumber6: "rgb(5, 200, 200)",
	ColorNumber7: "rgb(250, 135, 210)",
	ColorNumber8: "rgb(80, 225, 140)",

	ColorMine:     "rgb(200, 10, 10)",
	ColorMineHit:  "rgb(120, 0, 0)",
	ColorFlag:     "rgb(200, 10, 10)",
	ColorFlagPole: "rgb(60, 40, 20)",

	ColorClock:         "rgb(255, 230, 60)",
	ColorRestartButton: "white",

	ColorOverlay: "rgba(0, 0, 0, 0.55)",
	ColorMessage: "white",
}

var ColorTable [ColorTableSize]color.NRGBA

func init() {
	ColorTable = DefaultColorTable()
}

func (c ColorTableIndex) String() string {
	if c < 0 || c >= ColorTableSize {
		return fmt.Sprintf("ColorTableIndex(%d)", int(c))
	}
	return colorTableNames[c]
}

func DefaultColorTable() [ColorTableSize]color.NRGBA {
	var table [ColorTableSize]color.NRGBA
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		table[i] = MustParseColorString(defaultColorTable[i])
	}
	return table
}

func NumberColor(contacts int) color.NRGBA {
	contacts = Clamp(contacts, 1, 8)
	return ColorTable[ColorNumber1+ColorTableIndex(contacts-1)]
}

func ColorTableToJson(table [ColorTableSize]color.NRGBA) ([]byte, error) {
	tableMap := make(map[string]string)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		tableMap[i.String()] = ColorToString(table[i])
	}

	return json.MarshalIndent(tableMap, "", "    ")
}

// ColorTableFromJson reads a map of color names to css colors.
// Colors missing from the map keep their value in base.
func ColorTableFromJson(
	tableJson []byte,
	base [ColorTableSize]color.NRGBA,
) ([ColorTableSize]color.NRGBA, error) {
	colorTable := base

	var tableMap map[string]string

	if err := json.Unmarshal(tableJson, &tableMap); err != nil {
		return colorTable, err
	}

	stringToIndex := make(map[string]ColorTableIndex)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = i
	}

	for k, v := range tableMap {
		index, ok := stringToIndex[k]
		if !ok {
			misc.WarnLogger.Printf("unknown color %q", k)
			continue
		}

		clr, err := ParseColorString(v)
		if err != nil {
			return colorTable, fmt.Errorf("color %q: %w", k, err)
		}
		colorTable[index] = clr
	}

	return colorTable, nil
}

func LoadColorTable(path string) error {
	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	table, err := ColorTableFromJson(jsonBytes, DefaultColorTable())
	if err != nil {
		return err
	}

	ColorTable = table

	return nil
}

func SaveColorTable(path string) {
	misc.InfoLogger.Printf("saving color table to %s", path)

	jsonBytes, err := ColorTableToJson(ColorTable)
	if err != nil {
		misc.ErrLogger.Printf("failed to save color table: %v", err)
		return
	}

	if err := os.WriteFile(path, jsonBytes, 0664); err != nil {
		misc.ErrLogger.Printf("failed to save color table: %v", err)
	}
}
