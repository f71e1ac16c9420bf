package main

import (
	"math"
	"strconv"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

// =================================
// hud
// =================================

func (a *App) DrawHud(dst *eb.Image, l ScreenLayout) {
	hud := a.Game.HUD()

	DrawFilledRect(dst, l.Hud, ColorTable[ColorHudBar], false)

	textSize := l.Tile * 0.8

	// remaining flags
	{
		iconRect := CenterFRectangle(
			FRectWH(l.Tile, l.Tile),
			l.Flags.X-l.Tile*0.6, l.Flags.Y,
		)
		DrawFlag(dst, iconRect)

		DrawTextShadowed(
			dst, strconv.Itoa(hud.RemainingFlags),
			FPt(l.Flags.X+l.Tile*0.5, l.Flags.Y),
			textSize, 2,
			ColorTable[ColorHudText], ColorTable[ColorTextShadow],
		)
	}

	// elapsed seconds
	{
		DrawClock(dst, FPt(l.Clock.X-l.Tile*0.6, l.Clock.Y), l.Tile*0.4)

		DrawTextShadowed(
			dst, strconv.Itoa(hud.ElapsedSeconds),
			FPt(l.Clock.X+l.Tile*0.5, l.Clock.Y),
			textSize, 2,
			ColorTable[ColorHudText], ColorTable[ColorTextShadow],
		)
	}

	DrawRestartButton(dst, l.Restart, CursorFPt().In(l.Restart))
}

// =================================
// board
// =================================

func (a *App) DrawBoard(dst *eb.Image, l ScreenLayout) {
	w, h := a.Game.Width(), a.Game.Height()
	hitIndex := a.Game.HUD().HitIndex

	for _, cell := range a.Game.CellViews() {
		rect := GetBoardTileRect(l.Board, w, h, cell.Col, cell.Row)
		odd := IsOddTile(cell.Col, cell.Row)

		if !cell.Revealed {
			if odd {
				DrawFilledRect(dst, rect, ColorTable[ColorTileNormal2], false)
			} else {
				DrawFilledRect(dst, rect, ColorTable[ColorTileNormal1], false)
			}

			if cell.Flagged {
				DrawFlag(dst, rect)
			}
			continue
		}

		if cell.Index == hitIndex {
			DrawFilledRect(dst, rect, ColorTable[ColorMineHit], false)
		} else if odd {
			DrawFilledRect(dst, rect, ColorTable[ColorTileRevealed2], false)
		} else {
			DrawFilledRect(dst, rect, ColorTable[ColorTileRevealed1], false)
		}

		switch {
		case cell.IsMine:
			DrawMine(dst, rect)
		case cell.Contacts > 0:
			DrawTextCentered(
				dst, strconv.Itoa(cell.Contacts),
				FRectangleCenter(rect),
				rect.Dy()*0.7,
				NumberColor(cell.Contacts),
			)
		}
	}
}

func (a *App) DrawEndOverlay(dst *eb.Image, l ScreenLayout) {
	t := Clamp(f64(a.endTimer.Current)/f64(a.endTimer.Duration), 0, 1)

	DrawFilledRect(dst, l.Board, ColorFade(ColorTable[ColorOverlay], t), false)

	center := FRectangleCenter(l.Board)

	lines := []struct {
		text  string
		scale float64
	}{
		{a.Game.EndMessage(), 1.2},
		{a.Game.RecordMessage(), 0.7},
		{"press R to play again", 0.5},
	}

	y := center.Y - l.Tile*1.2
	for _, line := range lines {
		if line.text == "" {
			continue
		}

		// keep long lines inside the board
		size := min(l.Tile*line.scale, l.Board.Dx()*1.7/f64(len(line.text)))

		DrawTextShadowed(
			dst, line.text,
			FPt(center.X, y),
			size, 2,
			ColorFade(ColorTable[ColorMessage], t),
			ColorFade(ColorTable[ColorTextShadow], t),
		)

		y += l.Tile * 1.2
	}
}

// =================================
// icons
// =================================

func DrawFlag(dst *eb.Image, rect FRectangle) {
	size := min(rect.Dx(), rect.Dy())
	center := FRectangleCenter(rect)

	poleX := center.X - size*0.15
	poleTop := center.Y - size*0.3
	poleBottom := center.Y + size*0.3

	StrokeLine(
		dst,
		FPt(poleX, poleTop), FPt(poleX, poleBottom),
		size*0.07,
		ColorTable[ColorFlagPole],
		true,
	)

	p := ebv.Path{}
	p.MoveTo(f32(poleX), f32(poleTop))
	p.LineTo(f32(center.X+size*0.25), f32(poleTop+size*0.15))
	p.LineTo(f32(poleX), f32(poleTop+size*0.3))
	p.Close()

	FillPath(dst, &p, ColorTable[ColorFlag], true)
}

func DrawMine(dst *eb.Image, rect FRectangle) {
	size := min(rect.Dx(), rect.Dy())
	center := FRectangleCenter(rect)

	DrawFilledCircle(dst, center.X, center.Y, size*0.3, ColorTable[ColorMine], true)
}

func DrawClock(dst *eb.Image, center FPoint, radius float64) {
	DrawFilledCircle(dst, center.X, center.Y, radius, ColorTable[ColorClock], true)
	StrokeCircle(dst, center.X, center.Y, radius, radius*0.15, ColorTable[ColorTextShadow], true)

	handClr := ColorTable[ColorTextShadow]

	StrokeLine(dst, center, center.Add(FPt(0, -radius*0.65)), radius*0.15, handClr, true)
	StrokeLine(dst, center, center.Add(FPt(radius*0.45, 0)), radius*0.15, handClr, true)
}

func DrawRestartButton(dst *eb.Image, rect FRectangle, focused bool) {
	center := FRectangleCenter(rect)
	radius := min(rect.Dx(), rect.Dy()) * 0.5

	if focused {
		DrawFilledCircle(
			dst, center.X, center.Y, radius,
			ColorFade(ColorTable[ColorRestartButton], 0.25),
			true,
		)
	}

	clr := ColorTable[ColorRestartButton]
	arcRadius := radius * 0.55
	strokeWidth := radius * 0.16

	const startAngle = math.Pi * 0.1
	const endAngle = math.Pi * 1.7

	p := ebv.Path{}
	p.Arc(
		f32(center.X), f32(center.Y), f32(arcRadius),
		startAngle, endAngle,
		ebv.Clockwise,
	)
	StrokePath(dst, &p, strokeWidth, clr, true)

	// arrow head at the end of the arc, pointing along it
	end := center.Add(FPt(math.Cos(endAngle), math.Sin(endAngle)).Scale(arcRadius))
	normal := FPt(math.Cos(endAngle), math.Sin(endAngle))
	tangent := FPt(-math.Sin(endAngle), math.Cos(endAngle))

	headSize := radius * 0.3

	tip := end.Add(tangent.Scale(headSize))
	left := end.Add(normal.Scale(headSize))
	right := end.Sub(normal.Scale(headSize))

	head := ebv.Path{}
	head.MoveTo(f32(tip.X), f32(tip.Y))
	head.LineTo(f32(left.X), f32(left.Y))
	head.LineTo(f32(right.X), f32(right.Y))
	head.Close()

	FillPath(dst, &head, clr, true)
}

