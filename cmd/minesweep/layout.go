package main

// rows of tiles the hud bar takes above the board
const HudRows = 2

type ScreenLayout struct {
	Tile float64

	Hud     FRectangle
	Board   FRectangle
	Restart FRectangle

	Clock FPoint
	Flags FPoint
}

func (a *App) ScreenLayout() ScreenLayout {
	var l ScreenLayout

	w, h := a.Game.Width(), a.Game.Height()

	l.Tile = min(ScreenWidth/f64(w), ScreenHeight/f64(h+HudRows))

	boardW := l.Tile * f64(w)
	totalH := l.Tile * f64(h+HudRows)

	x0 := (ScreenWidth - boardW) * 0.5
	y0 := (ScreenHeight - totalH) * 0.5

	l.Hud = FRect(x0, y0, x0+boardW, y0+l.Tile*HudRows)
	l.Board = FRect(x0, l.Hud.Max.Y, x0+boardW, l.Hud.Max.Y+l.Tile*f64(h))

	center := FRectangleCenter(l.Hud)

	l.Flags = center
	l.Clock = FPt(center.X-boardW*0.25, center.Y)

	restartSize := min(l.Tile*1.4, l.Hud.Dy())
	l.Restart = CenterFRectangle(
		FRectWH(restartSize, restartSize),
		center.X+boardW*0.25, center.Y,
	)

	return l
}
