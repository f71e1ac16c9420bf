package main

import (
	"fmt"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	ms "minesweep"
	"minesweep/misc"
	"minesweep/sound"
)

type App struct {
	Game *ms.Game

	Dev            bool
	ColorTablePath string

	tickTimer Timer
	// time since the game ended, fades in the end overlay
	endTimer Timer
}

func NewApp(cfg ms.Config) (*App, error) {
	a := new(App)

	game, err := ms.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	a.Game = game

	a.tickTimer.Duration = time.Second / time.Duration(cfg.TicksPerSecond)
	a.endTimer.Duration = time.Millisecond * 300

	a.Game.OnAfterBoardReset = func() {
		a.tickTimer.Reset()
		a.endTimer.Reset()
		sound.Play(sound.EffectRestart, 0.6)
	}

	a.Game.OnGameEnd = func(didWin bool) {
		a.endTimer.Reset()
		if didWin {
			sound.Play(sound.EffectWin, 0.8)
		} else {
			sound.Play(sound.EffectExplode, 0.8)
		}
	}

	return a, nil
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	sound.Update()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// hotkeys
	// ==========================
	a.handleHotkeys()

	// ==========================
	// pointer
	// ==========================
	if pos, button, ok := JustPressedPointer(); ok {
		a.handlePointer(pos, button)
	}

	// ==========================
	// game ticks
	// ==========================
	a.tickTimer.TickUp()
	for range a.tickTimer.Consume() {
		a.Game.OnTick()
	}

	if a.Game.Finished() {
		a.endTimer.TickUp()
	}

	hud := a.Game.HUD()

	DebugPrint("game", a.Game.ID)
	DebugPrint("seed", a.Game.Seed.String()[:16])
	DebugPrint("state", hud.State)
	DebugPrint("clicks", hud.Clicks)
	DebugPrint("version", hud.Version)
	DebugPrint("ticks", a.Game.Ticks())
	DebugPrint("muted", sound.Muted())

	return nil
}

func (a *App) handleHotkeys() {
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		ToggleDebugMsgs()
	}

	if IsKeyJustPressed(ResetBoardKey) {
		a.Game.OnRestart()
	}

	if IsKeyJustPressed(ResetToSameBoardKey) {
		a.Game.RestartSameBoard()
	}

	if IsKeyJustPressed(CopySummaryKey) {
		if ClipboardWriteText(a.Game.Summary()) {
			misc.InfoLogger.Print("copied game summary to clipboard")
		}
	}

	if IsKeyJustPressed(ScreenshotKey) {
		RequestScreenshot()
	}

	if IsKeyJustPressed(MuteKey) {
		sound.SetMuted(!sound.Muted())
	}

	if a.Dev {
		if IsKeyJustPressed(InstantWinKey) {
			a.Game.SetBoardForInstantWin()
		}

		if IsKeyJustPressed(SaveColorTableKey) {
			SaveColorTable(a.ColorTablePath)
		}
	}
}

func (a *App) handlePointer(pos FPoint, button ms.Button) {
	layout := a.ScreenLayout()

	if pos.In(layout.Restart) {
		a.Game.OnRestart()
		return
	}

	if !pos.In(layout.Board) {
		return
	}

	x, y := MousePosToBoardPos(layout.Board, a.Game.Width(), a.Game.Height(), pos)

	a.click(a.Game.Index(x, y), button)
}

// click forwards to the game and picks a sound from what changed.
// Game end sounds come from OnGameEnd.
func (a *App) click(index int, button ms.Button) {
	before := a.Game.HUD()
	a.Game.OnClick(index, button)
	after := a.Game.HUD()

	switch {
	case after.Finished:
	case after.RemainingFlags < before.RemainingFlags:
		sound.Play(sound.EffectFlag, 0.5)
	case after.RemainingFlags > before.RemainingFlags:
		sound.Play(sound.EffectUnflag, 0.5)
	case after.Clicks > before.Clicks:
		sound.Play(sound.EffectReveal, 0.5)
	}
}

func (a *App) Draw(dst *eb.Image) {
	dst.Fill(ColorTable[ColorBg])

	layout := a.ScreenLayout()

	a.DrawHud(dst, layout)
	a.DrawBoard(dst, layout)

	if a.Game.Finished() {
		a.DrawEndOverlay(dst, layout)
	}

	DrawDebugMsgs(dst)

	TakeRequestedScreenshot(dst)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}
