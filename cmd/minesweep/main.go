package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"

	ms "minesweep"
	"minesweep/misc"
	"minesweep/sound"
)

var (
	ScreenWidth  float64 = 650
	ScreenHeight float64 = 650
)

var (
	FlagConfig ms.ConfigFlags

	FlagColors  string
	FlagMute    bool
	FlagPProf   bool
	FlagDev     bool
	FlagVerbose bool
)

func init() {
	FlagConfig.Register(flag.CommandLine)

	flag.StringVar(&FlagColors, "colors", "", "json color table, F10 saves to it in dev mode")
	flag.BoolVar(&FlagMute, "mute", false, "start with sound muted")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.BoolVar(&FlagDev, "dev", false, "enable developer hotkeys")
	flag.BoolVar(&FlagVerbose, "v", false, "verbose logging")
}

func main() {
	flag.Parse()

	misc.SetVerbose(FlagVerbose)

	cfg, err := FlagConfig.Load()
	if err != nil {
		misc.ErrLogger.Fatalf("failed to load config : %v", err)
	}

	if FlagPProf {
		go func() {
			misc.InfoLogger.Print("initializing pprof")
			misc.InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	colorTablePath := "colors.json"
	if FlagColors != "" {
		colorTablePath = FlagColors
		if err := LoadColorTable(FlagColors); err != nil {
			misc.WarnLogger.Printf("failed to load color table, using defaults : %v", err)
		}
	}

	InitClipboardManager()

	if err := sound.Init(FlagMute); err != nil {
		misc.WarnLogger.Printf("sound is disabled : %v", err)
	}

	LoadAssets()

	app, err := NewApp(cfg)
	if err != nil {
		misc.ErrLogger.Fatalf("failed to create game : %v", err)
	}
	app.Dev = FlagDev
	app.ColorTablePath = colorTablePath

	// keep tiles square, the hud takes two rows on top
	ScreenHeight = ScreenWidth * f64(cfg.Height+HudRows) / f64(cfg.Width)

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Minesweeper")

	if err := eb.RunGame(app); err != nil {
		misc.ErrLogger.Fatal(err)
	}
}
