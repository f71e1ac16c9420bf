package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	ms "minesweep"
	"minesweep/misc"
)

var (
	FlagConfig ms.ConfigFlags

	FlagLog     string
	FlagSummary bool
)

func init() {
	FlagConfig.Register(flag.CommandLine)

	flag.StringVar(&FlagLog, "log", "", "write logs to this file")
	flag.BoolVar(&FlagSummary, "summary", true, "print the game summary on exit")
}

func main() {
	flag.Parse()

	// the terminal belongs to the ui
	if FlagLog != "" {
		logFile, err := os.OpenFile(FlagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0664)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		misc.Log.SetOutput(logFile)
	} else {
		misc.SetQuiet(io.Discard)
	}

	cfg, err := FlagConfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	game, err := ms.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(game), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		misc.ErrLogger.Printf("ui failed: %v", err)
		fmt.Fprintf(os.Stderr, "ui failed: %v\n", err)
		os.Exit(1)
	}

	if FlagSummary {
		fmt.Print(game.Summary())
	}
}
