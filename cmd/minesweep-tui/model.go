package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	ms "minesweep"
)

type tickMsg struct{}

func tick(tps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tps), func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

type model struct {
	game *ms.Game

	keys   keyMap
	styles styles

	cursorX int
	cursorY int

	width  int
	height int
}

func newModel(game *ms.Game) model {
	return model{
		game:    game,
		keys:    defaultKeyMap(),
		styles:  defaultStyles(),
		cursorX: game.Width() / 2,
		cursorY: game.Height() / 2,
	}
}

func (m model) Init() tea.Cmd {
	return tick(m.game.Config().TicksPerSecond)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.OnTick()
		return m, tick(m.game.Config().TicksPerSecond)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursorY = max(m.cursorY-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursorY = min(m.cursorY+1, m.game.Height()-1)
		case key.Matches(msg, m.keys.Left):
			m.cursorX = max(m.cursorX-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.cursorX = min(m.cursorX+1, m.game.Width()-1)
		case key.Matches(msg, m.keys.Reveal):
			m.game.OnClick(m.cursorIndex(), ms.ButtonLeft)
		case key.Matches(msg, m.keys.Flag):
			m.game.OnClick(m.cursorIndex(), ms.ButtonRight)
		case key.Matches(msg, m.keys.Restart):
			m.game.OnRestart()
		case key.Matches(msg, m.keys.SameBoard):
			m.game.RestartSameBoard()
		}
	}

	return m, nil
}

func (m model) cursorIndex() int {
	return m.game.Index(m.cursorX, m.cursorY)
}
