package minesweeper

import (
	"fmt"
	"strings"
)

// CellView is a read-only snapshot of one cell for renderers.
type CellView struct {
	Index int
	Col   int
	Row   int

	Revealed bool
	Flagged  bool
	IsMine   bool
	Contacts int
}

type HUD struct {
	State GameState

	RemainingFlags int
	ElapsedSeconds int

	Started  bool
	Finished bool
	Won      bool
	Lost     bool

	// index of the mine that ended the game, NoCell otherwise
	HitIndex int

	BestTime    int
	HasBestTime bool

	Clicks  int
	Version int
}

func (g *Game) CellView(index int) (CellView, bool) {
	if !g.grid.IsIndexInBoard(index) {
		return CellView{}, false
	}

	c := g.grid.Cells[index]

	return CellView{
		Index:    index,
		Col:      c.Col,
		Row:      c.Row,
		Revealed: c.Revealed,
		Flagged:  c.Flagged,
		IsMine:   c.IsMine,
		Contacts: c.Contacts,
	}, true
}

func (g *Game) CellViews() []CellView {
	views := make([]CellView, g.grid.Len())
	for i := range views {
		views[i], _ = g.CellView(i)
	}
	return views
}

func (g *Game) HUD() HUD {
	best, hasBest := g.bestTimes.Record()

	return HUD{
		State: g.State(),

		RemainingFlags: g.remainingFlags,
		ElapsedSeconds: g.seconds,

		Started:  g.started,
		Finished: g.finished,
		Won:      g.Won(),
		Lost:     g.mineHit,

		HitIndex: g.hitIndex,

		BestTime:    best,
		HasBestTime: hasBest,

		Clicks:  g.clicks,
		Version: g.version,
	}
}

// =================================
// entry points for front ends
// =================================

func (g *Game) OnClick(index int, button Button) {
	g.Click(index, button)
}

func (g *Game) OnTick() {
	g.Tick()
}

func (g *Game) OnRestart() {
	g.Restart()
}

// =================================
// messages
// =================================

func (g *Game) EndMessage() string {
	switch g.State() {
	case GameStateLost:
		return "Sorry, YOU LOST!"
	case GameStateWon:
		return fmt.Sprintf("You won in %d seconds!", g.seconds)
	default:
		return ""
	}
}

// RecordMessage is empty until a game was won.
func (g *Game) RecordMessage() string {
	best, ok := g.bestTimes.Record()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Your current record is %d seconds", best)
}

// Summary is a short plain text report of the current game.
func (g *Game) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "minesweeper %dx%d, %d mines\n", g.grid.Width, g.grid.Height, len(g.mines))
	fmt.Fprintf(&sb, "game: %s\n", g.ID)
	fmt.Fprintf(&sb, "seed: %s\n", g.Seed)
	fmt.Fprintf(&sb, "state: %s, %d seconds, %d clicks\n", g.State(), g.seconds, g.clicks)

	if msg := g.RecordMessage(); msg != "" {
		sb.WriteString(msg)
		sb.WriteString("\n")
	}

	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			sb.WriteByte(cellRune(g.grid.Cells[g.grid.Index(x, y)]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func cellRune(c Cell) byte {
	switch {
	case c.Revealed && c.IsMine:
		return '*'
	case c.Revealed && c.Contacts == 0:
		return '.'
	case c.Revealed:
		return byte('0' + c.Contacts)
	case c.Flagged:
		return 'F'
	default:
		return '#'
	}
}
