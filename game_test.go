package minesweeper

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()

	if cfg.Seed == "" {
		cfg.Seed = fmt.Sprintf("%064x", 42)
	}

	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	return g
}

// a 5x1 strip with a mine in the middle, cleared with two left clicks
func newStripGame(t *testing.T) *Game {
	t.Helper()

	g := newTestGame(t, Config{Width: 5, Height: 1, MineCount: 1, TicksPerSecond: 1})
	if err := g.SetMines(2); err != nil {
		t.Fatalf("SetMines failed: %v", err)
	}

	return g
}

func TestNewGameInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero width", Config{Width: 0, Height: 5, MineCount: 1, TicksPerSecond: 17}, ErrInvalidBoardSize},
		{"negative height", Config{Width: 5, Height: -1, MineCount: 1, TicksPerSecond: 17}, ErrInvalidBoardSize},
		{"mines fill board", Config{Width: 3, Height: 3, MineCount: 9, TicksPerSecond: 17}, ErrTooManyMines},
		{"negative mines", Config{Width: 3, Height: 3, MineCount: -1, TicksPerSecond: 17}, ErrTooManyMines},
		{"no ticks", Config{Width: 3, Height: 3, MineCount: 1, TicksPerSecond: 0}, ErrInvalidTickRate},
		{"bad seed", Config{Width: 3, Height: 3, MineCount: 1, TicksPerSecond: 17, Seed: "xyz"}, ErrInvalidSeed},
		{"short seed", Config{Width: 3, Height: 3, MineCount: 1, TicksPerSecond: 17, Seed: "abcd"}, ErrInvalidSeed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGame(tc.cfg)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got error %v, want %v", err, tc.want)
			}
			if g != nil {
				t.Fatal("got a game for an invalid config")
			}
		})
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	hud := g.HUD()
	if hud.State != GameStateNotStarted || hud.Started || hud.Finished {
		t.Fatalf("fresh game is not idle: %+v", hud)
	}
	if hud.RemainingFlags != 40 {
		t.Fatalf("remaining flags = %d, want 40", hud.RemainingFlags)
	}
	if hud.HasBestTime {
		t.Fatal("fresh game has a best time")
	}
	if g.MineCount() != 40 || g.CellCount() != 18*18 {
		t.Fatalf("got %d mines on %d cells", g.MineCount(), g.CellCount())
	}

	for _, v := range g.CellViews() {
		if v.Revealed || v.Flagged {
			t.Fatalf("cell %d is not covered", v.Index)
		}
	}
}

func TestFlagAccounting(t *testing.T) {
	g := newTestGame(t, Config{Width: 5, Height: 5, MineCount: 3, TicksPerSecond: 17})

	for _, i := range []int{0, 1, 2} {
		g.Click(i, ButtonRight)
	}
	if got := g.RemainingFlags(); got != 0 {
		t.Fatalf("remaining flags = %d, want 0", got)
	}

	// more flags than mines goes below zero
	g.Click(3, ButtonRight)
	g.Click(4, ButtonRight)
	if got := g.RemainingFlags(); got != -2 {
		t.Fatalf("remaining flags = %d, want -2", got)
	}

	for _, i := range []int{0, 1, 2, 3, 4} {
		g.Click(i, ButtonRight)
	}
	if got := g.RemainingFlags(); got != 3 {
		t.Fatalf("remaining flags = %d, want 3", got)
	}

	for _, v := range g.CellViews() {
		if v.Flagged {
			t.Fatalf("cell %d still flagged", v.Index)
		}
	}
}

func TestFlagIgnoredOnRevealed(t *testing.T) {
	g := newStripGame(t)

	g.Click(0, ButtonLeft)
	g.Click(0, ButtonRight)

	v, _ := g.CellView(0)
	if v.Flagged {
		t.Fatal("revealed cell got flagged")
	}
	if got := g.RemainingFlags(); got != 1 {
		t.Fatalf("remaining flags = %d, want 1", got)
	}
}

func TestLeftClickOnFlagIsNoop(t *testing.T) {
	g := newStripGame(t)

	g.Click(0, ButtonRight)
	g.Click(0, ButtonLeft)

	v, _ := g.CellView(0)
	if v.Revealed || g.Clicks() != 0 || g.Started() {
		t.Fatalf("click on a flag did something: %+v, clicks %d", v, g.Clicks())
	}
}

func TestClickOutOfRange(t *testing.T) {
	g := newStripGame(t)
	before := g.HUD()

	for _, i := range []int{NoCell, -10, 5, 1000} {
		g.Click(i, ButtonLeft)
		g.Click(i, ButtonRight)
	}

	if g.HUD() != before {
		t.Fatalf("out of range clicks changed the game: %+v", g.HUD())
	}
	if _, ok := g.CellView(5); ok {
		t.Fatal("CellView(5) on a 5 cell board reported ok")
	}
}

func TestFirstClickSafety(t *testing.T) {
	for seed := 0; seed < 40; seed++ {
		cfg := Config{
			Width: 9, Height: 9, MineCount: 10, TicksPerSecond: 17,
			Seed: fmt.Sprintf("%064x", seed),
		}

		t.Run(fmt.Sprintf("mine/%d", seed), func(t *testing.T) {
			g := newTestGame(t, cfg)
			checkSafeFirstClick(t, g, g.Mines()[0])
		})

		t.Run(fmt.Sprintf("number/%d", seed), func(t *testing.T) {
			g := newTestGame(t, cfg)

			numbered := NoCell
			for _, v := range g.CellViews() {
				if !v.IsMine && v.Contacts > 0 {
					numbered = v.Index
					break
				}
			}
			if numbered == NoCell {
				t.Skip("board has no numbered cell")
			}

			checkSafeFirstClick(t, g, numbered)
		})
	}
}

func checkSafeFirstClick(t *testing.T, g *Game, index int) {
	t.Helper()

	// two flags away from the click
	var flags []int
	for i := 0; len(flags) < 2; i++ {
		if i != index {
			flags = append(flags, i)
		}
	}
	for _, i := range flags {
		g.Click(i, ButtonRight)
	}

	g.Click(index, ButtonLeft)

	if g.Lost() {
		t.Fatal("first click lost the game")
	}
	if g.Version() != 1 {
		t.Fatalf("version = %d, want 1", g.Version())
	}
	if g.Clicks() != 1 || !g.Started() {
		t.Fatalf("clicks = %d, started = %v", g.Clicks(), g.Started())
	}

	v, _ := g.CellView(index)
	if !v.Revealed || v.IsMine || v.Contacts != 0 {
		t.Fatalf("first clicked cell is %+v", v)
	}

	for _, i := range flags {
		fv, _ := g.CellView(i)
		if !fv.Flagged || fv.Revealed {
			t.Fatalf("flag at %d was lost: %+v", i, fv)
		}
	}
	if got := g.RemainingFlags(); got != g.MineCount()-len(flags) {
		t.Fatalf("remaining flags = %d, want %d", got, g.MineCount()-len(flags))
	}
	if g.MineCount() != 10 {
		t.Fatalf("new board has %d mines", g.MineCount())
	}
}

func TestSafeFirstClickKeepsBoard(t *testing.T) {
	g := newTestGame(t, Config{Width: 9, Height: 9, MineCount: 10, TicksPerSecond: 17})

	zero := NoCell
	for _, v := range g.CellViews() {
		if !v.IsMine && v.Contacts == 0 {
			zero = v.Index
			break
		}
	}
	if zero == NoCell {
		t.Skip("board has no zero cell")
	}

	mines := g.Mines()
	g.Click(zero, ButtonLeft)

	if g.Version() != 0 {
		t.Fatalf("version = %d, want 0", g.Version())
	}
	if !slices.Equal(mines, g.Mines()) {
		t.Fatal("mines moved on a safe first click")
	}
}

func TestFirstClickOnDenseBoard(t *testing.T) {
	// no room for a zero opening, the click must still be safe
	g := newTestGame(t, Config{Width: 3, Height: 3, MineCount: 8, TicksPerSecond: 17})

	safe := NoCell
	for _, v := range g.CellViews() {
		if !v.IsMine {
			safe = v.Index
		}
	}

	clicked := (safe + 1) % 9
	g.Click(clicked, ButtonLeft)

	if g.Lost() {
		t.Fatal("first click lost the game")
	}
	if !g.Won() {
		t.Fatal("revealing the only safe cell did not win")
	}
	v, _ := g.CellView(clicked)
	if v.IsMine || !v.Revealed {
		t.Fatalf("clicked cell is %+v", v)
	}
}

func TestLoss(t *testing.T) {
	g := newTestGame(t, Config{Width: 5, Height: 1, MineCount: 2, TicksPerSecond: 1})
	if err := g.SetMines(2, 4); err != nil {
		t.Fatal(err)
	}

	g.Click(0, ButtonLeft)
	g.Tick()
	g.Click(2, ButtonLeft)

	hud := g.HUD()
	if !hud.Lost || !hud.Finished || hud.Won || hud.State != GameStateLost {
		t.Fatalf("hud after hitting a mine: %+v", hud)
	}
	if hud.HitIndex != 2 {
		t.Fatalf("hit index = %d, want 2", hud.HitIndex)
	}

	for _, m := range []int{2, 4} {
		if v, _ := g.CellView(m); !v.Revealed {
			t.Fatalf("mine %d not revealed after loss", m)
		}
	}

	if g.EndMessage() != "Sorry, YOU LOST!" {
		t.Fatalf("end message = %q", g.EndMessage())
	}

	// the board is frozen
	g.Tick()
	g.Click(3, ButtonLeft)
	g.Click(3, ButtonRight)

	if g.ElapsedSeconds() != 1 {
		t.Fatalf("clock moved after loss: %d", g.ElapsedSeconds())
	}
	if v, _ := g.CellView(3); v.Revealed || v.Flagged {
		t.Fatal("finished board accepted a click")
	}
	if _, ok := g.BestTime(); ok {
		t.Fatal("a loss was recorded as a best time")
	}
}

func TestTickSeconds(t *testing.T) {
	g := newTestGame(t, Config{Width: 5, Height: 1, MineCount: 1, TicksPerSecond: 17})
	if err := g.SetMines(2); err != nil {
		t.Fatal(err)
	}

	for range 20 {
		g.Tick()
	}
	if g.Ticks() != 0 {
		t.Fatalf("clock ran before the first click: %d ticks", g.Ticks())
	}

	g.Click(0, ButtonLeft)
	for range 34 {
		g.Tick()
	}
	if g.ElapsedSeconds() != 2 {
		t.Fatalf("34 ticks at 17/s = %d seconds, want 2", g.ElapsedSeconds())
	}

	for range 16 {
		g.Tick()
	}
	if g.ElapsedSeconds() != 2 {
		t.Fatalf("50 ticks at 17/s = %d seconds, want 2", g.ElapsedSeconds())
	}
}

func TestWinAndBestTimes(t *testing.T) {
	g := newStripGame(t)

	winIn := func(seconds int) {
		t.Helper()

		g.Click(0, ButtonLeft)
		for range seconds {
			g.Tick()
		}
		if g.Won() {
			t.Fatal("won before the last click")
		}
		g.Click(4, ButtonLeft)

		if !g.Won() || !g.HUD().Won || g.State() != GameStateWon {
			t.Fatalf("not won: %+v", g.HUD())
		}
		if g.ElapsedSeconds() != seconds {
			t.Fatalf("won in %d seconds, want %d", g.ElapsedSeconds(), seconds)
		}
	}

	winIn(12)

	// ticking a finished game records nothing new
	g.Tick()
	g.Tick()
	if got := g.BestTimes(); !slices.Equal(got, []int{12}) {
		t.Fatalf("best times = %v, want [12]", got)
	}

	g.Restart()
	if err := g.SetMines(2); err != nil {
		t.Fatal(err)
	}
	winIn(7)

	best, ok := g.BestTime()
	if !ok || best != 7 {
		t.Fatalf("record = %d (%v), want 7", best, ok)
	}
	if got := g.BestTimes(); !slices.Equal(got, []int{7, 12}) {
		t.Fatalf("best times = %v, want [7 12]", got)
	}
	if got := g.EndMessage(); got != "You won in 7 seconds!" {
		t.Fatalf("end message = %q", got)
	}
	if got := g.RecordMessage(); got != "Your current record is 7 seconds" {
		t.Fatalf("record message = %q", got)
	}
}

func TestInstantWin(t *testing.T) {
	g := newTestGame(t, Config{Width: 6, Height: 6, MineCount: 5, TicksPerSecond: 17})
	g.Click(g.Mines()[0], ButtonRight)

	if g.CheckWin() {
		t.Fatal("covered board reported a win")
	}

	g.SetBoardForInstantWin()

	if !g.CheckWin() || !g.HUD().Won {
		t.Fatalf("not won: %+v", g.HUD())
	}
	best, ok := g.BestTime()
	if !ok || best != 0 {
		t.Fatalf("record = %d (%v), want 0", best, ok)
	}
}

func TestRestart(t *testing.T) {
	g := newStripGame(t)

	g.Click(0, ButtonLeft)
	for range 3 {
		g.Tick()
	}
	g.Click(4, ButtonLeft)
	if !g.Won() {
		t.Fatal("strip was not cleared")
	}

	id := g.ID
	g.OnRestart()

	hud := g.HUD()
	if hud.State != GameStateNotStarted || hud.Clicks != 0 || hud.ElapsedSeconds != 0 || hud.Version != 0 {
		t.Fatalf("restart did not reset: %+v", hud)
	}
	if hud.RemainingFlags != 1 {
		t.Fatalf("remaining flags = %d, want 1", hud.RemainingFlags)
	}
	if !hud.HasBestTime || hud.BestTime != 3 {
		t.Fatalf("best time lost on restart: %+v", hud)
	}
	if g.ID == id {
		t.Fatal("restart kept the game id")
	}
	for _, v := range g.CellViews() {
		if v.Revealed || v.Flagged {
			t.Fatalf("cell %d not covered after restart", v.Index)
		}
	}
}

func TestRestartSameBoard(t *testing.T) {
	g := newTestGame(t, Config{Width: 12, Height: 12, MineCount: 20, TicksPerSecond: 17})

	mines := g.Mines()
	seed := g.Seed

	g.RestartSameBoard()
	if g.Seed != seed || !slices.Equal(mines, g.Mines()) {
		t.Fatal("same board restart dealt a different board")
	}

	g.Restart()
	if g.Seed == seed {
		t.Fatal("restart reused the seed")
	}
}

func TestCallbacks(t *testing.T) {
	g := newStripGame(t)

	var resets int
	var ends []bool
	g.OnAfterBoardReset = func() { resets++ }
	g.OnGameEnd = func(didWin bool) { ends = append(ends, didWin) }

	g.Click(0, ButtonLeft)
	g.Click(4, ButtonLeft)

	g.Restart()
	if err := g.SetMines(2); err != nil {
		t.Fatal(err)
	}
	g.Click(0, ButtonLeft)
	g.Click(2, ButtonLeft)

	if resets != 1 {
		t.Fatalf("OnAfterBoardReset called %d times, want 1", resets)
	}
	if !slices.Equal(ends, []bool{true, false}) {
		t.Fatalf("OnGameEnd calls = %v, want [true false]", ends)
	}
}

func TestSummary(t *testing.T) {
	g := newStripGame(t)
	g.Click(0, ButtonLeft)
	g.Click(3, ButtonRight)

	summary := g.Summary()
	want := "minesweeper 5x1, 1 mines\n"
	if len(summary) < len(want) || summary[:len(want)] != want {
		t.Fatalf("summary header = %q", summary)
	}
	if got := summary[len(summary)-6:]; got != ".1#F#\n" {
		t.Fatalf("summary board = %q, want %q", got, ".1#F#\n")
	}
}
