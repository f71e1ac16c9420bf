package minesweeper

import (
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"minesweep/misc"
)

type GameState int

const (
	GameStateNotStarted GameState = iota
	GameStatePlaying
	GameStateWon
	GameStateLost
)

func (s GameState) String() string {
	switch s {
	case GameStateNotStarted:
		return "not started"
	case GameStatePlaying:
		return "playing"
	case GameStateWon:
		return "won"
	case GameStateLost:
		return "lost"
	default:
		return "unknown"
	}
}

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

type Game struct {
	ID   uuid.UUID
	Seed Seed

	Log logrus.FieldLogger

	OnAfterBoardReset func()
	OnGameEnd         func(didWin bool)

	config Config

	grid  Grid
	mines []int
	rng   *rand.Rand

	remainingFlags int
	clicks         int
	ticks          int
	seconds        int

	started  bool
	finished bool
	mineHit  bool
	hitIndex int

	// board generation, bumped when the first click forces a new board
	version int
	// flagged cell indices per version, carried over to the next board
	flagLedger map[int]mapset.Set[int]

	bestTimes BestTimes
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := new(Game)

	g.config = cfg
	g.Log = misc.Log

	seed := GetSeed()
	if cfg.Seed != "" {
		seed, _ = ParseSeed(cfg.Seed) // already validated
	}

	if err := g.resetBoard(seed); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Game) resetBoard(seed Seed) error {
	cfg := g.config

	grid := NewGrid(cfg.Width, cfg.Height)
	rng := seed.Rand()

	mines, err := grid.PlaceMines(rng, cfg.MineCount)
	if err != nil {
		return err
	}
	grid.ComputeContacts()

	g.ID = uuid.New()
	g.Seed = seed
	g.rng = rng

	g.grid = grid
	g.mines = mines

	g.remainingFlags = cfg.MineCount
	g.clicks = 0
	g.ticks = 0
	g.seconds = 0

	g.started = false
	g.finished = false
	g.mineHit = false
	g.hitIndex = NoCell

	g.version = 0
	g.flagLedger = make(map[int]mapset.Set[int])

	g.logger().Infof("new %dx%d board with %d mines", cfg.Width, cfg.Height, cfg.MineCount)

	if g.OnAfterBoardReset != nil {
		g.OnAfterBoardReset()
	}

	return nil
}

func (g *Game) logger() logrus.FieldLogger {
	log := g.Log
	if log == nil {
		log = misc.Log
	}
	return log.WithFields(logrus.Fields{
		"game":    g.ID.String(),
		"seed":    g.Seed.String()[:8],
		"version": g.version,
	})
}

// Restart throws the current board away and deals a new one.
// Best times are kept.
func (g *Game) Restart() {
	g.restart(GetSeed())
}

// RestartSameBoard deals the board of the current seed again.
func (g *Game) RestartSameBoard() {
	g.restart(g.Seed)
}

func (g *Game) restart(seed Seed) {
	if err := g.resetBoard(seed); err != nil {
		// config was validated in NewGame
		g.logger().WithError(err).Error("failed to reset board")
	}
}

// =================================
// click handling
// =================================

func (g *Game) Click(index int, button Button) {
	if g.finished || !g.grid.IsIndexInBoard(index) {
		return
	}

	switch button {
	case ButtonRight:
		g.toggleFlag(index)
	case ButtonLeft:
		cell := g.grid.Cells[index]
		if cell.Flagged || cell.Revealed {
			return
		}
		g.ensureSafeFirstClick(index)
		g.applyClick(index)
	}
}

func (g *Game) toggleFlag(index int) {
	cell := &g.grid.Cells[index]
	if cell.Revealed {
		return
	}

	// NOTE: no floor here, flagging more cells than there are mines
	// makes the counter go negative
	if cell.Flagged {
		g.remainingFlags++
	} else {
		g.remainingFlags--
	}
	cell.Flagged = !cell.Flagged
}

// ensureSafeFirstClick deals a new board when the very first click
// would land on a mine or a numbered cell.
// Flags planted before the first click survive the new board.
func (g *Game) ensureSafeFirstClick(index int) {
	if g.clicks != 0 {
		return
	}

	cell := g.grid.Cells[index]
	if !cell.IsMine && cell.Contacts == 0 {
		return
	}

	g.storeFlags()

	except := g.grid.SafeZone(index)
	if g.grid.Len()-len(except) < g.config.MineCount {
		// not enough room for a zero opening, at least don't explode
		except = []int{index}
	}

	grid := NewGrid(g.config.Width, g.config.Height)
	mines, err := grid.PlaceMines(g.rng, g.config.MineCount, except...)
	if err != nil {
		g.logger().WithError(err).Error("failed to regenerate board")
		return
	}
	grid.ComputeContacts()

	g.grid = grid
	g.mines = mines

	g.restoreFlags()

	g.ticks = 0
	g.seconds = 0
	g.version++

	g.logger().WithField("index", index).Debug("first click was unsafe, board regenerated")
}

func (g *Game) storeFlags() {
	flags := mapset.New[int]()
	for _, i := range g.grid.FlaggedIndices() {
		flags.Put(i)
	}
	g.flagLedger[g.version] = flags
}

func (g *Game) restoreFlags() {
	flags, ok := g.flagLedger[g.version]
	if !ok {
		return
	}
	flags.Each(func(i int) {
		if g.grid.IsIndexInBoard(i) {
			g.grid.Cells[i].Flagged = true
		}
	})
}

func (g *Game) applyClick(index int) {
	g.started = true
	g.clicks++

	g.grid.Reveal(index)

	if g.grid.Cells[index].IsMine {
		g.lose(index)
		return
	}

	g.checkWin()
}

func (g *Game) lose(index int) {
	g.mineHit = true
	g.finished = true
	g.hitIndex = index

	for _, m := range g.mines {
		g.grid.Cells[m].Revealed = true
	}

	g.logger().WithFields(logrus.Fields{
		"index":   index,
		"seconds": g.seconds,
	}).Info("mine hit")

	if g.OnGameEnd != nil {
		g.OnGameEnd(false)
	}
}

// =================================
// time and win
// =================================

// Tick advances the clock by one tick while a game is running.
func (g *Game) Tick() {
	if g.started && !g.finished {
		g.ticks++
		g.seconds = g.ticks / g.config.TicksPerSecond
	}

	g.checkWin()
}

// CheckWin finishes the game if every safe cell is revealed
// and reports whether the game is won.
func (g *Game) CheckWin() bool {
	g.checkWin()
	return g.Won()
}

func (g *Game) checkWin() {
	if g.finished || g.mineHit {
		return
	}

	if !g.grid.CheckWin() {
		return
	}

	g.finished = true
	g.bestTimes.Add(g.seconds)

	g.logger().WithField("seconds", g.seconds).Info("board cleared")

	if g.OnGameEnd != nil {
		g.OnGameEnd(true)
	}
}

// =================================
// debug boards
// =================================

// SetMines swaps the mine layout of the current board for a fixed one.
// Flags are kept, everything else on the board is covered again.
func (g *Game) SetMines(indices ...int) error {
	grid := NewGrid(g.config.Width, g.config.Height)

	mines, err := grid.SetMines(indices...)
	if err != nil {
		return err
	}
	grid.ComputeContacts()

	for _, i := range g.grid.FlaggedIndices() {
		grid.Cells[i].Flagged = true
	}

	g.grid = grid
	g.mines = mines
	g.remainingFlags = len(mines) - len(grid.FlaggedIndices())

	return nil
}

// SetBoardForInstantWin reveals every safe cell.
func (g *Game) SetBoardForInstantWin() {
	if g.finished {
		return
	}

	for i := range g.grid.Cells {
		cell := &g.grid.Cells[i]
		if cell.IsMine {
			continue
		}
		if cell.Flagged {
			cell.Flagged = false
			g.remainingFlags++
		}
		cell.Revealed = true
	}

	g.started = true
	g.checkWin()
}

// =================================
// getters
// =================================

func (g *Game) Config() Config {
	return g.config
}

func (g *Game) Width() int {
	return g.grid.Width
}

func (g *Game) Height() int {
	return g.grid.Height
}

func (g *Game) CellCount() int {
	return g.grid.Len()
}

func (g *Game) Index(x, y int) int {
	if !g.grid.IsPosInBoard(x, y) {
		return NoCell
	}
	return g.grid.Index(x, y)
}

func (g *Game) State() GameState {
	switch {
	case g.mineHit:
		return GameStateLost
	case g.finished:
		return GameStateWon
	case g.started:
		return GameStatePlaying
	default:
		return GameStateNotStarted
	}
}

func (g *Game) Won() bool {
	return g.finished && !g.mineHit
}

func (g *Game) Lost() bool {
	return g.mineHit
}

func (g *Game) Finished() bool {
	return g.finished
}

func (g *Game) Started() bool {
	return g.started
}

func (g *Game) RemainingFlags() int {
	return g.remainingFlags
}

func (g *Game) MineCount() int {
	return len(g.mines)
}

func (g *Game) Mines() []int {
	return slices.Clone(g.mines)
}

func (g *Game) Clicks() int {
	return g.clicks
}

func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) ElapsedSeconds() int {
	return g.seconds
}

func (g *Game) Version() int {
	return g.version
}

func (g *Game) BestTimes() []int {
	return g.bestTimes.Sorted()
}

func (g *Game) BestTime() (int, bool) {
	return g.bestTimes.Record()
}
