// Package t2048 implements the sliding-tile 2048 puzzle: the cell grid state
// machine, the game session that owns it, and drawing into a core.Screen.
package t2048

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
)

// Default session parameters.
const (
	DefaultSize      = 4
	DefaultTarget    = 2048
	DefaultCellWidth = 7
)

// Options configures a game session.
type Options struct {
	Size      int    // Grid dimension (Size×Size cells)
	Target    int    // Goal tile; reaching it is reported but play continues
	Seed      int64  // RNG seed for tile placement
	CellWidth int    // Rendered width of a cell, borders excluded
	Controls  string // Footer control hints; empty uses DefaultControls
}

// DefaultOptions returns the classic 4×4 game aiming for 2048.
func DefaultOptions() Options {
	return Options{
		Size:      DefaultSize,
		Target:    DefaultTarget,
		CellWidth: DefaultCellWidth,
	}
}

// Game is one play session. It owns its grid; callers hold a *Game instead
// of reaching for process-wide state. All methods are safe for concurrent
// use, and a move with its end-of-game lookahead runs under one lock.
type Game struct {
	mu     sync.Mutex
	opts   Options
	rng    *rand.Rand
	logger *log.Logger

	grid     *Grid
	moves    int
	merges   int
	reached  bool
	gameOver bool
	paused   bool
}

// New creates a session and seeds its first tile.
// A nil logger discards output.
func New(opts Options, logger *log.Logger) *Game {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Target <= 0 {
		opts.Target = DefaultTarget
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: logger,
	}
	g.reset()
	return g
}

// Options returns the session parameters.
func (g *Game) Options() Options {
	return g.opts
}

// Restart rebuilds the grid from empty state. It is allowed at any time,
// including after game over.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.logger.Info("restart", "moves", g.moves, "max_tile", g.grid.MaxValue())
	g.reset()
}

func (g *Game) reset() {
	g.grid = NewGrid(g.opts.Size, g.rng)
	g.moves = 0
	g.merges = 0
	g.reached = false
	g.gameOver = false
	g.paused = false
	if g.grid.IsGameOver() {
		g.gameOver = true
		g.logger.Info("game over", "max_tile", g.grid.MaxValue(), "moves", 0)
	}
}

// Move applies one direction command. Moves are ignored while paused or
// after game over; the returned result then reports no change.
func (g *Game) Move(d Direction) MoveResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver || g.paused {
		return MoveResult{Direction: d, GameOver: g.gameOver}
	}

	result := g.grid.Move(d)
	if !result.Changed {
		g.logger.Debug("no-op move", "direction", d)
		if result.GameOver {
			g.gameOver = true
			g.logger.Info("game over", "max_tile", g.grid.MaxValue(), "moves", g.moves)
		}
		return result
	}

	g.moves++
	g.merges += result.Merges
	g.logger.Debug("move",
		"direction", d,
		"merges", result.Merges,
		"spawn_x", result.Spawned.X,
		"spawn_y", result.Spawned.Y,
	)

	if !g.reached && g.grid.MaxValue() >= g.opts.Target {
		g.reached = true
		g.logger.Info("target reached", "target", g.opts.Target, "moves", g.moves)
	}

	if result.GameOver {
		g.gameOver = true
		g.logger.Info("game over", "max_tile", g.grid.MaxValue(), "moves", g.moves)
	}

	return result
}

// TogglePause flips the paused flag. Has no effect after game over.
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return
	}
	g.paused = !g.paused
}

// IsGameOver reports whether no further move is possible.
func (g *Game) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameOver
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.grid.MaxValue()
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.moves
}
