package t2048

import (
	"testing"
)

// setBoard replaces the game's grid contents for a test.
func setBoard(g *Game, rows [][]int) {
	grid := gridFromRows(rows)
	grid.rng = g.rng
	g.grid = grid
}

func TestNewGame(t *testing.T) {
	g := New(Options{Seed: 1}, nil)

	opts := g.Options()
	if opts.Size != DefaultSize || opts.Target != DefaultTarget || opts.CellWidth != DefaultCellWidth {
		t.Errorf("zero options should fall back to defaults, got %+v", opts)
	}

	snap := g.Snapshot()
	if snap.EmptyCount() != DefaultSize*DefaultSize-1 {
		t.Errorf("new game should have one tile, got %d empty cells", snap.EmptyCount())
	}
	if snap.MaxTile != SeedValue || snap.State != StatePlaying || snap.Moves != 0 {
		t.Errorf("unexpected fresh snapshot: %+v", snap)
	}
}

func TestGameMoveCountsOnlyChanges(t *testing.T) {
	g := New(DefaultOptions(), nil)
	setBoard(g, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if r := g.Move(DirLeft); !r.Changed || r.Merges != 1 {
		t.Fatalf("first move should merge, got %+v", r)
	}
	if g.Moves() != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves())
	}

	setBoard(g, [][]int{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if r := g.Move(DirLeft); r.Changed {
		t.Errorf("blocked move should not change the grid, got %+v", r)
	}
	if g.Moves() != 1 {
		t.Errorf("no-op move should not be counted, Moves = %d", g.Moves())
	}
	if g.Snapshot().Merges != 1 {
		t.Errorf("Merges = %d, want 1", g.Snapshot().Merges)
	}
}

func TestGameOverIgnoresMoves(t *testing.T) {
	g := New(Options{Size: 2, Seed: 3}, nil)
	setBoard(g, [][]int{
		{16, 2},
		{4, 8},
	})
	g.gameOver = g.grid.IsGameOver()
	if !g.IsGameOver() {
		t.Fatal("board without moves should be game over")
	}

	before := g.Snapshot()
	for _, d := range Directions {
		if r := g.Move(d); r.Changed || !r.GameOver {
			t.Errorf("%s after game over should be ignored, got %+v", d, r)
		}
	}
	after := g.Snapshot()
	if after.Moves != before.Moves || after.State != StateGameOver {
		t.Errorf("state changed after game over: %+v", after)
	}
}

func TestGameOverDetectedByMove(t *testing.T) {
	g := New(Options{Size: 2, Seed: 1}, nil)
	// Sliding left leaves one empty cell at (1,1); the seeded 2 then
	// produces a full board with no merges.
	setBoard(g, [][]int{
		{4, 8},
		{0, 16},
	})

	r := g.Move(DirLeft)
	if !r.Changed || !r.HasSpawn {
		t.Fatalf("move should slide and seed, got %+v", r)
	}
	if !r.GameOver || !g.IsGameOver() {
		t.Errorf("board %v should be game over", g.Snapshot().Cells)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StateGameOver)
	}
}

func TestGameRestart(t *testing.T) {
	g := New(Options{Size: 2, Seed: 5}, nil)
	setBoard(g, [][]int{
		{16, 2},
		{4, 8},
	})
	g.gameOver = true
	g.moves = 12

	g.Restart()

	snap := g.Snapshot()
	if snap.State != StatePlaying || snap.Moves != 0 || snap.GameOver {
		t.Errorf("restart should reset the session, got %+v", snap)
	}
	if snap.EmptyCount() != 3 {
		t.Errorf("restarted 2x2 grid should have 3 empty cells, got %d", snap.EmptyCount())
	}
}

func TestGameTargetReachedContinues(t *testing.T) {
	g := New(Options{Target: 16}, nil)
	setBoard(g, [][]int{
		{8, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Move(DirLeft)

	snap := g.Snapshot()
	if !snap.Reached || snap.State != StateReached {
		t.Fatalf("reaching the target should be reported, got %+v", snap)
	}
	if r := g.Move(DirRight); !r.Changed {
		t.Errorf("play should continue past the target, got %+v", r)
	}
	if !g.Snapshot().Reached {
		t.Error("reached flag should stay latched")
	}
}

func TestGamePause(t *testing.T) {
	g := New(DefaultOptions(), nil)
	setBoard(g, [][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.TogglePause()
	if g.Snapshot().State != StatePaused {
		t.Fatalf("State = %s, want %s", g.Snapshot().State, StatePaused)
	}
	if r := g.Move(DirLeft); r.Changed {
		t.Errorf("moves should be ignored while paused, got %+v", r)
	}

	g.TogglePause()
	if r := g.Move(DirLeft); !r.Changed {
		t.Errorf("move after resume should apply, got %+v", r)
	}
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	g := New(Options{Size: 2}, nil)
	g.gameOver = true

	g.TogglePause()

	if g.Snapshot().State != StateGameOver {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StateGameOver)
	}
}

func TestSingleCellSessionIsOverAtStart(t *testing.T) {
	g := New(Options{Size: 1}, nil)

	if !g.IsGameOver() || g.Snapshot().State != StateGameOver {
		t.Fatalf("1x1 board with one tile should start game over, got %+v", g.Snapshot())
	}
	r := g.Move(DirLeft)
	if r.Changed || !r.GameOver {
		t.Errorf("move on a stuck board = %+v, want no change and game over", r)
	}

	g.Restart()
	if !g.Snapshot().GameOver {
		t.Error("restart on a 1x1 board should report game over again")
	}
}

func TestNoOpMoveLatchesGameOver(t *testing.T) {
	g := New(Options{Size: 2}, nil)
	setBoard(g, [][]int{
		{16, 2},
		{4, 8},
	})

	r := g.Move(DirUp)
	if r.Changed || !r.GameOver {
		t.Fatalf("move on a stuck board = %+v, want no change and game over", r)
	}
	snap := g.Snapshot()
	if !g.IsGameOver() || !snap.GameOver || snap.State != StateGameOver {
		t.Errorf("session should agree with the move result, got %+v", snap)
	}
	if snap.Moves != 0 {
		t.Errorf("Moves = %d, want 0", snap.Moves)
	}
}
