package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateReached  GameStateType = "target_reached"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a copy of everything the renderer needs.
type Snapshot struct {
	Size     int
	Cells    [][]int // Row-major, top to bottom, left to right; 0 is empty
	MaxTile  int
	Moves    int
	Merges   int
	Target   int
	Reached  bool
	GameOver bool
	State    GameStateType
}

// Snapshot returns the current board and session state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.reached:
		state = StateReached
	}

	return Snapshot{
		Size:     g.grid.Size(),
		Cells:    g.grid.Values(),
		MaxTile:  g.grid.MaxValue(),
		Moves:    g.moves,
		Merges:   g.merges,
		Target:   g.opts.Target,
		Reached:  g.reached,
		GameOver: g.gameOver,
		State:    state,
	}
}

// EmptyCount returns the number of empty cells in the snapshot.
func (s Snapshot) EmptyCount() int {
	n := 0
	for _, row := range s.Cells {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}
