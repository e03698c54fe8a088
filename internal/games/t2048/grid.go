package t2048

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// SeedValue is the value of every tile placed by seeding.
const SeedValue = 2

// Grid owns an n×n set of cells and implements move processing,
// random seeding and end-of-game detection.
type Grid struct {
	size        int
	cells       []Cell // row-major, index y*size + x
	fingerprint uint64 // contents at the end of the last seeding or reset
	rng         *rand.Rand
}

// MoveResult describes the outcome of a single move.
type MoveResult struct {
	Direction Direction
	Changed   bool  // Whether any tile slid or merged
	Merges    int   // Number of merges performed
	Spawned   Coord // Cell seeded after the move, valid when HasSpawn
	HasSpawn  bool
	GameOver  bool
}

// NewGrid creates an empty size×size grid and seeds one tile.
func NewGrid(size int, rng *rand.Rand) *Grid {
	if size < 0 {
		size = 0
	}
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
		rng:   rng,
	}
	g.placeRandom()
	g.fingerprint = g.Fingerprint()
	return g
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// Cell returns the cell at (x, y), or nil when the coordinate is out of range.
func (g *Grid) Cell(x, y int) *Cell {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return nil
	}
	return &g.cells[y*g.size+x]
}

func (g *Grid) at(c Coord) *Cell {
	return g.Cell(c.X, c.Y)
}

// IsFull reports whether no cell is empty.
func (g *Grid) IsFull() bool {
	for i := range g.cells {
		if g.cells[i].IsEmpty() {
			return false
		}
	}
	return true
}

// EmptyCoords returns the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCoords() []Coord {
	var coords []Coord
	for y := range g.size {
		for x := range g.size {
			if g.cells[y*g.size+x].IsEmpty() {
				coords = append(coords, Coord{X: x, Y: y})
			}
		}
	}
	return coords
}

// MaxValue returns the highest tile value on the grid, 0 when empty.
func (g *Grid) MaxValue() int {
	maxVal := 0
	for i := range g.cells {
		if v := g.cells[i].Value(); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Values returns the tile values row by row, top to bottom, left to right.
// Empty cells are 0.
func (g *Grid) Values() [][]int {
	rows := make([][]int, g.size)
	for y := range g.size {
		rows[y] = make([]int, g.size)
		for x := range g.size {
			rows[y][x] = g.cells[y*g.size+x].Value()
		}
	}
	return rows
}

// Fingerprint hashes the value and merge flag of every cell.
func (g *Grid) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [9]byte
	for i := range g.cells {
		binary.LittleEndian.PutUint64(buf[:8], uint64(g.cells[i].value))
		buf[8] = 0
		if g.cells[i].modified {
			buf[8] = 1
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

// ResetCells clears every merge flag and refreshes the cached fingerprint.
func (g *Grid) ResetCells() {
	g.clearFlags()
	g.fingerprint = g.Fingerprint()
}

func (g *Grid) clearFlags() {
	for i := range g.cells {
		g.cells[i].Reset()
	}
}

// Process slides and merges every line toward the edge of d, then compacts
// each line. It does not seed. Returns the number of merges.
func (g *Grid) Process(d Direction) int {
	merges := 0
	for _, line := range traversalFor(d, g.size).lines() {
		merges += g.processLine(line)
		g.compactLine(line)
	}
	return merges
}

// processLine walks the line from the target edge inward, pushing each tile
// into an empty neighbor or merging it into an equal one.
func (g *Grid) processLine(line []Coord) int {
	merges := 0
	for i := 0; i+1 < len(line); i++ {
		cell, next := g.at(line[i]), g.at(line[i+1])
		if cell.IsEmpty() {
			continue
		}

		switch {
		case next.IsEmpty():
			cell.moveTo(next)
		case next.Value() == cell.Value() && next.CanBeModified() && cell.CanBeModified():
			next.Double()
			cell.Empty()
			merges++
		}
	}
	return merges
}

// compactLine pulls every tile toward the start of the line so no gap is
// left between two tiles.
func (g *Grid) compactLine(line []Coord) {
	for i := range line {
		cell := g.at(line[i])
		if !cell.IsEmpty() {
			continue
		}
		for j := i + 1; j < len(line); j++ {
			if next := g.at(line[j]); !next.IsEmpty() {
				next.moveTo(cell)
				break
			}
		}
	}
}

// HasChanged reports whether the contents differ from the cached fingerprint.
func (g *Grid) HasChanged() bool {
	return g.Fingerprint() != g.fingerprint
}

// SeedRandom places a value-2 tile on a uniformly chosen empty cell when the
// grid changed since the last seeding, then refreshes the fingerprint.
// Returns the seeded coordinate and whether a tile was placed.
func (g *Grid) SeedRandom() (Coord, bool) {
	if !g.HasChanged() {
		return Coord{}, false
	}

	spawned, ok := g.placeRandom()
	g.fingerprint = g.Fingerprint()
	return spawned, ok
}

// placeRandom sets a uniformly chosen empty cell to SeedValue.
// It is a no-op on a full grid.
func (g *Grid) placeRandom() (Coord, bool) {
	empty := g.EmptyCoords()
	if len(empty) == 0 {
		return Coord{}, false
	}
	spawned := empty[g.rng.Intn(len(empty))]
	g.at(spawned).SetValue(SeedValue)
	return spawned, true
}

// Move runs one full move cycle: clear flags, process, seed if anything
// changed, then check for the end of the game.
func (g *Grid) Move(d Direction) MoveResult {
	g.ResetCells()

	result := MoveResult{Direction: d}
	result.Merges = g.Process(d)
	result.Changed = g.HasChanged()
	result.Spawned, result.HasSpawn = g.SeedRandom()
	result.GameOver = g.IsGameOver()
	return result
}

// gridState is a saved copy of every cell, ordered like Grid.cells.
type gridState []Cell

func (g *Grid) save() gridState {
	state := make(gridState, len(g.cells))
	copy(state, g.cells)
	return state
}

func (g *Grid) restore(state gridState) {
	copy(g.cells, state)
}

// IsGameOver reports whether no direction can slide or merge anything.
// Each direction is tried from the current contents, and the grid is left
// exactly as it was found.
func (g *Grid) IsGameOver() bool {
	if !g.IsFull() {
		return false
	}

	saved := g.save()
	defer g.restore(saved)

	for _, d := range Directions {
		g.restore(saved)
		g.clearFlags()
		g.Process(d)
		if !g.IsFull() {
			return false
		}
	}
	return true
}
