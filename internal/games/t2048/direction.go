package t2048

import "strings"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in lookahead order.
var Directions = []Direction{DirDown, DirUp, DirRight, DirLeft}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name ("left", "Up", ...) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return 0, false
}

// Coord addresses a cell; X is the column, Y the row (0 is the top).
type Coord struct {
	X, Y int
}

// axisRange is an inclusive run of indices along one axis, walked from
// `from` toward `to` in either direction.
type axisRange struct {
	from, to int
}

// values expands the range into the ordered list of indices.
func (r axisRange) values() []int {
	var out []int
	if r.from > r.to {
		for i := r.from; i >= r.to; i-- {
			out = append(out, i)
		}
		return out
	}
	for i := r.from; i <= r.to; i++ {
		out = append(out, i)
	}
	return out
}

// traversal describes the order a move visits cells in.
type traversal struct {
	size       int
	xs, ys     axisRange
	horizontal bool // true: one line per row, false: one line per column
}

// traversalFor returns the traversal for d on an n×n grid. Every line starts
// at the edge the tiles move toward.
func traversalFor(d Direction, n int) traversal {
	last := n - 1
	forward := axisRange{from: 0, to: last}
	backward := axisRange{from: last, to: 0}

	switch d {
	case DirLeft:
		return traversal{size: n, xs: forward, ys: forward, horizontal: true}
	case DirRight:
		return traversal{size: n, xs: backward, ys: forward, horizontal: true}
	case DirUp:
		return traversal{size: n, xs: forward, ys: forward, horizontal: false}
	default: // DirDown
		return traversal{size: n, xs: forward, ys: backward, horizontal: false}
	}
}

// lines returns the coordinates of the traversal chunked into one slice per
// row or column, each ordered from the target edge inward.
func (t traversal) lines() [][]Coord {
	if t.size <= 0 {
		return nil
	}
	xs, ys := t.xs.values(), t.ys.values()

	outer, inner := ys, xs
	if !t.horizontal {
		outer, inner = xs, ys
	}

	lines := make([][]Coord, 0, len(outer))
	for _, o := range outer {
		line := make([]Coord, 0, len(inner))
		for _, i := range inner {
			if t.horizontal {
				line = append(line, Coord{X: i, Y: o})
			} else {
				line = append(line, Coord{X: o, Y: i})
			}
		}
		lines = append(lines, line)
	}
	return lines
}
