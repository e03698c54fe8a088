package t2048

// Cell is one grid slot. A zero value means the slot is empty.
type Cell struct {
	value    int
	modified bool // Set by a merge, cleared at the start of every move
}

// IsEmpty reports whether the cell holds no tile.
func (c *Cell) IsEmpty() bool {
	return c.value == 0
}

// SetValue stores v without touching the merge flag.
func (c *Cell) SetValue(v int) {
	c.value = v
}

// Value returns the tile value, or 0 when the cell is empty.
func (c *Cell) Value() int {
	return c.value
}

// Double merges into this cell: the value doubles and the cell is marked
// as modified for the rest of the move.
// Panics if the cell is empty; a merge target always holds a tile.
func (c *Cell) Double() {
	if c.IsEmpty() {
		panic("t2048: double called on empty cell")
	}
	c.value *= 2
	c.modified = true
}

// CanBeModified reports whether the cell may still take part in a merge
// during the current move.
func (c *Cell) CanBeModified() bool {
	return !c.modified
}

// Reset clears the merge flag before a new move cycle.
func (c *Cell) Reset() {
	c.modified = false
}

// Empty clears both the value and the merge flag.
func (c *Cell) Empty() {
	c.value = 0
	c.modified = false
}

// moveTo slides this cell's tile into dst, merge flag included, and
// empties the source.
func (c *Cell) moveTo(dst *Cell) {
	dst.value = c.value
	dst.modified = c.modified
	c.Empty()
}
