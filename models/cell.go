package models

// Kind tells what a cell hides: open ground, a count of neighboring
// mines, or a mine. A count of zero collapses to KindEmpty, so a
// KindNumber cell always carries a count between 1 and 8.
type Kind int8

const (
	KindEmpty Kind = iota
	KindNumber
	KindMine
)

// State is the visibility of a cell. Every cell starts Hidden and can
// only ever transition to Visible, never back.
type State int8

const (
	Hidden State = iota
	Visible
)

// Cell is a single board position. Kind and Mines are assigned during
// grid construction and never change afterwards; State is the only
// field mutated once the game is running.
type Cell struct {
	Kind  Kind
	Mines int // adjacent mine count, meaningful only when Kind is KindNumber
	State State
}

// Show makes the cell visible. Showing an already visible cell changes
// nothing.
func (c *Cell) Show() {
	c.State = Visible
}
