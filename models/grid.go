package models

import (
	"errors"
	"math/rand"
	"time"
)

var (
	// ErrBadDimensions is returned when a grid is requested with a
	// non-positive number of rows or columns.
	ErrBadDimensions = errors.New("grid dimensions must be positive")
	// ErrTooManyMines is returned when the requested mine count does
	// not fit on the grid. The check runs before any cell is placed,
	// so no partially built grid ever escapes.
	ErrTooManyMines = errors.New("mine count exceeds cell count")
)

// Grid is the rectangular board state, indexed row first.
type Grid struct {
	Cells [][]Cell
	Rows  int
	Cols  int
}

// NewGrid allocates a rows x cols grid of empty, hidden cells.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Grid{Cells: cells, Rows: rows, Cols: cols}
}

// InBounds reports whether row and col fall inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the cell at row, col. Callers bounds-check first.
func (g *Grid) At(row, col int) *Cell {
	return &g.Cells[row][col]
}

// Generate builds a rows x cols grid with the requested number of
// mines placed uniformly at random without replacement, and every
// non-mine cell carrying the exact count of its up-to-8 neighboring
// mines. Passing a nil rng seeds one from the clock; a fixed-seed rng
// makes generation deterministic.
func Generate(rows, cols, mines int, rng *rand.Rand) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	if mines < 0 || mines > rows*cols {
		return nil, ErrTooManyMines
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := NewGrid(rows, cols)

	// Partial Fisher-Yates over the flattened index range: after the
	// i-th swap the first i entries are a uniform sample without
	// replacement, so no draw is ever rejected and retried.
	indexes := make([]int, rows*cols)
	for i := range indexes {
		indexes[i] = i
	}
	for i := 0; i < mines; i++ {
		j := i + rng.Intn(len(indexes)-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
		g.PlaceMine(indexes[i]/cols, indexes[i]%cols)
	}

	return g, nil
}

// PlaceMine marks the cell at row, col as a mine and bumps the count
// of every surrounding non-mine cell, turning Empty neighbors into
// Number(1) and incrementing Number neighbors. Counts are commutative
// sums, so the order mines are placed in does not matter. PlaceMine
// belongs to grid construction only; once play starts, cell kinds are
// frozen.
func (g *Grid) PlaceMine(row, col int) {
	cell := g.At(row, col)
	cell.Kind = KindMine
	cell.Mines = 0

	// Mine counting looks at all 8 surrounding cells, diagonals
	// included. The flood fill in the game package deliberately uses a
	// narrower 4-way neighborhood; the two must not be unified.
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			newRow, newCol := row+deltaRow, col+deltaCol
			if !g.InBounds(newRow, newCol) {
				continue
			}
			neighbor := g.At(newRow, newCol)
			switch neighbor.Kind {
			case KindMine:
				// A mine never carries a count.
			case KindEmpty:
				neighbor.Kind = KindNumber
				neighbor.Mines = 1
			case KindNumber:
				neighbor.Mines++
			}
		}
	}
}
