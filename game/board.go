package game

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dimaq12/minesweeper/models"
)

// ErrCorruptGrid is returned when the flood fill reaches a mine. A
// correctly generated grid walls every empty region off behind a layer
// of number cells, so hitting this means generation or the adjacency
// logic is broken. Callers should treat it as fatal.
var ErrCorruptGrid = errors.New("flood fill reached a mine cell")

// Board owns one grid plus its pixel layout and applies every state
// transition. There is exactly one mutator, the click path; renderers
// read the board through View and Layout and never write.
type Board struct {
	grid   *models.Grid
	layout Layout
	log    zerolog.Logger
}

// NewBoard wraps a generated grid with its layout. The logger gets a
// per-board id so concurrent sessions in a log stream stay apart.
func NewBoard(grid *models.Grid, layout Layout, logger zerolog.Logger) *Board {
	return &Board{
		grid:   grid,
		layout: layout,
		log:    logger.With().Str("board", uuid.NewString()).Logger(),
	}
}

// Layout returns the immutable pixel geometry of the board.
func (b *Board) Layout() Layout {
	return b.layout
}

// Click maps a pointer position to a cell and reveals it. Positions on
// gaps, on the padding, or outside the grid are ignored.
func (b *Board) Click(x, y float64) error {
	row, col, ok := b.layout.CellAt(x, y)
	if !ok {
		b.log.Debug().Float64("x", x).Float64("y", y).Msg("click outside the board")
		return nil
	}
	return b.Reveal(row, col)
}

// Reveal shows the cell at row, col and applies the rule for its kind:
// a mine loses the game and shows the whole grid, a number shows only
// itself, an empty cell flood-fills its region. Revealing a cell that
// is out of range or already visible is a no-op, which also makes
// every reveal after a loss harmless.
func (b *Board) Reveal(row, col int) error {
	if !b.grid.InBounds(row, col) {
		return nil
	}
	cell := b.grid.At(row, col)
	if cell.State == models.Visible {
		return nil
	}

	cell.Show()
	switch cell.Kind {
	case models.KindMine:
		b.log.Info().Int("row", row).Int("col", col).Msg("mine hit, revealing the board")
		b.RevealAll()
	case models.KindNumber:
		// A numbered cell never cascades.
		b.log.Debug().Int("row", row).Int("col", col).Int("mines", cell.Mines).Msg("number revealed")
	case models.KindEmpty:
		if err := b.floodReveal(row, col); err != nil {
			b.log.Error().Err(err).Int("row", row).Int("col", col).Msg("flood fill aborted")
			return err
		}
	}
	return nil
}

// RevealAll shows every cell in the grid, mines included. This is the
// loss presentation; the board keeps no separate game-over flag.
func (b *Board) RevealAll() {
	for row := 0; row < b.grid.Rows; row++ {
		for col := 0; col < b.grid.Cols; col++ {
			b.grid.At(row, col).Show()
		}
	}
}

// Lost reports whether a mine has been revealed.
func (b *Board) Lost() bool {
	for row := 0; row < b.grid.Rows; row++ {
		for col := 0; col < b.grid.Cols; col++ {
			cell := b.grid.At(row, col)
			if cell.Kind == models.KindMine && cell.State == models.Visible {
				return true
			}
		}
	}
	return false
}

// Won reports whether every non-mine cell is visible while no mine is.
func (b *Board) Won() bool {
	for row := 0; row < b.grid.Rows; row++ {
		for col := 0; col < b.grid.Cols; col++ {
			cell := b.grid.At(row, col)
			if cell.Kind == models.KindMine {
				if cell.State == models.Visible {
					return false
				}
			} else if cell.State == models.Hidden {
				return false
			}
		}
	}
	return true
}

type position struct {
	row, col int
}

// floodReveal shows the maximal 4-connected region of empty cells
// around the start plus the number cells bordering it, and nothing
// beyond. The frontier is breadth-first with the seen set updated at
// enqueue time, so a cell reachable through two empty predecessors is
// still queued at most once and the work stays bounded by the grid
// size.
func (b *Board) floodReveal(row, col int) error {
	start := position{row, col}
	queue := []position{start}
	seen := map[position]bool{start: true}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		b.grid.At(pos.row, pos.col).Show()

		for _, n := range b.neighbors4(pos) {
			if seen[n] {
				continue
			}
			switch b.grid.At(n.row, n.col).Kind {
			case models.KindEmpty:
				seen[n] = true
				queue = append(queue, n)
			case models.KindNumber:
				// Show the border but never expand past it.
				seen[n] = true
				b.grid.At(n.row, n.col).Show()
			case models.KindMine:
				// An empty cell orthogonally next to a mine would have
				// been generated as a number, so the frontier can only
				// get here on a broken grid.
				return ErrCorruptGrid
			}
		}
	}
	return nil
}

// neighbors4 returns the in-bounds orthogonal neighbors of pos. The
// flood fill stays 4-way on purpose, it must not leak through diagonal
// gaps the way the 8-way mine counting would.
func (b *Board) neighbors4(pos position) []position {
	candidates := [4]position{
		{pos.row, pos.col - 1},
		{pos.row, pos.col + 1},
		{pos.row - 1, pos.col},
		{pos.row + 1, pos.col},
	}

	neighbors := make([]position, 0, 4)
	for _, n := range candidates {
		if b.grid.InBounds(n.row, n.col) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
