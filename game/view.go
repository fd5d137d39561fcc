package game

import "github.com/dimaq12/minesweeper/models"

// CellView is one cell as a renderer is allowed to see it. Kind and
// Mines are populated only for visible cells; a hidden cell reports
// KindEmpty and a zero count so no renderer can leak board contents.
type CellView struct {
	Row     int
	Col     int
	Visible bool
	Kind    models.Kind
	Mines   int
}

// BoardView is a read-only row-major snapshot of the whole grid, taken
// once per frame by the render pass.
type BoardView struct {
	Rows  int
	Cols  int
	Cells []CellView
}

// View snapshots the grid for rendering. It never mutates the board.
func (b *Board) View() BoardView {
	view := BoardView{
		Rows:  b.grid.Rows,
		Cols:  b.grid.Cols,
		Cells: make([]CellView, 0, b.grid.Rows*b.grid.Cols),
	}
	for row := 0; row < b.grid.Rows; row++ {
		for col := 0; col < b.grid.Cols; col++ {
			cell := b.grid.At(row, col)
			cv := CellView{Row: row, Col: col}
			if cell.State == models.Visible {
				cv.Visible = true
				cv.Kind = cell.Kind
				cv.Mines = cell.Mines
			}
			view.Cells = append(view.Cells, cv)
		}
	}
	return view
}
