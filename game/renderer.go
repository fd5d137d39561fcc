package game

import (
	"strconv"

	"github.com/rivo/tview"

	"github.com/dimaq12/minesweeper/models"
)

// Renderer draws a board into a tview.Table for the terminal front
// end. It reads the board through View only and never mutates it.
type Renderer struct {
	Table *tview.Table
}

func NewRenderer() *Renderer {
	return &Renderer{
		Table: tview.NewTable(),
	}
}

// DrawBoard repaints every cell from a fresh snapshot.
func (r *Renderer) DrawBoard(b *Board) {
	view := b.View()
	for _, cv := range view.Cells {
		r.renderCell(cv)
	}

	r.Table.SetSelectable(true, true)
	r.Table.SetFixed(view.Rows, view.Cols)
}

func (r *Renderer) renderCell(cv CellView) {
	cellText := "."
	if cv.Visible {
		switch cv.Kind {
		case models.KindMine:
			cellText = "M"
		case models.KindEmpty:
			cellText = " "
		case models.KindNumber:
			cellText = strconv.Itoa(cv.Mines)
		}
	}

	r.Table.SetCell(cv.Row, cv.Col, tview.NewTableCell(cellText).SetAlign(tview.AlignCenter))
}
