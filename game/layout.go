package game

// Layout holds the pixel geometry of the board: how many tiles there
// are, how wide each one is, and the gap and padding around them. It
// is computed once from the available screen width and never changes,
// which keeps the coordinate math testable without a display.
type Layout struct {
	Rows      int
	Cols      int
	Gap       float64
	Padding   float64
	TileWidth float64
}

// NewLayout derives the tile width that fits cols tiles plus their
// gaps and the outer padding into screenWidth.
func NewLayout(rows, cols int, gap, padding, screenWidth float64) Layout {
	return Layout{
		Rows:      rows,
		Cols:      cols,
		Gap:       gap,
		Padding:   padding,
		TileWidth: (screenWidth - padding - gap*float64(cols)) / float64(cols),
	}
}

// CellOrigin returns the top-left pixel of the tile at row, col.
func (l Layout) CellOrigin(row, col int) (x, y float64) {
	x = l.Padding + float64(col)*(l.Gap+l.TileWidth)
	y = l.Padding + float64(row)*(l.Gap+l.TileWidth)
	return x, y
}

// CellAt maps a pointer position to a grid index. ok is false when the
// position lands in the gap past the last full tile of its row or
// column, or outside the grid entirely. The division can produce
// indexes far beyond the grid for positions past its rendered extent,
// so the range check is not optional.
func (l Layout) CellAt(x, y float64) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}

	col = int(x / (l.TileWidth + l.Gap))
	row = int(y / (l.TileWidth + l.Gap))

	if l.onGap(row, col, x, y) {
		return 0, 0, false
	}
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// onGap reports whether the position overshoots the last full tile of
// the row or column it mapped to, landing on the spacing between
// tiles.
func (l Layout) onGap(row, col int, x, y float64) bool {
	return x > l.TileWidth*float64(col+1)+l.Gap*float64(col) ||
		y > l.TileWidth*float64(row+1)+l.Gap*float64(row)
}
