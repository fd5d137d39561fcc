package models

import (
	"errors"
	"math/rand"
	"testing"
)

func countMines(g *Grid) int {
	mines := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(row, col).Kind == KindMine {
				mines++
			}
		}
	}
	return mines
}

func TestGenerateMineCount(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		cols  int
		mines int
	}{
		{"small", 3, 3, 1},
		{"rectangular", 4, 7, 5},
		{"no mines", 4, 4, 0},
		{"all mines", 5, 5, 25},
		{"classic", 16, 16, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Generate(tt.rows, tt.cols, tt.mines, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if got := countMines(g); got != tt.mines {
				t.Errorf("placed %d mines, want %d", got, tt.mines)
			}
		})
	}
}

func TestGenerateNeighborCounts(t *testing.T) {
	g, err := Generate(9, 9, 20, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := g.At(row, col)
			if cell.Kind == KindMine {
				continue
			}

			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if g.InBounds(row+dr, col+dc) && g.At(row+dr, col+dc).Kind == KindMine {
						want++
					}
				}
			}

			if want == 0 {
				if cell.Kind != KindEmpty || cell.Mines != 0 {
					t.Errorf("cell (%d,%d): got kind=%v mines=%d, want empty", row, col, cell.Kind, cell.Mines)
				}
			} else {
				if cell.Kind != KindNumber || cell.Mines != want {
					t.Errorf("cell (%d,%d): got kind=%v mines=%d, want number %d", row, col, cell.Kind, cell.Mines, want)
				}
			}
		}
	}
}

func TestGenerateStartsHidden(t *testing.T) {
	g, err := Generate(6, 6, 8, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(row, col).State != Hidden {
				t.Fatalf("cell (%d,%d) generated visible", row, col)
			}
		}
	}
}

func TestGeneratePreconditions(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		mines   int
		wantErr error
	}{
		{"too many mines", 3, 3, 10, ErrTooManyMines},
		{"negative mines", 3, 3, -1, ErrTooManyMines},
		{"zero rows", 0, 5, 0, ErrBadDimensions},
		{"negative cols", 5, -2, 0, ErrBadDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Generate(tt.rows, tt.cols, tt.mines, rand.New(rand.NewSource(1)))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got err %v, want %v", err, tt.wantErr)
			}
			if g != nil {
				t.Fatal("got a grid alongside an error")
			}
		})
	}
}

func TestPlaceMineBumpsAllEightNeighbors(t *testing.T) {
	g := NewGrid(3, 3)
	g.PlaceMine(1, 1)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := g.At(row, col)
			if row == 1 && col == 1 {
				if cell.Kind != KindMine {
					t.Fatal("center cell is not a mine")
				}
				continue
			}
			if cell.Kind != KindNumber || cell.Mines != 1 {
				t.Errorf("cell (%d,%d): got kind=%v mines=%d, want number 1", row, col, cell.Kind, cell.Mines)
			}
		}
	}
}

func TestPlaceMineCountsAccumulate(t *testing.T) {
	g := NewGrid(2, 3)
	g.PlaceMine(0, 0)
	g.PlaceMine(0, 2)

	cell := g.At(1, 1)
	if cell.Kind != KindNumber || cell.Mines != 2 {
		t.Fatalf("cell (1,1): got kind=%v mines=%d, want number 2", cell.Kind, cell.Mines)
	}
	if g.At(1, 0).Mines != 1 || g.At(1, 2).Mines != 1 {
		t.Error("cells adjacent to a single mine should count 1")
	}
}
