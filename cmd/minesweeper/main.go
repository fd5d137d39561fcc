package main

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/game"
	"github.com/dimaq12/minesweeper/models"
)

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorHidden     = color.RGBA{130, 130, 130, 255}
	colorMine       = color.RGBA{0, 0, 0, 255}
	colorEmpty      = color.RGBA{0, 228, 48, 255}
	colorNumber     = color.RGBA{255, 109, 194, 255}
	colorLabel      = color.RGBA{0, 0, 0, 255}
)

// app runs the frame loop: at most one reveal per observed click, then
// a render pass over the board snapshot. All game rules live in the
// game package; this file only pushes pixels.
type app struct {
	board  *game.Board
	width  int
	height int
}

func (a *app) Update() error {
	if a.board.Won() {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if err := a.board.Click(float64(mx), float64(my)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	layout := a.board.Layout()
	view := a.board.View()
	tile := float32(layout.TileWidth)

	for _, cv := range view.Cells {
		x, y := layout.CellOrigin(cv.Row, cv.Col)

		fill := colorHidden
		if cv.Visible {
			switch cv.Kind {
			case models.KindMine:
				fill = colorMine
			case models.KindEmpty:
				fill = colorEmpty
			case models.KindNumber:
				fill = colorNumber
			}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), tile, tile, fill, false)

		if cv.Visible && cv.Kind == models.KindNumber {
			label := strconv.Itoa(cv.Mines)
			text.Draw(screen, label, basicfont.Face7x13,
				int(x+layout.TileWidth/2)-3, int(y+layout.TileWidth/2)+5, colorLabel)
		}
	}

	if a.board.Won() {
		text.Draw(screen, "YOU WIN!", basicfont.Face7x13, a.width/2-28, 12, colorLabel)
	} else if a.board.Lost() {
		text.Draw(screen, "BOOM!", basicfont.Face7x13, a.width/2-18, 12, colorLabel)
	}
}

func (a *app) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	grid, err := models.Generate(cfg.Rows, cfg.Cols, cfg.Mines, nil)
	if err != nil {
		log.Fatal().Err(err).
			Int("rows", cfg.Rows).Int("cols", cfg.Cols).Int("mines", cfg.Mines).
			Msg("failed to generate the board")
	}

	layout := game.NewLayout(cfg.Rows, cfg.Cols, cfg.Gap, cfg.Padding, float64(cfg.ScreenWidth))
	board := game.NewBoard(grid, layout, log.Logger)

	log.Info().
		Int("rows", cfg.Rows).Int("cols", cfg.Cols).Int("mines", cfg.Mines).
		Msg("starting minesweeper")

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Minesweeper")
	if err := ebiten.RunGame(&app{board: board, width: cfg.ScreenWidth, height: cfg.ScreenHeight}); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}
