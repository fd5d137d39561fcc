package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/game"
	"github.com/dimaq12/minesweeper/models"
)

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
	// The terminal owns the screen, so board logging stays quiet here.
	board := game.NewBoard(grid, layout, zerolog.Nop())

	renderer := game.NewRenderer()
	renderer.DrawBoard(board)

	app := tview.NewApplication()
	app.SetRoot(renderer.Table, true)

	var result string
	renderer.Table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		row, col := renderer.Table.GetSelection()

		switch event.Key() {
		case tcell.KeyEnter:
			if err := board.Reveal(row, col); err != nil {
				app.Stop()
				log.Fatal().Err(err).Msg("reveal failed")
			}
			renderer.DrawBoard(board)

			if board.Lost() {
				result = "Game over! You hit a mine."
				app.Stop()
			} else if board.Won() {
				result = "Congratulations! You cleared the board."
				app.Stop()
			}
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
			}
		}

		return event
	})

	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal ui exited")
	}
	if result != "" {
		fmt.Println(result)
	}
	os.Exit(0)
}
