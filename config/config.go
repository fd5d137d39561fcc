// Package config loads board settings from the environment. A .env
// file in the working directory is honored when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the front ends need to build a board.
type Config struct {
	Rows         int
	Cols         int
	Mines        int
	Gap          float64
	Padding      float64
	ScreenWidth  int
	ScreenHeight int
	LogLevel     string
}

type preset struct {
	size  int
	mines int
}

// levelPresets is the classic difficulty ladder, from a gentle 10x10
// board with 10 mines up to 30x30 with 180.
var levelPresets = map[int]preset{
	1: {size: 10, mines: 10},
	2: {size: 15, mines: 40},
	3: {size: 20, mines: 80},
	4: {size: 25, mines: 125},
	5: {size: 30, mines: 180},
}

// Load reads the environment. MINESWEEPER_LEVEL picks a preset; the
// individual MINESWEEPER_* variables override it field by field. With
// nothing set the board is 16x16 with 50 mines in an 800x800 window.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Rows:         16,
		Cols:         16,
		Mines:        50,
		Gap:          1,
		Padding:      2,
		ScreenWidth:  800,
		ScreenHeight: 800,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if p, ok := levelPresets[envInt("MINESWEEPER_LEVEL", 0)]; ok {
		cfg.Rows = p.size
		cfg.Cols = p.size
		cfg.Mines = p.mines
	}

	cfg.Rows = envInt("MINESWEEPER_ROWS", cfg.Rows)
	cfg.Cols = envInt("MINESWEEPER_COLS", cfg.Cols)
	cfg.Mines = envInt("MINESWEEPER_MINES", cfg.Mines)
	cfg.Gap = envFloat("MINESWEEPER_GAP", cfg.Gap)
	cfg.Padding = envFloat("MINESWEEPER_PADDING", cfg.Padding)
	cfg.ScreenWidth = envInt("MINESWEEPER_WIDTH", cfg.ScreenWidth)
	cfg.ScreenHeight = envInt("MINESWEEPER_HEIGHT", cfg.ScreenHeight)

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
