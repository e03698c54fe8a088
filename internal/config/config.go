// Package config provides YAML-based configuration loading and validation
// for the 2048 terminal game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Board size and render limits.
const (
	MinBoardSize = 2
	MaxBoardSize = 8
	MinCellWidth = 4
	MaxCellWidth = 12
)

// Config contains all configuration for the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Render  RenderConfig  `yaml:"render"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the grid parameters.
type BoardConfig struct {
	Size   int `yaml:"size"`   // Grid dimension
	Target int `yaml:"target"` // Goal tile, reported when reached
}

// RenderConfig defines how the board is drawn.
type RenderConfig struct {
	CellWidth int  `yaml:"cell_width"` // Characters per cell, borders excluded
	Colors    bool `yaml:"colors"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Empty disables records
}

// LogConfig defines the log file and level.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Validate checks that every setting is within its supported range.
func (c Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("%w: board.size %d not in [%d, %d]",
			ErrInvalidConfig, c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if c.Board.Target < 4 || !isPowerOfTwo(c.Board.Target) {
		return fmt.Errorf("%w: board.target %d must be a power of two >= 4",
			ErrInvalidConfig, c.Board.Target)
	}
	if c.Render.CellWidth < MinCellWidth || c.Render.CellWidth > MaxCellWidth {
		return fmt.Errorf("%w: render.cell_width %d not in [%d, %d]",
			ErrInvalidConfig, c.Render.CellWidth, MinCellWidth, MaxCellWidth)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
