package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/hjkl - Slide the board
  P                - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot to ~/.t2048/screenshots
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --size 5
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(cfg.Storage, logger)
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()
	game := t2048.New(gameOptions(cfg, cfg.Board.Size, rt.Seed), logger)
	logger.Info("game started", "size", cfg.Board.Size, "target", cfg.Board.Target, "seed", rt.Seed)

	if _, err := tui.Run(game, store, logger, rt, tui.Options{NoColor: !cfg.Render.Colors}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
