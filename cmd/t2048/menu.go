package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick "New game" and a board size to play, or "Records" to browse finished
games. Esc during a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --size 5
  t2048 menu --db ./records.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
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
	size := cfg.Board.Size

	for {
		menuResult, err := tui.RunMenu(rt, size)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		rt.ScreenW, rt.ScreenH = menuResult.Config.ScreenW, menuResult.Config.ScreenH

		switch menuResult.Choice {
		case tui.MenuChoiceRecords:
			goBack, err := tui.RunScoreboard(store, size, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return fmt.Errorf("running records: %w", err)
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			size = menuResult.Size
			seed := rt.Seed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			game := t2048.New(gameOptions(cfg, size, seed), logger)
			logger.Info("game started", "size", size, "target", cfg.Board.Target, "seed", seed)

			result, err := tui.Run(game, store, logger, rt, tui.Options{NoColor: !cfg.Render.Colors})
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			rt.ScreenW, rt.ScreenH = result.Config.ScreenW, result.Config.ScreenH
			if result.Quit {
				return nil
			}

		default:
			return nil
		}
	}
}
