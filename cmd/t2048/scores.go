package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show records for a board size",
	Long: `Display the best finished games for a board size, ranked by the
highest tile reached and then by fewer moves.

Opens an interactive table when run in a terminal; use --plain for text.

Examples:
  t2048 scores
  t2048 scores --size 5
  t2048 scores --limit 5 --plain`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of records to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Storage.DBPath == "" {
		return errors.New("records are disabled: storage.db_path is empty")
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	size := cfg.Board.Size
	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		rt := runtimeConfig()
		_, err := tui.RunScoreboard(store, size, rt.ScreenW, rt.ScreenH)
		return err
	}

	results, err := store.TopResults(size, flagLimit)
	if err != nil {
		return err
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(titleStyle.Render(fmt.Sprintf("Records - %dx%d", size, size)))
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play --size %d' to set the first record!\n", size)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-4s  %s\n", "Rank", "Max tile", "Moves", "Goal", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-4s  %s\n", "----", "--------", "-----", "----", "----")

	for i, r := range results {
		goal := ""
		if r.Reached {
			goal = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-4s  %s\n", i+1, r.MaxTile, r.Moves, goal, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats(size)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Goal reached: %d  Avg moves: %.0f\n",
			stats.GamesCount, stats.BestTile, stats.ReachedCount, stats.AvgMoves)
	}
	return nil
}
