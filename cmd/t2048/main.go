// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 [play]             - Play a game (default)
//	t2048 menu               - Start menu with board size picker and records
//	t2048 scores             - Show records for a board size
//	t2048 config             - Print the default configuration file
//
// Global flags:
//
//	--size <n>        - Board dimension (2-8)
//	--seed <value>    - Set RNG seed for reproducible tile placement
//	--config <path>   - Path to a config YAML
//	--db <path>       - Set database path (default: ~/.t2048/records.db)
//	--log-file <path> - Log destination (default: ~/.t2048/t2048.log)
//	--log-level <lvl> - debug, info, warn or error
//	--no-color        - Render without colors
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagSize     int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagNoColor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board in one of four directions; equal tiles that meet merge
into their sum. A new 2 appears after every move that changes the board.
The game ends when no move can change the board.

Available commands:
  play     - Play a game (default)
  menu     - Interactive menu with board size picker
  scores   - View records
  config   - Print the default configuration

Examples:
  t2048
  t2048 play --size 5
  t2048 menu
  t2048 scores --size 4`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board dimension (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Render without colors")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoColor {
		cfg.Render.Colors = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger opens the log file from cfg. The TUI owns the terminal, so logs
// never go to stdout. The returned close function is always non-nil.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	if cfg.File == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path := config.ExpandHome(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		logger.SetLevel(level)
	}

	return logger, func() { f.Close() }, nil
}

// openStore opens the records database. Failures are logged and play
// continues without records.
func openStore(cfg config.StorageConfig, logger *log.Logger) *storage.Store {
	if cfg.DBPath == "" {
		return nil
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("records disabled", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig probes the terminal size and resolves the seed.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// gameOptions builds session options for a board of the given size.
func gameOptions(cfg config.Config, size int, seed int64) t2048.Options {
	return t2048.Options{
		Size:      size,
		Target:    cfg.Board.Target,
		Seed:      seed,
		CellWidth: cfg.Render.CellWidth,
		Controls:  tui.ControlsHelp(tui.DefaultGameKeyMap()),
	}
}
