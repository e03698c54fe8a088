package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Options configures the game model.
type Options struct {
	NoColor       bool   // Render without ANSI styling
	ScreenshotDir string // Empty means ~/.t2048/screenshots
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game        *t2048.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	keyMapper   *KeyMapper
	opts        Options
	config      core.RuntimeConfig
	quitting    bool
	back        bool
	resultSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game *t2048.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, opts Options) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		opts:      opts,
		config:    cfg,
	}
}

// Init initializes the model. The game only advances on key presses.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionRestart:
		m.game.Restart()
		m.resultSaved = false
	case core.ActionPause:
		m.game.TogglePause()
	default:
		if d, ok := directionFor(action); ok {
			result := m.game.Move(d)
			if result.GameOver {
				m.saveResult()
			}
		}
	}

	return m, nil
}

// actionDirections maps directional actions to move directions.
var actionDirections = map[core.Action]t2048.Direction{
	core.ActionUp:    t2048.DirUp,
	core.ActionDown:  t2048.DirDown,
	core.ActionLeft:  t2048.DirLeft,
	core.ActionRight: t2048.DirRight,
}

// directionFor maps a directional action to a move direction.
func directionFor(a core.Action) (t2048.Direction, bool) {
	d, ok := actionDirections[a]
	return d, ok
}

// saveResult records the finished game once.
func (m *Model) saveResult() {
	if m.resultSaved {
		return
	}
	m.resultSaved = true
	if m.store == nil {
		return
	}

	snap := m.game.Snapshot()
	_, err := m.store.SaveResult(storage.GameResult{
		Size:    snap.Size,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Reached: snap.Reached,
	})
	if err != nil {
		m.logger.Warn("could not save result", "err", err)
		return
	}
	m.logger.Info("result saved", "size", snap.Size, "max_tile", snap.MaxTile, "moves", snap.Moves)
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".t2048", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("2048_%dx%d_%s.txt", m.game.Options().Size, m.game.Options().Size, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)

	if m.opts.NoColor {
		return RenderPlain(m.screen)
	}
	return RenderScreen(m.screen)
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// WantsBack returns true if the user left the game for the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// RunResult holds the outcome of running a game.
type RunResult struct {
	Config core.RuntimeConfig
	Quit   bool // False when the user went back to the menu
}

// Run starts the Bubble Tea program with the given game.
func Run(game *t2048.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, opts Options) (RunResult, error) {
	model := NewModel(game, store, logger, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{Config: cfg, Quit: true}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{Config: cfg, Quit: true}, nil
	}

	return RunResult{Config: m.Config(), Quit: !m.WantsBack()}, nil
}
