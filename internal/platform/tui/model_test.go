package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func newTestModel(t *testing.T, size int, store *storage.Store) Model {
	t.Helper()
	game := t2048.New(t2048.Options{Size: size, Seed: 42}, nil)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30}
	return NewModel(game, store, nil, cfg, Options{NoColor: true, ScreenshotDir: t.TempDir()})
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// playUntilOver cycles through every direction until the game ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyDown}, {Type: tea.KeyRight}, {Type: tea.KeyUp},
	}
	for i := 0; i < 10000 && !m.game.IsGameOver(); i++ {
		m, _ = press(m, keys[i%len(keys)])
	}
	if !m.game.IsGameOver() {
		t.Fatal("game did not end")
	}
	return m
}

func TestModelMovesOnKeys(t *testing.T) {
	m := newTestModel(t, 4, nil)

	for _, k := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyUp}, {Type: tea.KeyDown}} {
		m, _ = press(m, k)
	}

	if m.game.Moves() == 0 {
		t.Error("arrow keys should move the board")
	}
	if !strings.Contains(m.View(), "Moves: ") {
		t.Error("view should show the board HUD")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t, 4, nil)

	quit, cmd := press(m, runeKey('q'))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("view should be empty after quitting")
	}

	back, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.WantsBack() || back.IsQuitting() || cmd == nil {
		t.Error("esc should return to the menu")
	}
}

func TestModelPauseBlocksMoves(t *testing.T) {
	m := newTestModel(t, 4, nil)

	m, _ = press(m, runeKey('p'))
	before := m.game.Snapshot().Cells
	for _, k := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyUp}, {Type: tea.KeyDown}} {
		m, _ = press(m, k)
	}

	if m.game.Moves() != 0 {
		t.Errorf("paused game moved %d times", m.game.Moves())
	}
	if got := m.game.Snapshot().Cells; len(got) != len(before) {
		t.Error("pause should keep the board")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the pause overlay")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, 2, store)
	m = playUntilOver(t, m)

	// Further keys after game over must not add records.
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})

	results, err := store.AllResults(2)
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 record, got %d", len(results))
	}
	if results[0].MaxTile != m.game.MaxTile() || results[0].Moves != m.game.Moves() {
		t.Errorf("record %+v does not match the finished game", results[0])
	}

	// A restarted game is recorded again when it ends.
	m, _ = press(m, runeKey('r'))
	if m.game.IsGameOver() {
		t.Fatal("restart should start a new game")
	}
	playUntilOver(t, m)

	results, _ = store.AllResults(2)
	if len(results) != 2 {
		t.Errorf("expected 2 records after a second game, got %d", len(results))
	}
}

func TestModelStuckBoardShowsGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, 1, store)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})

	if !strings.Contains(m.View(), "GAME OVER") {
		t.Errorf("stuck board should show the game over overlay:\n%s", m.View())
	}
	results, err := store.AllResults(1)
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}
	if len(results) != 1 || results[0].Moves != 0 {
		t.Errorf("expected one record with 0 moves, got %+v", results)
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m := newTestModel(t, 4, nil)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	moves := m.game.Moves()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if m.Config().ScreenW != 100 || m.Config().ScreenH != 40 {
		t.Errorf("config not updated: %+v", m.Config())
	}
	if m.game.Moves() != moves {
		t.Error("resize should not reset the game")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, 4, nil)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "2048") {
		t.Error("screenshot should contain the rendered board")
	}
}

func TestRenderPlainMatchesScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "hi", core.ColorRed)

	if RenderPlain(s) != s.String() {
		t.Error("RenderPlain should match the raw screen text")
	}
	if !strings.Contains(RenderScreen(s), "hi") {
		t.Error("RenderScreen should keep the text")
	}
}
