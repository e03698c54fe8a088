package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func menuPress(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuNewGamePicksSize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 4)

	m = menuPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "Select board size") {
		t.Fatal("New game should open the size picker")
	}

	m = menuPress(m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Choice() != MenuChoicePlay || m.Size() != 5 {
		t.Errorf("Choice/Size = %v/%d, want play/5", m.Choice(), m.Size())
	}
}

func TestMenuSizePickerBack(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 4)

	m = menuPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.Choice() != MenuChoiceNone {
		t.Errorf("esc in the size picker should go back, got %v", m.Choice())
	}
	if !strings.Contains(m.View(), "New game") {
		t.Error("main entries should be shown again")
	}
}

func TestMenuRecordsAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 4)

	records := menuPress(m, tea.KeyMsg{Type: tea.KeyDown})
	records = menuPress(records, tea.KeyMsg{Type: tea.KeyEnter})
	if records.Choice() != MenuChoiceRecords {
		t.Errorf("Choice = %v, want records", records.Choice())
	}

	quit := menuPress(m, runeKey('q'))
	if quit.Choice() != MenuChoiceQuit || quit.View() != "" {
		t.Errorf("q should quit, got %v", quit.Choice())
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 4)

	m = menuPress(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first entry: %d", m.cursor)
	}
	for range 10 {
		m = menuPress(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(menuEntries)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(menuEntries)-1)
	}
}
