package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuChoice is the top-level entry picked in the menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceRecords
	MenuChoiceQuit
)

var menuEntries = []string{"New game", "Records", "Quit"}

// MenuModel is the Bubble Tea model for the start menu. Choosing
// "New game" opens a board size picker.
type MenuModel struct {
	cursor       int
	sizeCursor   int
	inSizeSelect bool
	sizes        []int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	help         help.Model
	choice       MenuChoice
	size         int
	quitting     bool
}

// NewMenuModel creates a new menu model. defaultSize is preselected in the
// size picker.
func NewMenuModel(cfg core.RuntimeConfig, defaultSize int) MenuModel {
	sizes := make([]int, 0, config.MaxBoardSize-config.MinBoardSize+1)
	sizeCursor := 0
	for n := config.MinBoardSize; n <= config.MaxBoardSize; n++ {
		if n == defaultSize {
			sizeCursor = len(sizes)
		}
		sizes = append(sizes, n)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		sizes:      sizes,
		sizeCursor: sizeCursor,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inSizeSelect {
			return m.handleSizeSelectKey(action)
		}
		return m.handleMenuKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMenuKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.inSizeSelect = true
		case 1:
			m.choice = MenuChoiceRecords
			return m, tea.Quit
		default:
			m.quitting = true
			m.choice = MenuChoiceQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleSizeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		m.choice = MenuChoiceQuit
		return m, tea.Quit
	case MenuActionUp:
		if m.sizeCursor > 0 {
			m.sizeCursor--
		}
	case MenuActionDown:
		if m.sizeCursor < len(m.sizes)-1 {
			m.sizeCursor++
		}
	case MenuActionSelect:
		m.choice = MenuChoicePlay
		m.size = m.sizes[m.sizeCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inSizeSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")

	if m.inSizeSelect {
		b.WriteString(centerText("Select board size:", m.width))
		b.WriteString("\n\n")
		for i, n := range m.sizes {
			cursor := "  "
			if i == m.sizeCursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%d x %d", cursor, n, n), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, entry := range menuEntries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+entry, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keyMapper.Keys()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the entry picked by the user.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Size returns the board size picked for a new game.
func (m MenuModel) Size() int {
	return m.size
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Size   int // Board size when Choice is MenuChoicePlay
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, defaultSize int) (MenuResult, error) {
	model := NewMenuModel(cfg, defaultSize)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice: m.Choice(),
		Size:   m.Size(),
		Config: m.Config(),
	}, nil
}
