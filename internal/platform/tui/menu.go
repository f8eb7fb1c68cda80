package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/level"
	"github.com/puffball-game/puffball/internal/storage"
)

// MenuItem represents a selectable level in the picker.
type MenuItem struct {
	Level     *level.Level
	BestTicks int // 0 when the level has never been won
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	runtime     core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem
	openResults bool
}

// NewMenuModel creates a picker over the given levels, annotated with best
// times where the store has any.
func NewMenuModel(levels []*level.Level, store *storage.Store, rt core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(levels))
	for _, lvl := range levels {
		item := MenuItem{Level: lvl}
		if store != nil {
			if best, err := store.BestTicks(lvl.ID); err == nil {
				item.BestTicks = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
		runtime:   rt,
		keyMapper: NewKeyMapper(),
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the level
		}

	case MenuActionResults:
		m.openResults = true
		return m, tea.Quit // Exit menu to show results
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
	b.WriteString(centerText("  P U F F B A L L  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := ""
		if item.BestTicks > 0 && m.runtime.TickRate > 0 {
			best = fmt.Sprintf("  (best %.1fs)",
				float64(item.BestTicks)/float64(m.runtime.TickRate))
		}

		line := fmt.Sprintf("%s%s%s", cursor, item.Level.Name, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if the user requested the results screen.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// Config returns the runtime config, possibly updated by a resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.runtime
}

// MenuResult holds the outcome of running the picker.
type MenuResult struct {
	Level        *level.Level
	Config       core.RuntimeConfig
	WantsResults bool
	Quit         bool
}

// RunMenu runs the level picker and returns the selection.
func RunMenu(levels []*level.Level, store *storage.Store, rt core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(levels, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rt}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rt, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}

	if m.WantsResults() {
		result.WantsResults = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.Level = m.Selected().Level
	} else {
		result.Quit = true
	}

	return result, nil
}
