package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/game"
	"github.com/puffball-game/puffball/internal/level"
)

// Tool is the object kind the editor cursor places.
type Tool int

const (
	ToolWall Tool = iota
	ToolGem
	ToolPump
	ToolMine
	ToolFlag
	ToolStart
	toolCount
)

func (t Tool) String() string {
	switch t {
	case ToolWall:
		return "wall"
	case ToolGem:
		return "gem"
	case ToolPump:
		return "pump"
	case ToolMine:
		return "mine"
	case ToolFlag:
		return "flag"
	case ToolStart:
		return "start"
	default:
		return "unknown"
	}
}

// Cursor movement per keypress in world units. The grid keeps hand-placed
// objects aligned without a snapping pass.
const editorStep = 4.0

// pickRadius is how close (in world units) an object must be to the cursor
// to be deleted.
const pickRadius = 8.0

// EditorModel is the Bubble Tea model for the level editor.
type EditorModel struct {
	lvl  *level.Level
	path string

	cursor  core.Vec2
	tool    Tool
	texture int
	corner  *core.Vec2 // First wall corner, nil when not mid-placement

	screen  *core.Screen
	camera  *Camera
	runtime core.RuntimeConfig

	nameInput textinput.Model
	naming    bool

	dirty    bool
	status   string
	quitting bool
}

// NewEditorModel creates an editor over a working copy of the given level.
// path is where ctrl+s writes the level; it must not be empty.
func NewEditorModel(lvl *level.Level, path string, rt core.RuntimeConfig) EditorModel {
	work := lvl.Clone()

	ti := textinput.New()
	ti.Placeholder = "level name"
	ti.CharLimit = 64
	ti.Width = 32

	camera := NewCamera(rt.ScreenW, rt.ScreenH-hudRows)
	camera.FocusOn(work.Start, work.Width, work.Height)

	return EditorModel{
		lvl:       work,
		path:      path,
		cursor:    work.Start,
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		camera:    camera,
		runtime:   rt,
		nameInput: ti,
		status:    "tab: tool · space: place · x: delete · n: rename · ctrl+s: save",
	}
}

// Init initializes the editor.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.camera.SetViewport(msg.Width, msg.Height-hudRows)
		m.camera.SoftFocusOn(m.cursor, m.lvl.Width, m.lvl.Height)
		return m, nil
	}
	return m, nil
}

// handleNameKey routes keys to the rename input.
func (m EditorModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if name := m.nameInput.Value(); name != "" {
			m.lvl.Name = name
			m.dirty = true
		}
		m.naming = false
		m.status = fmt.Sprintf("renamed to %q", m.lvl.Name)
		return m, nil
	case "esc":
		m.naming = false
		m.status = "rename cancelled"
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleKey processes editor keys.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "w":
		m.moveCursor(0, -editorStep)
	case "down", "s":
		m.moveCursor(0, editorStep)
	case "left", "a":
		m.moveCursor(-editorStep, 0)
	case "right", "d":
		m.moveCursor(editorStep, 0)

	case "tab":
		m.tool = (m.tool + 1) % toolCount
		m.corner = nil
		m.status = fmt.Sprintf("tool: %s", m.tool)

	case "t":
		m.texture = (m.texture + 1) % len(wallRunes)
		m.status = fmt.Sprintf("wall texture %d", m.texture)

	case " ", "enter":
		m.place()

	case "x":
		m.deleteAtCursor()

	case "n":
		m.naming = true
		m.nameInput.SetValue(m.lvl.Name)
		m.nameInput.Focus()
		m.status = "enter new name, esc to cancel"

	case "ctrl+s":
		m.save()
	}

	return m, nil
}

func (m *EditorModel) moveCursor(dx, dy float64) {
	m.cursor.X = core.ClampF(m.cursor.X+dx, 0, m.lvl.Width)
	m.cursor.Y = core.ClampF(m.cursor.Y+dy, 0, m.lvl.Height)
	m.camera.SoftFocusOn(m.cursor, m.lvl.Width, m.lvl.Height)
}

// place drops the active tool's object at the cursor. Walls take two
// presses: one per corner.
func (m *EditorModel) place() {
	switch m.tool {
	case ToolWall:
		if m.corner == nil {
			c := m.cursor
			m.corner = &c
			m.status = "wall: place the opposite corner"
			return
		}
		box := rectFromCorners(*m.corner, m.cursor)
		if box.W <= 0 || box.H <= 0 {
			m.status = "wall needs two distinct corners"
			m.corner = nil
			return
		}
		m.lvl.Walls = append(m.lvl.Walls, level.Wall{Box: box, Texture: m.texture})
		m.corner = nil
		m.status = "wall placed"

	case ToolGem:
		m.lvl.Gems = append(m.lvl.Gems, level.Gem{Pos: m.cursor})
		m.status = "gem placed"
	case ToolPump:
		m.lvl.Pumps = append(m.lvl.Pumps, level.Pump{Pos: m.cursor})
		m.status = "pump placed"
	case ToolMine:
		m.lvl.Mines = append(m.lvl.Mines, level.Mine{Pos: m.cursor})
		m.status = "mine placed"
	case ToolFlag:
		m.lvl.Finish = &level.Finish{Pos: m.cursor}
		m.status = "flag placed"
	case ToolStart:
		m.lvl.Start = m.cursor
		m.status = "start moved"
	}
	m.dirty = true
}

// deleteAtCursor removes the object nearest the cursor, or the wall under it.
func (m *EditorModel) deleteAtCursor() {
	near := func(p core.Vec2) bool {
		return p.Sub(m.cursor).LenSq() <= pickRadius*pickRadius
	}

	for i := range m.lvl.Gems {
		if near(m.lvl.Gems[i].Pos) {
			m.lvl.Gems = append(m.lvl.Gems[:i], m.lvl.Gems[i+1:]...)
			m.dirty = true
			m.status = "gem deleted"
			return
		}
	}
	for i := range m.lvl.Pumps {
		if near(m.lvl.Pumps[i].Pos) {
			m.lvl.Pumps = append(m.lvl.Pumps[:i], m.lvl.Pumps[i+1:]...)
			m.dirty = true
			m.status = "pump deleted"
			return
		}
	}
	for i := range m.lvl.Mines {
		if near(m.lvl.Mines[i].Pos) {
			m.lvl.Mines = append(m.lvl.Mines[:i], m.lvl.Mines[i+1:]...)
			m.dirty = true
			m.status = "mine deleted"
			return
		}
	}
	if m.lvl.Finish != nil && near(m.lvl.Finish.Pos) {
		m.lvl.Finish = nil
		m.dirty = true
		m.status = "flag deleted"
		return
	}
	for i := range m.lvl.Walls {
		if m.lvl.Walls[i].Box.Contains(m.cursor) {
			m.lvl.Walls = append(m.lvl.Walls[:i], m.lvl.Walls[i+1:]...)
			m.dirty = true
			m.status = "wall deleted"
			return
		}
	}
	m.status = "nothing under the cursor"
}

// save validates and writes the working copy.
func (m *EditorModel) save() {
	if err := m.lvl.Validate(); err != nil {
		m.status = fmt.Sprintf("not saved: %v", err)
		return
	}
	if err := level.Save(m.lvl, m.path); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.dirty = false
	m.status = fmt.Sprintf("saved to %s", m.path)
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	// Everything present and armed: the editor shows the level as a fresh
	// attempt would see it. A zero-mass ball keeps DrawScene from drawing one.
	snap := game.Snapshot{GemsTotal: len(m.lvl.Gems)}
	DrawScene(m.screen, m.camera, m.lvl, snap)

	// Start marker, cursor and pending wall corner on top of the scene.
	if x, y := m.camera.ToCell(m.lvl.Start); x >= 0 && y >= 0 {
		m.screen.SetCell(x, y, 'S', core.ColorBrightMagenta)
	}
	if x, y := m.camera.ToCell(m.cursor); x >= 0 && y >= 0 {
		m.screen.SetCell(x, y, '+', core.ColorBrightWhite)
	}
	if m.corner != nil {
		if x, y := m.camera.ToCell(*m.corner); x >= 0 && y >= 0 {
			m.screen.SetCell(x, y, '◇', core.ColorBrightWhite)
		}
	}

	y := m.screen.Height() - hudRows
	dirty := ""
	if m.dirty {
		dirty = " *"
	}
	info := fmt.Sprintf(" EDIT %s%s  tool:%s  (%.0f,%.0f)  walls:%d gems:%d pumps:%d mines:%d",
		m.lvl.Name, dirty, m.tool, m.cursor.X, m.cursor.Y,
		len(m.lvl.Walls), len(m.lvl.Gems), len(m.lvl.Pumps), len(m.lvl.Mines))
	m.screen.DrawTextColored(0, y, info, core.ColorWhite)

	if m.naming {
		m.screen.DrawTextColored(0, y+1, " name: "+m.nameInput.View(), core.ColorBrightCyan)
	} else {
		m.screen.DrawTextColored(0, y+1, " "+m.status, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Dirty reports whether the working copy has unsaved changes.
func (m EditorModel) Dirty() bool {
	return m.dirty
}

// Level returns the working copy.
func (m EditorModel) Level() *level.Level {
	return m.lvl
}

// rectFromCorners builds the axis-aligned box spanned by two points.
func rectFromCorners(a, b core.Vec2) core.Rect {
	x0, x1 := a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// RunEditor runs the editor in its own Bubble Tea program.
func RunEditor(lvl *level.Level, path string, rt core.RuntimeConfig) error {
	model := NewEditorModel(lvl, path, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
