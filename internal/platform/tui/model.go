package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/puffball-game/puffball/internal/config"
	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/game"
	"github.com/puffball-game/puffball/internal/level"
	"github.com/puffball-game/puffball/internal/storage"
)

// PlayModel is the Bubble Tea model for playing one level.
type PlayModel struct {
	session *game.Session
	lvl     *level.Level
	cfg     config.Config
	runtime core.RuntimeConfig

	screen *core.Screen
	camera *Camera
	store  *storage.Store
	keys   *KeyMapper

	frame       core.InputFrame
	pumpHeld    bool
	resultSaved bool
	quitting    bool
	backToMenu  bool
}

// NewPlayModel creates a play model for the given level. The session is
// created up front so a broken level fails before the UI starts.
func NewPlayModel(lvl *level.Level, cfg config.Config, rt core.RuntimeConfig, store *storage.Store) (PlayModel, error) {
	session, err := game.NewSession(lvl, cfg)
	if err != nil {
		return PlayModel{}, err
	}

	camera := NewCamera(rt.ScreenW, rt.ScreenH-hudRows)
	camera.FocusOn(lvl.Start, lvl.Width, lvl.Height)

	return PlayModel{
		session: session,
		lvl:     lvl,
		cfg:     cfg,
		runtime: rt,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		camera:  camera,
		store:   store,
		keys:    NewKeyMapper(),
		frame:   core.NewInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.session.State().Terminal() {
		switch action {
		case core.ActionRestart:
			m.session.Restart()
			m.resultSaved = false
			m.camera.FocusOn(m.lvl.Start, m.lvl.Width, m.lvl.Height)
			m.frame.Clear()
		case core.ActionConfirm, core.ActionAbandon:
			m.backToMenu = true
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.frame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation is unaffected;
// only the viewport changes.
func (m PlayModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.camera.SetViewport(msg.Width, msg.Height-hudRows)
	m.camera.SoftFocusOn(m.session.Ball().Pos, m.lvl.Width, m.lvl.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	events := m.session.Step(m.frame, m.runtime.Dt())
	m.frame.Clear()

	m.pumpHeld = false
	for _, ev := range events {
		if ev.Kind == game.EventPumpUsed {
			m.pumpHeld = true
		}
	}

	if m.session.State().Terminal() && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.camera.SoftFocusOn(m.session.Ball().Pos, m.lvl.Width, m.lvl.Height)

	// Keep ticking after the attempt ends so the overlay stays responsive;
	// Step on a finished session is a no-op.
	return m, tickCmd(m.runtime.TickRate)
}

// saveResult writes the finished attempt to the results store, best effort.
func (m *PlayModel) saveResult() {
	if m.store == nil {
		return
	}

	snap := m.session.Snapshot(false)
	outcome := "lost"
	switch snap.State {
	case game.StateWon:
		outcome = "won"
	case game.StateAbandoned:
		outcome = "abandoned"
	}

	reason := ""
	if snap.State == game.StateLost {
		reason = snap.Reason.String()
	}

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveResult(storage.Result{
		LevelID:   m.lvl.ID,
		Outcome:   outcome,
		Reason:    reason,
		Gems:      snap.GemsCollected,
		GemsTotal: snap.GemsTotal,
		Ticks:     snap.Ticks,
	})
}

// View renders the current frame.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot(m.pumpHeld)
	DrawScene(m.screen, m.camera, m.lvl, snap)
	DrawHUD(m.screen, m.lvl, snap, m.cfg.Physics, m.runtime.TickRate)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user wants to return to the level picker.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// RunPlay runs a single level in its own Bubble Tea program.
func RunPlay(lvl *level.Level, cfg config.Config, rt core.RuntimeConfig, store *storage.Store) error {
	model, err := NewPlayModel(lvl, cfg, rt, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
