package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-rush/internal/core"
	"github.com/vovakirdan/dodge-rush/internal/registry"
	"github.com/vovakirdan/dodge-rush/internal/storage"
)

// Options configures a play session.
type Options struct {
	GameID  string
	Runtime core.RuntimeConfig
	Store   *storage.Store // Round history; nil disables it
	Best    core.BestStore // Best score; nil keeps it in memory
}

// Model is the Bubble Tea model for running a game.
// Each frame feeds elapsed wall time into a fixed-step clock, which runs
// zero or more simulation ticks before the frame is drawn.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	viewport *core.Viewport
	store    *storage.Store
	config   core.RuntimeConfig

	keys    *KeyMapper
	help    help.Model
	latch   *axisLatch
	clock   *core.FixedStep
	pending core.InputFrame // Presses not yet delivered to a tick
	last    time.Time       // Time of the previous frame

	gameState  core.GameState
	quitting   bool
	showHelp   bool // Controls screen open over the menu
	scoreSaved bool // Whether the current game over was recorded
}

// NewModel creates a Bubble Tea model for the game named in opts.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}

	vp := core.WorldViewport(cfg.ScreenW, cfg.ScreenH)
	viewport := &vp

	game, err := registry.Create(opts.GameID, registry.Env{Geometry: viewport, Best: opts.Best})
	if err != nil {
		return Model{}, err
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		viewport: viewport,
		store:    opts.Store,
		config:   cfg,
		keys:     NewKeyMapper(),
		help:     newControlsHelp(),
		latch:    newAxisLatch(AxisHold),
		clock:    core.NewFixedStep(cfg.TickRate),
		pending:  core.NewInputFrame(),
	}, nil
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if m.showHelp {
		return m.handleHelpKey(msg)
	}
	if m.keys.IsHelp(msg) && m.game.State().InMenu {
		m.showHelp = true
		return m, nil
	}

	action, axis := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.latch.Press(axis, now)
	if action != core.ActionNone {
		m.pending.Set(action)
	}
	return m, nil
}

// handleHelpKey handles keys while the controls screen is open.
// Everything except closing and quitting is swallowed.
func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsBack(msg) {
		m.showHelp = false
		return m, nil
	}
	if action, _ := m.keys.MapKey(msg); action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The round keeps running;
// the game reads the new bounds on its next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	*m.viewport = core.WorldViewport(msg.Width, msg.Height)
	return m, nil
}

// handleFrame runs the simulation ticks owed for the time since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	axis := m.latch.Axis(now)
	m.clock.Advance(elapsed, func(dt float64) {
		in := m.pending.Clone()
		in.SetAxis(axis)
		// Presses go to the first tick only. With no tick they wait for the next frame.
		m.pending.ClearActions()

		result := m.game.Step(in, dt)
		m.recordRound(result.State)
	})

	return m, frameCmd(m.config.FrameRate)
}

// recordRound saves a finished round to the history once.
func (m *Model) recordRound(state core.GameState) {
	m.gameState = state
	if !state.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	if m.store != nil && state.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), state.Score)
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dodgerush", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.controlsView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

func newControlsHelp() help.Model {
	h := help.New()
	h.ShowAll = true
	return h
}

// controlsView renders the key bindings in a centered panel.
func (m Model) controlsView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("CONTROLS"),
		"",
		m.help.View(m.keys.Keys()),
		"",
		dimStyle.Render("esc/h back"),
	)
	return lipgloss.Place(m.screen.Width(), m.screen.Height(),
		lipgloss.Center, lipgloss.Center, panelStyle.Render(body))
}

// Game returns the game being driven.
func (m Model) Game() registry.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
