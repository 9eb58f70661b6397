package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-rush/internal/core"
)

// AxisHold is how long a direction key counts as held after its last
// press or auto-repeat. Terminals report no key-up events.
const AxisHold = 150 * time.Millisecond

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Menu       key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Pause, k.Restart, k.Menu},
		{k.Help, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "move right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc/m", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "controls (menu)"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a discrete action and a direction.
// At most one of action and axis is set.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, axis int) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, km.keys.Left):
		return core.ActionNone, -1
	case key.Matches(msg, km.keys.Right):
		return core.ActionNone, 1
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, 0
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, 0
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, 0
	case key.Matches(msg, km.keys.Menu):
		return core.ActionMenu, 0
	}
	return core.ActionNone, 0
}

// IsScreenshot reports whether msg requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// IsHelp reports whether msg toggles the controls screen.
func (km *KeyMapper) IsHelp(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Help)
}

// IsBack reports whether msg closes the controls screen.
func (km *KeyMapper) IsBack(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Help) || msg.Type == tea.KeyEsc
}

// axisLatch turns direction key presses into a held axis.
// A press in the opposite direction replaces the current one.
type axisLatch struct {
	hold  time.Duration
	dir   int
	until time.Time
}

func newAxisLatch(hold time.Duration) *axisLatch {
	return &axisLatch{hold: hold}
}

// Press records a direction press at now.
func (l *axisLatch) Press(dir int, now time.Time) {
	if dir == 0 {
		return
	}
	l.dir = dir
	l.until = now.Add(l.hold)
}

// Axis returns the held direction at now.
func (l *axisLatch) Axis(now time.Time) int {
	if l.dir == 0 || now.After(l.until) {
		return 0
	}
	return l.dir
}
