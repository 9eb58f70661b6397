package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-rush/internal/core"
	"github.com/vovakirdan/dodge-rush/internal/games/dodge"
	"github.com/vovakirdan/dodge-rush/internal/storage"
)

var frameStart = time.Unix(5000, 0)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		GameID:  dodge.IDDodge,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 120, FrameRate: 60, Seed: 1},
		Store:   store,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func snapshot(m Model) dodge.Snapshot {
	return m.Game().(*dodge.Game).Snapshot()
}

func TestNewModelUnknownGame(t *testing.T) {
	if _, err := NewModel(Options{GameID: "nope", Runtime: core.DefaultConfig()}); err == nil {
		t.Error("NewModel with unknown game should fail")
	}
}

func TestPressCarriesOverUntilATickRuns(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	// First frame has no elapsed time, so no tick runs.
	m = update(t, m, FrameMsg(frameStart))
	if !m.Game().State().InMenu {
		t.Fatal("game should still be on its menu before any tick")
	}

	m = update(t, m, FrameMsg(frameStart.Add(10*time.Millisecond)))
	if m.Game().State().InMenu {
		t.Error("start press should be delivered on the first tick")
	}
	if snapshot(m).Tick != 1 {
		t.Errorf("ticks = %d, want 1", snapshot(m).Tick)
	}
}

func TestPressGoesToFirstTickOnly(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, FrameMsg(frameStart))
	m = update(t, m, FrameMsg(frameStart.Add(10*time.Millisecond)))

	m = update(t, m, runeKey('p'))
	m = update(t, m, FrameMsg(frameStart.Add(60*time.Millisecond)))

	// 50ms at 120Hz runs several ticks; a repeated pause would toggle back.
	if !m.Game().State().Paused {
		t.Error("pause press should apply exactly once")
	}
	if got := snapshot(m).Tick; got < 6 {
		t.Errorf("ticks = %d, want at least 6", got)
	}
}

func TestHeldAxisMovesPlayer(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, FrameMsg(frameStart))
	m = update(t, m, FrameMsg(frameStart.Add(10*time.Millisecond)))
	startX := snapshot(m).State.Player.X

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, frameStart.Add(20*time.Millisecond))
	m = next.(Model)
	m = update(t, m, FrameMsg(frameStart.Add(60*time.Millisecond)))

	if got := snapshot(m).State.Player.X; got <= startX {
		t.Errorf("player X = %v, want > %v", got, startX)
	}

	// Long after the hold expires the player coasts with decaying velocity.
	m = update(t, m, FrameMsg(frameStart.Add(500*time.Millisecond)))
	if vx := snapshot(m).State.Player.VX; vx >= 520 {
		t.Errorf("VX = %v, should decay once the key is released", vx)
	}
}

func TestResizeKeepsRound(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, FrameMsg(frameStart))
	m = update(t, m, FrameMsg(frameStart.Add(100*time.Millisecond)))
	elapsed := snapshot(m).State.Elapsed

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	if m.viewport.W != 400 || m.viewport.H != 300 {
		t.Errorf("viewport = %+v, want 400x300", *m.viewport)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d, want 40x12", m.screen.Width(), m.screen.Height())
	}
	if got := snapshot(m).State; got.Mode != dodge.ModePlaying || got.Elapsed != elapsed {
		t.Errorf("resize changed the round: mode=%v elapsed=%v", got.Mode, got.Elapsed)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewRendersGame(t *testing.T) {
	m := newTestModel(t, nil)
	if !strings.Contains(m.View(), "Dodge Rush") {
		t.Error("view should show the title menu")
	}
}

func TestControlsScreenFromMenu(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, runeKey('h'))
	if !m.showHelp {
		t.Fatal("h on the menu should open the controls screen")
	}
	view := m.View()
	for _, want := range []string{"CONTROLS", "move left", "pause", "screenshot"} {
		if !strings.Contains(view, want) {
			t.Errorf("controls screen missing %q", want)
		}
	}

	// Keys other than back are swallowed while the screen is open.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, FrameMsg(frameStart))
	m = update(t, m, FrameMsg(frameStart.Add(10*time.Millisecond)))
	if !m.Game().State().InMenu {
		t.Error("start press should not reach the game behind the controls screen")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Fatal("esc should close the controls screen")
	}
	if !strings.Contains(m.View(), "H help") {
		t.Error("menu should be visible again")
	}

	m = update(t, m, runeKey('h'))
	m = update(t, m, runeKey('h'))
	if m.showHelp {
		t.Error("h should toggle the controls screen closed")
	}
}

func TestControlsScreenOnlyFromMenu(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, FrameMsg(frameStart))
	m = update(t, m, FrameMsg(frameStart.Add(10*time.Millisecond)))

	m = update(t, m, runeKey('h'))
	if m.showHelp {
		t.Error("controls screen should not open during a round")
	}
	if m.Game().State().InMenu || m.Game().State().Paused {
		t.Error("h should not change the round")
	}
}

func TestQuitFromControlsScreen(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, runeKey('h'))

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should still work on the controls screen")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
}

func TestRecordRoundOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)

	m.recordRound(core.GameState{Score: 5})
	m.recordRound(core.GameState{Score: 7, GameOver: true})
	m.recordRound(core.GameState{Score: 7, GameOver: true})
	m.recordRound(core.GameState{Score: 0})
	m.recordRound(core.GameState{Score: 3, GameOver: true})
	m.recordRound(core.GameState{Score: 0, GameOver: false})
	m.recordRound(core.GameState{Score: 0, GameOver: true})

	scores, err := store.TopScores(dodge.IDDodge, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 7 || scores[1].Score != 3 {
		t.Errorf("recorded rounds = %v, want [7 3]", scores)
	}
}
