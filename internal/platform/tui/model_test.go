package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T) (Model, *breakout.Game, *core.MockClock) {
	t.Helper()
	clock := core.NewMockClock(epoch)
	g, err := registry.Create("classic", config.DefaultBreakoutConfig(), registry.Options{Clock: clock})
	if err != nil {
		t.Fatalf("registry.Create: %v", err)
	}
	m := NewModel(g, Options{Width: 60, Height: 22, Clock: clock})
	m.Init()
	return m, g.(*breakout.Game), clock
}

// tick delivers one tick addressed to m.
func tick(t *testing.T, m Model, clock *core.MockClock) (Model, tea.Cmd) {
	t.Helper()
	clock.Advance(50 * time.Millisecond)
	next, cmd := m.Update(TickMsg{Time: clock.Now(), ID: m.id})
	return next.(Model), cmd
}

func TestModelTicksGame(t *testing.T) {
	m, g, clock := newTestModel(t)
	ball := g.Ball().Rect

	m, cmd := tick(t, m, clock)
	if cmd == nil {
		t.Fatal("a running game should schedule the next tick")
	}
	if g.Ball().Rect == ball {
		t.Error("tick did not advance the ball")
	}

	// Ticks scheduled by another model are ignored
	before := g.Snapshot().Tick
	next, cmd := m.Update(TickMsg{Time: clock.Now(), ID: m.id + 1000})
	m = next.(Model)
	if cmd != nil || g.Snapshot().Tick != before {
		t.Error("foreign tick was processed")
	}
}

func TestModelMovementKeys(t *testing.T) {
	m, g, clock := newTestModel(t)
	start := g.Paddle().Rect.X

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	m, _ = tick(t, m, clock)
	if x := g.Paddle().Rect.X; x != start-15 {
		t.Fatalf("paddle x = %v after left, want %v", x, start-15)
	}

	// With no key repeat the hold lapses and the paddle stops
	clock.Advance(time.Second)
	m, _ = tick(t, m, clock)
	stopped := g.Paddle().Rect.X
	m, _ = tick(t, m, clock)
	if g.Paddle().Rect.X != stopped {
		t.Error("paddle kept moving after the key hold expired")
	}

	// Right while left is held switches direction at once
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	next, _ = m.Update(runeKey('d'))
	m = next.(Model)
	before := g.Paddle().Rect.X
	tick(t, m, clock)
	if g.Paddle().Rect.X != before+15 {
		t.Errorf("paddle x = %v, want %v", g.Paddle().Rect.X, before+15)
	}
}

func TestModelPauseAndDebug(t *testing.T) {
	m, g, _ := newTestModel(t)

	next, _ := m.Update(runeKey('p'))
	m = next.(Model)
	if !g.Context().Paused {
		t.Error("p should pause")
	}
	next, _ = m.Update(runeKey('D'))
	m = next.(Model)
	if !g.Debug() {
		t.Error("D should toggle debug")
	}
	if !strings.Contains(m.View(), "tick") {
		t.Error("debug line missing from the view")
	}
}

func TestModelStopsWhenFinishedAndRestarts(t *testing.T) {
	m, g, clock := newTestModel(t)

	// Lose every ball with the paddle parked out of the way
	snap := g.Snapshot()
	snap.Lives = 1
	snap.PaddleX = 20
	snap.BallX, snap.BallY = 400, 395
	snap.BallVX, snap.BallVY = 7.5, 7.5
	g.ApplySnapshot(snap)

	m, cmd := tick(t, m, clock)
	if cmd != nil {
		t.Error("a finished game must not schedule ticks")
	}
	if m.Running() || !g.State().GameOver {
		t.Fatalf("running = %v, state = %+v", m.Running(), g.State())
	}
	if !strings.Contains(m.View(), breakout.FinishedText) {
		t.Error("finished view should show the restart hint")
	}

	next, cmd := m.Update(runeKey('n'))
	m = next.(Model)
	if cmd == nil || !m.Running() {
		t.Fatal("new game should restart the tick loop")
	}
	if s := g.State(); s.GameOver || s.Lives != 3 || s.Score != 0 {
		t.Errorf("state after new game = %+v", s)
	}
}

func TestModelNewGameMidGameResetsTicks(t *testing.T) {
	m, g, clock := newTestModel(t)
	oldID := m.id

	clock.Advance(40 * time.Millisecond)
	next, cmd := m.Update(runeKey('n'))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("new game should schedule a fresh tick")
	}
	if d := m.sched.NextDelay(); d != 50*time.Millisecond {
		t.Errorf("next tick delay = %v, want a full 50ms period", d)
	}
	if m.id == oldID {
		t.Fatal("new game should start a new tick generation")
	}

	// The tick scheduled for the old game arrives and is ignored
	ball := g.Ball().Rect
	next, cmd = m.Update(TickMsg{Time: clock.Now(), ID: oldID})
	m = next.(Model)
	if cmd != nil || g.Ball().Rect != ball {
		t.Error("a tick from the previous game must be dropped")
	}

	m, cmd = tick(t, m, clock)
	if cmd == nil || g.Ball().Rect == ball {
		t.Error("the new game should tick on its own schedule")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m, _, _ := newTestModel(t)

	// Back is disabled unless the model runs inside a session
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).BackToMenu() {
		t.Error("esc should do nothing outside a session")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m, g, _ := newTestModel(t)
	m.View()
	if g.Invalidator().Pending() {
		t.Fatal("view should consume pending regions")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if !g.Invalidator().Full() {
		t.Error("resize should force a full redraw")
	}

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, want 30", len(lines))
	}
	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, want 100", m.screen.Width())
	}
}
