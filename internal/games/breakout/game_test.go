package breakout

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, opts ...Option) (*Game, *core.MockClock) {
	t.Helper()
	clock := core.NewMockClock(epoch)
	g, err := New(config.DefaultBreakoutConfig(), append([]Option{WithClock(clock)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, clock
}

// dropBall puts the ball just above the bottom edge, falling, clear of the
// paddle.
func dropBall(g *Game) {
	g.paddle.Rect.X = g.layout.Wall
	g.ball.Rect.X, g.ball.Rect.Y = 400, g.layout.ScreenH-5
	g.ball.Vel = Velocity{VX: 7.5, VY: 7.5}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 0
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, want ErrInvalid", err)
	}
}

func TestNewGameInitialState(t *testing.T) {
	g, _ := newTestGame(t)

	ctx := g.Context()
	if ctx.Score != 0 || ctx.Lives != 3 || ctx.State != StateRunning || ctx.Paused {
		t.Errorf("initial context = %+v", ctx)
	}
	if g.Field().Remaining() != 112 {
		t.Errorf("initial bricks = %d", g.Field().Remaining())
	}
	if !g.Invalidator().Full() {
		t.Error("a new game should repaint everything")
	}
	if g.TickPeriod() != 50*time.Millisecond {
		t.Errorf("tick period = %v", g.TickPeriod())
	}
}

// Ball travelling west reaches the left wall's inner edge and bounces east.
func TestScenarioLeftWallBounce(t *testing.T) {
	g, _ := newTestGame(t)
	g.ball.Rect.X, g.ball.Rect.Y = 19, 250
	g.ball.Vel = Velocity{VX: -7.5, VY: -7.5}

	g.Step()

	if g.ball.Vel.VX <= 0 {
		t.Fatalf("vx = %v, want positive after hitting the left wall", g.ball.Vel.VX)
	}
	if g.ball.Rect.X != 26.5 {
		t.Errorf("ball x = %v, want 26.5", g.ball.Rect.X)
	}
}

// The ball starts at (298,100) with size 10.7, the paddle out of the way
// and no bricks. That spot is far from the left wall, so the bounce comes
// many ticks later. It must land on the tick the ball's left edge is at or
// past x=20, not before.
func TestScenarioLeftWallBounceFromSpawnArea(t *testing.T) {
	g, _ := newTestGame(t)
	keepRows(g.field)
	g.paddle.Rect.X = g.layout.ScreenW - g.layout.Wall - g.paddle.Rect.W
	g.ball.Rect = core.NewRect(298, 100, 10.7, 10.7)
	g.ball.Vel = Velocity{VX: -7.5, VY: -7.5}

	for i := 0; i < 100; i++ {
		x := g.ball.Rect.X
		g.Step()
		if g.ball.Vel.VX <= 0 {
			continue
		}
		if x > 20 {
			t.Fatalf("deflected east at x = %v, before reaching the wall", x)
		}
		if g.ball.Rect.X != x+7.5 {
			t.Errorf("ball x = %v, want %v", g.ball.Rect.X, x+7.5)
		}
		if g.Context().State != StateRunning {
			t.Errorf("state = %v, want RUNNING", g.Context().State)
		}
		return
	}
	t.Fatal("ball never bounced off the left wall")
}

// A south-east ball straddling two bricks of the only row removes the
// western one and scores its value.
func TestScenarioBrickRemovalScores(t *testing.T) {
	g, _ := newTestGame(t)
	keepRows(g.field, 0)
	g.ball.Rect.X, g.ball.Rect.Y = 55, 60
	g.ball.Vel = Velocity{VX: 7.5, VY: 7.5}

	g.Step()

	if got := g.Context().Score; got != BrickValue(0) {
		t.Errorf("score = %d, want %d", got, BrickValue(0))
	}
	row := g.Field().Row(0)
	if len(row) != 13 || row[0].Col != 1 {
		t.Errorf("row 0 has %d bricks starting at col %d, want 13 from col 1", len(row), row[0].Col)
	}
}

func TestScenarioLastLifeFinishes(t *testing.T) {
	g, clock := newTestGame(t)
	g.ctx.Lives = 1
	dropBall(g)

	res := g.Step()

	if g.ctx.State != StateFinished {
		t.Fatalf("state = %v, want finished", g.ctx.State)
	}
	if g.ctx.Lives != 0 {
		t.Errorf("lives = %d, want 0", g.ctx.Lives)
	}
	if res.Continue || !res.State.GameOver {
		t.Errorf("step result = %+v, want stop", res)
	}

	// Nothing moves any more
	g.HandleIntent(core.IntentMoveLeftStart)
	before := g.Snapshot()
	clock.Advance(10 * time.Second)
	g.Step()
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("a finished game must not change on Step")
	}
}

func TestScenarioReinsertAfterDelay(t *testing.T) {
	g, clock := newTestGame(t)
	g.ctx.Lives = 2
	dropBall(g)

	res := g.Step()
	if g.ctx.State != StateReinsert || g.ctx.Lives != 1 {
		t.Fatalf("state = %v lives = %d, want reinsert with 1", g.ctx.State, g.ctx.Lives)
	}
	if !res.Continue {
		t.Error("reinsert should keep ticking")
	}
	if !g.ctx.DiedAt.Equal(epoch) {
		t.Errorf("DiedAt = %v, want %v", g.ctx.DiedAt, epoch)
	}

	clock.Advance(1999 * time.Millisecond)
	g.Step()
	if g.ctx.State != StateReinsert {
		t.Fatalf("state after 1999ms = %v, want reinsert", g.ctx.State)
	}

	clock.Advance(time.Millisecond)
	g.Step()
	if g.ctx.State != StateRunning {
		t.Fatalf("state after 2000ms = %v, want running", g.ctx.State)
	}
	spawn := NewBall(g.layout)
	if g.ball.Rect != spawn.Rect || g.ball.Vel != spawn.Vel {
		t.Errorf("ball = %+v, want fresh ball %+v", *g.ball, *spawn)
	}
}

func TestScenarioNewGameFromFinished(t *testing.T) {
	g, _ := newTestGame(t)
	keepRows(g.field, 0)
	g.ctx.Score = 42
	g.ctx.Lives = 1
	dropBall(g)
	g.Step()
	if g.ctx.State != StateFinished {
		t.Fatal("setup: game should be finished")
	}
	g.Invalidator().Clear()

	g.HandleIntent(core.IntentNewGame)

	ctx := g.Context()
	if ctx.Score != 0 || ctx.Lives != 3 || ctx.State != StateRunning || ctx.Paused {
		t.Errorf("after new game context = %+v", ctx)
	}
	if g.Field().Remaining() != 112 {
		t.Errorf("bricks = %d, want full field", g.Field().Remaining())
	}
	if !g.Invalidator().Full() {
		t.Error("new game should invalidate the whole screen")
	}
	if res := g.Step(); !res.Continue {
		t.Error("new game should run again")
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g, _ := newTestGame(t)
	g.HandleIntent(core.IntentMoveRightStart)
	g.HandleIntent(core.IntentTogglePause)

	before := g.Snapshot()
	g.Step()
	if after := g.Snapshot(); after.Hash() != before.Hash() {
		t.Error("paused game changed on Step")
	}
	if !g.State().Paused {
		t.Error("State().Paused = false")
	}

	g.HandleIntent(core.IntentTogglePause)
	g.Step()
	if g.paddle.Rect.X != 275 {
		t.Errorf("paddle x = %v after resuming, want 275", g.paddle.Rect.X)
	}
}

func TestPauseIgnoredWhenFinished(t *testing.T) {
	g, _ := newTestGame(t)
	g.ctx.Lives = 1
	dropBall(g)
	g.Step()

	g.HandleIntent(core.IntentTogglePause)
	if g.ctx.Paused {
		t.Error("pause must not toggle in the finished state")
	}
}

func TestPaddleIntents(t *testing.T) {
	tests := []struct {
		name    string
		intents []core.Intent
		wantX   float64
	}{
		{"idle", nil, 260},
		{"left", []core.Intent{core.IntentMoveLeftStart}, 245},
		{"right", []core.Intent{core.IntentMoveRightStart}, 275},
		{"left wins", []core.Intent{core.IntentMoveRightStart, core.IntentMoveLeftStart}, 245},
		{"released", []core.Intent{core.IntentMoveLeftStart, core.IntentMoveLeftEnd}, 260},
		{"right after left release", []core.Intent{core.IntentMoveLeftStart, core.IntentMoveRightStart, core.IntentMoveLeftEnd}, 275},
		{"unknown ignored", []core.Intent{core.Intent(99), core.IntentQuit}, 260},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			for _, in := range tt.intents {
				g.HandleIntent(in)
			}
			g.Step()
			if g.paddle.Rect.X != tt.wantX {
				t.Errorf("paddle x = %v, want %v", g.paddle.Rect.X, tt.wantX)
			}
		})
	}
}

func TestPaddleMovesDuringReinsert(t *testing.T) {
	g, _ := newTestGame(t)
	dropBall(g)
	g.Step()
	if g.ctx.State != StateReinsert {
		t.Fatal("setup: expected reinsert")
	}

	x := g.paddle.Rect.X
	g.HandleIntent(core.IntentMoveRightStart)
	g.Step()
	if g.paddle.Rect.X != x+15 {
		t.Errorf("paddle x = %v, want %v", g.paddle.Rect.X, x+15)
	}
}

func TestTransitionHook(t *testing.T) {
	type change struct{ from, to State }
	var got []change
	g, clock := newTestGame(t, WithTransitionHook(func(from, to State, _ Context) {
		got = append(got, change{from, to})
	}))
	g.ctx.Lives = 2

	dropBall(g)
	g.Step()
	clock.Advance(2 * time.Second)
	g.Step()
	dropBall(g)
	g.Step()
	g.HandleIntent(core.IntentNewGame)

	want := []change{
		{StateRunning, StateReinsert},
		{StateReinsert, StateRunning},
		{StateRunning, StateFinished},
		{StateFinished, StateRunning},
	}
	if len(got) != len(want) {
		t.Fatalf("transitions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same inputs must produce identical results
	run := func() Snapshot {
		g, clock := newTestGame(t)
		for i := range 600 {
			switch {
			case i%40 == 0:
				g.HandleIntent(core.IntentMoveLeftStart)
			case i%40 == 20:
				g.HandleIntent(core.IntentMoveLeftEnd)
				g.HandleIntent(core.IntentMoveRightStart)
			case i%40 == 39:
				g.HandleIntent(core.IntentMoveRightEnd)
			}
			clock.Advance(50 * time.Millisecond)
			if !g.Step().Continue {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: %+v vs %+v", snap1, snap2)
	}
}

func TestAutopilotScores(t *testing.T) {
	g, clock := newTestGame(t, WithAutopilot(true))
	for range 2000 {
		clock.Advance(50 * time.Millisecond)
		g.Step()
	}
	if g.Context().Score == 0 {
		t.Error("autopilot never hit a brick")
	}
	if g.Context().Lives != 3 {
		t.Errorf("autopilot lost a ball, lives = %d", g.Context().Lives)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g, clock := newTestGame(t, WithAutopilot(true))
	for range 300 {
		clock.Advance(50 * time.Millisecond)
		g.Step()
	}
	snap := g.Snapshot()

	other, _ := newTestGame(t)
	other.ApplySnapshot(snap)
	restored := other.Snapshot()
	if restored.Hash() != snap.Hash() {
		t.Errorf("restored snapshot differs: %+v vs %+v", restored, snap)
	}
	if other.Field().Remaining() != g.Field().Remaining() {
		t.Errorf("remaining bricks %d vs %d", other.Field().Remaining(), g.Field().Remaining())
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateRunning:  "running",
		StateReinsert: "reinsert",
		StateFinished: "finished",
		State(9):      "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
