package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// countingGame finishes after a fixed number of steps per game.
type countingGame struct {
	perGame  int32
	steps    atomic.Int32
	games    atomic.Int32
	intents  atomic.Int32
	finished chan struct{}
}

func newCountingGame(perGame int32) *countingGame {
	g := &countingGame{perGame: perGame, finished: make(chan struct{}, 4)}
	g.games.Store(1)
	return g
}

func (g *countingGame) HandleIntent(in core.Intent) {
	g.intents.Add(1)
	if in == core.IntentNewGame {
		g.steps.Store(0)
		g.games.Add(1)
	}
}

func (g *countingGame) Step() core.StepResult {
	n := g.steps.Add(1)
	if n > g.perGame {
		panic("stepped a finished game")
	}
	done := n == g.perGame
	if done {
		g.finished <- struct{}{}
	}
	return core.StepResult{State: core.GameState{GameOver: done}, Continue: !done}
}

func waitFinished(t *testing.T, g *countingGame) {
	t.Helper()
	select {
	case <-g.finished:
	case <-time.After(2 * time.Second):
		t.Fatal("game did not finish in time")
	}
}

func TestRunnerStopsAndRestarts(t *testing.T) {
	g := newCountingGame(5)
	intents := make(chan core.Intent)
	var frames atomic.Int32
	r := NewRunner(g, NewScheduler(nil, time.Millisecond), intents, WithFrame(func() { frames.Add(1) }))

	errc := make(chan error, 1)
	go func() { errc <- r.Run(context.Background()) }()

	waitFinished(t, g)
	time.Sleep(20 * time.Millisecond)
	if n := g.steps.Load(); n != 5 {
		t.Fatalf("steps after finishing = %d, want 5", n)
	}

	intents <- core.IntentNewGame
	waitFinished(t, g)

	intents <- core.IntentQuit
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run() = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}

	if g.games.Load() != 2 {
		t.Errorf("games = %d, want 2", g.games.Load())
	}
	// Initial frame, ten ticks, one intent
	if n := frames.Load(); n != 12 {
		t.Errorf("frames = %d, want 12", n)
	}
}

func TestRunnerNewGameResetsDeadline(t *testing.T) {
	clock := core.NewMockClock(time.Unix(0, 0))
	sched := NewScheduler(clock, time.Hour)
	g := newCountingGame(5)
	intents := make(chan core.Intent)
	frames := make(chan struct{}, 4)
	r := NewRunner(g, sched, intents, WithFrame(func() { frames <- struct{}{} }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()

	waitFrame := func() {
		t.Helper()
		select {
		case <-frames:
		case <-time.After(2 * time.Second):
			t.Fatal("no frame")
		}
	}
	waitFrame()

	clock.Advance(40 * time.Minute)
	if d := sched.NextDelay(); d != 20*time.Minute {
		t.Fatalf("delay before new game = %v, want 20m", d)
	}

	// New game while the old one is still running
	intents <- core.IntentNewGame
	waitFrame()
	if !sched.Running() {
		t.Fatal("scheduler stopped after a new game")
	}
	if d := sched.NextDelay(); d != time.Hour {
		t.Errorf("delay after new game = %v, want a full period", d)
	}
	if g.steps.Load() != 0 {
		t.Errorf("steps = %d, want 0", g.steps.Load())
	}

	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestRunnerContextCancel(t *testing.T) {
	g := newCountingGame(1 << 30)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	r := NewRunner(g, NewScheduler(nil, time.Millisecond), make(chan core.Intent))
	if err := r.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, want deadline exceeded", err)
	}
	if g.steps.Load() == 0 {
		t.Error("expected some ticks before the deadline")
	}
}

func TestRunnerClosedIntents(t *testing.T) {
	g := newCountingGame(1 << 30)
	intents := make(chan core.Intent, 2)
	intents <- core.IntentTogglePause
	close(intents)

	r := NewRunner(g, NewScheduler(nil, time.Hour), intents)
	if err := r.Run(context.Background()); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
	if g.intents.Load() != 1 {
		t.Errorf("intents handled = %d, want 1", g.intents.Load())
	}
}
