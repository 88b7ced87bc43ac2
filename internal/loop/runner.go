package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the part of a game the loop drives.
type Game interface {
	HandleIntent(in core.Intent)
	Step() core.StepResult
}

// Runner owns a game and feeds it ticks and intents from a single
// goroutine. It stops ticking when a step reports the game finished. A
// new-game intent always restarts the schedule, so the first tick of the
// new game is one full period away.
type Runner struct {
	game    Game
	sched   *Scheduler
	intents <-chan core.Intent
	frame   func()
	logger  *log.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithFrame sets a callback invoked after every tick and every intent,
// typically to render.
func WithFrame(fn func()) RunnerOption {
	return func(r *Runner) { r.frame = fn }
}

// WithLogger sets the logger for scheduling events.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a runner for game using sched for timing.
func NewRunner(game Game, sched *Scheduler, intents <-chan core.Intent, opts ...RunnerOption) *Runner {
	r := &Runner{
		game:    game,
		sched:   sched,
		intents: intents,
		frame:   func() {},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks until ctx is done, the intent channel is closed or a quit
// intent arrives. Only a cancelled context yields an error.
func (r *Runner) Run(ctx context.Context) error {
	r.sched.Start()
	defer r.sched.Stop()
	r.frame()

	timer := time.NewTimer(r.sched.NextDelay())
	defer timer.Stop()

	for {
		var tick <-chan time.Time
		if r.sched.Running() {
			tick = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case in, ok := <-r.intents:
			if !ok || in == core.IntentQuit {
				return nil
			}
			r.game.HandleIntent(in)
			if in == core.IntentNewGame {
				r.sched.Restart()
				resetTimer(timer, r.sched.NextDelay())
				r.logger.Debug("scheduler restarted")
			}
			r.frame()

		case <-tick:
			res := r.game.Step()
			r.sched.Tick()
			r.frame()
			if !res.Continue {
				r.sched.Stop()
				r.logger.Debug("scheduler stopped", "score", res.State.Score, "ticks", r.sched.Ticks())
				continue
			}
			timer.Reset(r.sched.NextDelay())
		}
	}
}

// resetTimer rearms t, draining a pending fire.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
