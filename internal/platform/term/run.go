package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/loop"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Terminals report presses only, so movement releases are synthesized.
const (
	// DefaultRepeatDelay is how long a fresh press stays held. It is above
	// the usual delay before a held key starts repeating.
	DefaultRepeatDelay = 500 * time.Millisecond
	// DefaultReleaseAfter is how long a repeated press stays held.
	DefaultReleaseAfter = 180 * time.Millisecond
)

// Options configure Run.
type Options struct {
	Clock        core.Clock    // Defaults to the system clock
	RepeatDelay  time.Duration // Defaults to DefaultRepeatDelay
	ReleaseAfter time.Duration // Defaults to DefaultReleaseAfter
	Logger       *log.Logger   // Defaults to discarding
}

// heldGame synthesizes movement releases in front of a game.
type heldGame struct {
	registry.Game
	hold  *core.KeyHold
	clock core.Clock
}

func (h *heldGame) HandleIntent(in core.Intent) {
	for _, next := range h.hold.Press(in, h.clock.Now()) {
		h.Game.HandleIntent(next)
	}
}

func (h *heldGame) Step() core.StepResult {
	if in, ok := h.hold.Expire(h.clock.Now()); ok {
		h.Game.HandleIntent(in)
	}
	return h.Game.Step()
}

// Run plays game on screen until the player quits or ctx is done. The
// screen must already be initialized; the caller finalizes it.
//
// Key events are read on one goroutine and the game is stepped and drawn
// on another, so the game itself is only touched by the loop.
func Run(ctx context.Context, screen tcell.Screen, game registry.Game, opts Options) error {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = DefaultRepeatDelay
	}
	if opts.ReleaseAfter <= 0 {
		opts.ReleaseAfter = DefaultReleaseAfter
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	display := NewDisplay(screen, game)
	intents := make(chan core.Intent, 16)
	runner := loop.NewRunner(
		&heldGame{Game: game, hold: core.NewKeyHold(opts.RepeatDelay, opts.ReleaseAfter), clock: opts.Clock},
		loop.NewScheduler(opts.Clock, game.TickPeriod()),
		intents,
		loop.WithFrame(func() { display.Frame() }),
		loop.WithLogger(opts.Logger),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer func() {
			cancel()
			// Wake the event pump
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return runner.Run(ctx)
	})
	eg.Go(func() error {
		return pump(ctx, screen, intents, opts.Logger)
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	return nil
}

// pump forwards key events as intents until ctx is done or a quit key is
// pressed.
func pump(ctx context.Context, screen tcell.Screen, intents chan<- core.Intent, logger *log.Logger) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		var in core.Intent
		switch ev := ev.(type) {
		case *tcell.EventKey:
			in = Intent(ev)
			if in == core.IntentNone {
				continue
			}
		case *tcell.EventResize:
			logger.Debug("terminal resized")
			screen.Sync()
			// IntentNone only wakes the loop to redraw at the new size
			in = core.IntentNone
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
			continue
		default:
			continue
		}

		select {
		case intents <- in:
		case <-ctx.Done():
			return nil
		}
		if in == core.IntentQuit {
			return nil
		}
	}
}
