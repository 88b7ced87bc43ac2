// Package session glues a running game to logging and score storage. Every
// frontend creates its game through Create so they all log and record runs
// the same way.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Recorder logs state transitions and saves one run per finished game.
type Recorder struct {
	variant string
	store   *storage.Store
	logger  *log.Logger
	saved   bool
	last    storage.Run
}

// NewRecorder creates a recorder for variant. store may be nil, in which
// case finished games are only logged.
func NewRecorder(variant string, store *storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{variant: variant, store: store, logger: logger}
}

// OnTransition matches registry.Options.OnTransition.
func (r *Recorder) OnTransition(from, to string, s core.GameState) {
	r.logger.Info("state changed", "variant", r.variant, "from", from, "to", to,
		"score", s.Score, "lives", s.Lives, "cleared", s.Cleared)

	switch {
	case to == "running" && from == "finished":
		r.saved = false
	case s.GameOver:
		r.save(s)
	}
}

func (r *Recorder) save(s core.GameState) {
	if r.saved || s.Score <= 0 {
		return
	}
	r.saved = true
	if r.store == nil {
		return
	}
	run, err := r.store.SaveRun(storage.Run{Variant: r.variant, Score: s.Score, BricksCleared: s.Cleared})
	if err != nil {
		r.logger.Warn("could not save run", "variant", r.variant, "error", err)
		return
	}
	r.last = run
	r.logger.Info("run saved", "id", run.ID, "variant", run.Variant, "score", run.Score)
}

// LastRun returns the most recently saved run, if any.
func (r *Recorder) LastRun() (storage.Run, bool) {
	return r.last, r.last.ID != ""
}

// Options configure Create.
type Options struct {
	Store     *storage.Store
	Logger    *log.Logger
	Clock     core.Clock
	Autopilot bool
}

// Create builds variant on top of base with a recorder attached.
func Create(variant string, base config.BreakoutConfig, opts Options) (registry.Game, *Recorder, error) {
	rec := NewRecorder(variant, opts.Store, opts.Logger)
	g, err := registry.Create(variant, base, registry.Options{
		Clock:        opts.Clock,
		Autopilot:    opts.Autopilot,
		OnTransition: rec.OnTransition,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("session: %w", err)
	}
	rec.logger.Debug("game created", "variant", g.ID(), "autopilot", opts.Autopilot)
	return g, rec, nil
}
