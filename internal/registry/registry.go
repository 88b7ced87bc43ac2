// Package registry provides a global registry of playable Breakout variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrUnknownVariant is returned by Create for an unregistered ID.
var ErrUnknownVariant = errors.New("unknown variant")

// Game is what frontends drive. It contains pure logic with no external
// dependencies; the platform handles input mapping, timing and output.
type Game interface {
	// ID returns the variant identifier (e.g., "classic", "wide").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Size returns the playfield size in pixels.
	Size() (w, h float64)

	// TickPeriod returns the nominal time between ticks.
	TickPeriod() time.Duration

	// HandleIntent applies one input command. Unknown intents are ignored.
	HandleIntent(in core.Intent)

	// Step advances the simulation by one fixed tick.
	Step() core.StepResult

	// Render repaints what changed since the previous Render.
	Render(dst core.Surface)

	// RenderFull repaints everything.
	RenderFull(dst core.Surface)

	// InvalidateAll forces the next Render to repaint everything, e.g.
	// after the output surface was resized.
	InvalidateAll()

	// State returns the current game state (score, lives, game over, paused).
	State() core.GameState
}

// Options are frontend-provided settings applied when a game is created.
type Options struct {
	Clock     core.Clock // Defaults to the system clock
	Autopilot bool       // Paddle follows the ball

	// OnTransition, if set, is called with the state names whenever the
	// game changes state (e.g., "running" -> "reinsert").
	OnTransition func(from, to string, state core.GameState)
}

// Factory creates a game from a fully configured BreakoutConfig.
type Factory func(id, title string, cfg config.BreakoutConfig, opts Options) (Game, error)

// Variant describes a registered layout.
type Variant struct {
	ID          string
	Title       string
	Description string

	// Configure adjusts the base configuration for this variant.
	Configure func(cfg *config.BreakoutConfig)
}

type entry struct {
	variant Variant
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(v Variant, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	entries[v.ID] = entry{variant: v, factory: f}
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.variant)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant registered under id.
func Lookup(id string) (Variant, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.variant, ok
}

// Config returns base with the variant's adjustments applied.
func Config(id string, base config.BreakoutConfig) (config.BreakoutConfig, error) {
	v, ok := Lookup(id)
	if !ok {
		return base, fmt.Errorf("registry: %w %q", ErrUnknownVariant, id)
	}
	if v.Configure != nil {
		v.Configure(&base)
	}
	return base, nil
}

// Create instantiates a game for variant id on top of the base
// configuration.
func Create(id string, base config.BreakoutConfig, opts Options) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownVariant, id)
	}

	cfg := base
	if e.variant.Configure != nil {
		e.variant.Configure(&cfg)
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	return e.factory(e.variant.ID, e.variant.Title, cfg, opts)
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
