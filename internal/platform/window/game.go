package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Options configure a window.
type Options struct {
	Scale    int         // Window size as a multiple of the playfield; defaults to 2
	Bindings []Binding   // Defaults to DefaultBindings
	Logger   *log.Logger // Defaults to discarding
	Keys     KeySource   // Defaults to the keyboard
}

// Game adapts a breakout game to ebiten.Game. Each ebiten update is one
// simulation tick, so the TPS is derived from the game's tick period.
//
// The playfield is rendered incrementally into an offscreen canvas that
// persists between frames, then copied to the screen.
type Game struct {
	game     registry.Game
	canvas   *ebiten.Image
	surface  *Surface
	keys     KeySource
	bindings []Binding
	logger   *log.Logger
	w, h     int
	finished bool
}

// NewGame wraps game for ebiten.
func NewGame(game registry.Game, opts Options) *Game {
	if opts.Bindings == nil {
		opts.Bindings = DefaultBindings()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Keys == nil {
		opts.Keys = inputKeys{}
	}

	fw, fh := game.Size()
	w, h := int(fw), int(fh)
	canvas := ebiten.NewImage(w, h)
	return &Game{
		game:     game,
		canvas:   canvas,
		surface:  NewSurface(canvas),
		keys:     opts.Keys,
		bindings: opts.Bindings,
		logger:   opts.Logger,
		w:        w,
		h:        h,
	}
}

// Update applies this frame's input and advances the game one tick.
// Returning ebiten.Termination closes the window.
func (g *Game) Update() error {
	for _, in := range Intents(g.keys, g.bindings) {
		if in == core.IntentQuit {
			return ebiten.Termination
		}
		g.game.HandleIntent(in)
	}

	res := g.game.Step()
	if finished := !res.Continue; finished != g.finished {
		g.finished = finished
		if finished {
			g.logger.Info("game over", "score", res.State.Score)
		}
	}
	return nil
}

// Draw renders what changed into the canvas and shows it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.game.Render(g.surface)
	screen.DrawImage(g.canvas, nil)
}

// Layout keeps the logical screen at the playfield size; ebiten scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

// TPS returns the update rate matching period.
func TPS(period time.Duration) int {
	if period <= 0 {
		return ebiten.DefaultTPS
	}
	return max(1, int(time.Second/period))
}

// Run opens a window and plays game until it is closed.
func Run(game registry.Game, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	g := NewGame(game, opts)

	ebiten.SetWindowSize(g.w*opts.Scale, g.h*opts.Scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS(game.TickPeriod()))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
