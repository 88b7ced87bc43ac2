package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is the phase of a game.
type State int

const (
	StateRunning  State = iota // Ball in play
	StateReinsert              // Ball lost, waiting to serve the next one
	StateFinished              // No lives left
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateReinsert:
		return "reinsert"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Context is the game-wide mutable state owned by a Game.
type Context struct {
	Score  int
	Lives  int
	State  State
	Paused bool
	DiedAt time.Time // When the last ball was lost; meaningful in StateReinsert
}

// TransitionFunc observes state changes.
type TransitionFunc func(from, to State, ctx Context)

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source used for the reinsert delay.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithAutopilot makes the paddle follow the ball instead of the player.
func WithAutopilot(on bool) Option {
	return func(g *Game) { g.autopilot = on }
}

// WithVariant sets the identifier and display name.
func WithVariant(id, title string) Option {
	return func(g *Game) { g.id, g.title = id, title }
}

// WithTransitionHook registers fn to be called on every state change.
func WithTransitionHook(fn TransitionFunc) Option {
	return func(g *Game) { g.onTransition = fn }
}

// Game implements the Breakout game logic.
type Game struct {
	id    string
	title string

	cfg    config.BreakoutConfig
	layout config.Layout
	clock  core.Clock

	// Game objects
	boundary   Boundary
	field      *BrickField
	paddle     *Paddle
	ball       *Ball
	scoreboard *Scoreboard

	ctx  Context
	tick uint64

	// Input
	movingLeft  bool
	movingRight bool
	autopilot   bool
	debug       bool

	// Rendering
	inv          *Invalidator
	shownOverlay core.Rect
	shownDebug   core.Rect

	onTransition TransitionFunc
}

// New creates a game ready to play. It fails if cfg is invalid.
func New(cfg config.BreakoutConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	l := cfg.Layout()
	g := &Game{
		id:         "classic",
		title:      "Breakout",
		cfg:        cfg,
		layout:     l,
		clock:      core.SystemClock{},
		boundary:   NewBoundary(l),
		field:      NewBrickField(l),
		scoreboard: NewScoreboard(l),
		inv:        NewInvalidator(core.NewRect(0, 0, l.ScreenW, l.ScreenH)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.NewGame()
	return g, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Size returns the playfield size in pixels.
func (g *Game) Size() (float64, float64) {
	return g.layout.ScreenW, g.layout.ScreenH
}

// TickPeriod returns the nominal time between ticks.
func (g *Game) TickPeriod() time.Duration {
	return g.layout.TickPeriod
}

// Layout returns the derived geometry.
func (g *Game) Layout() config.Layout {
	return g.layout
}

// NewGame resets score, lives, bricks, paddle and ball and starts running.
// It may be called in any state.
func (g *Game) NewGame() {
	prev := g.ctx.State
	g.ctx = Context{
		Lives: g.layout.StartingLives,
		State: StateRunning,
	}
	g.tick = 0
	g.field.Reset()
	g.paddle = NewPaddle(g.layout)
	g.ball = NewBall(g.layout)
	g.scoreboard.Set(g.ctx.Score, g.ctx.Lives)
	g.inv.InvalidateAll()
	if prev != StateRunning {
		g.transition(prev, StateRunning)
	}
}

// HandleIntent applies one input command. Quit and unknown intents are
// ignored; the frontend owns quitting.
func (g *Game) HandleIntent(in core.Intent) {
	switch in {
	case core.IntentMoveLeftStart:
		g.movingLeft = true
	case core.IntentMoveLeftEnd:
		g.movingLeft = false
	case core.IntentMoveRightStart:
		g.movingRight = true
	case core.IntentMoveRightEnd:
		g.movingRight = false
	case core.IntentTogglePause:
		if g.ctx.State != StateFinished {
			g.ctx.Paused = !g.ctx.Paused
		}
	case core.IntentNewGame:
		g.NewGame()
	case core.IntentToggleDebug:
		g.debug = !g.debug
	}
}

// paddleDirection returns -1, 0 or 1. Left wins when both keys are held.
func (g *Game) paddleDirection() int {
	if g.autopilot {
		return g.autopilotDirection()
	}
	switch {
	case g.movingLeft:
		return -1
	case g.movingRight:
		return 1
	default:
		return 0
	}
}

// autopilotDirection steers the paddle under the ball.
func (g *Game) autopilotDirection() int {
	bx, _ := g.ball.Rect.Center()
	px, _ := g.paddle.Rect.Center()
	dead := g.layout.PaddleSpeed / 2
	switch {
	case bx < px-dead:
		return -1
	case bx > px+dead:
		return 1
	default:
		return 0
	}
}

// Step advances the simulation by one tick.
//
// Nothing happens once the game is finished or while it is paused. The
// paddle moves in every other state; the ball only moves while running.
func (g *Game) Step() core.StepResult {
	if g.ctx.State == StateFinished || g.ctx.Paused {
		return g.result()
	}
	g.tick++

	if old, moved := g.paddle.Move(g.paddleDirection()); moved {
		g.inv.Invalidate(old)
		g.inv.Invalidate(g.paddle.Rect)
	}

	switch g.ctx.State {
	case StateRunning:
		g.stepBall()
	case StateReinsert:
		if g.clock.Now().Sub(g.ctx.DiedAt) >= g.layout.ReinsertDelay {
			g.inv.Invalidate(g.ball.Rect)
			g.ball = NewBall(g.layout)
			g.setState(StateRunning)
		}
	}
	return g.result()
}

// stepBall resolves collisions, moves the ball and checks for a lost ball.
func (g *Game) stepBall() {
	g.boundary.Collide(g.ball)
	g.paddle.Collide(g.ball)
	if brick, hit := g.field.Resolve(g.ball); hit {
		g.ctx.Score += brick.Value
		g.inv.Invalidate(brick.Rect)
		g.updateScoreboard()
	}

	g.inv.Invalidate(g.ball.Advance())

	if !g.ball.OutOfBounds(g.layout.ScreenH) {
		return
	}
	g.ctx.Lives--
	g.ctx.DiedAt = g.clock.Now()
	g.updateScoreboard()
	if g.ctx.Lives <= 0 {
		g.ctx.Lives = 0
		g.setState(StateFinished)
	} else {
		g.setState(StateReinsert)
	}
}

func (g *Game) updateScoreboard() {
	if g.scoreboard.Set(g.ctx.Score, g.ctx.Lives) {
		g.inv.Invalidate(g.scoreboard.Bounds())
	}
}

func (g *Game) setState(s State) {
	prev := g.ctx.State
	g.ctx.State = s
	g.transition(prev, s)
}

func (g *Game) transition(from, to State) {
	if g.onTransition != nil && from != to {
		g.onTransition(from, to, g.ctx)
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:    g.State(),
		Continue: g.ctx.State != StateFinished,
	}
}

// InvalidateAll forces the next Render to repaint the whole screen.
func (g *Game) InvalidateAll() {
	g.inv.InvalidateAll()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctx.Score,
		Lives:    g.ctx.Lives,
		GameOver: g.ctx.State == StateFinished,
		Paused:   g.ctx.Paused,
		Cleared:  g.field.Total() - g.field.Remaining(),
	}
}

// Context returns a copy of the game context.
func (g *Game) Context() Context {
	return g.ctx
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return *g.ball
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return *g.paddle
}

// Field returns the brick field. Callers must not modify it.
func (g *Game) Field() *BrickField {
	return g.field
}

// Debug reports whether the diagnostics line is shown.
func (g *Game) Debug() bool {
	return g.debug
}

// Invalidator exposes the dirty region tracker.
func (g *Game) Invalidator() *Invalidator {
	return g.inv
}
