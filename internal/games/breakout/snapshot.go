package breakout

import (
	"math"
	"time"
)

// Snapshot contains the complete simulation state for replay tests and
// diagnostics. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lives  int
	State  string
	Paused bool
	DiedAt int64 // Unix nanoseconds, 0 when no ball has been lost

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	MovingLeft  bool
	MovingRight bool

	// Brick states (flattened: row*cols + col = index)
	BricksRemaining int
	BrickAlive      []bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	alive := make([]bool, g.field.Total())
	g.field.Each(func(b Brick) {
		alive[b.Row*g.layout.Cols+b.Col] = true
	})

	var diedAt int64
	if !g.ctx.DiedAt.IsZero() {
		diedAt = g.ctx.DiedAt.UnixNano()
	}

	return Snapshot{
		Tick:   g.tick,
		Score:  g.ctx.Score,
		Lives:  g.ctx.Lives,
		State:  g.ctx.State.String(),
		Paused: g.ctx.Paused,
		DiedAt: diedAt,

		PaddleX: g.paddle.Rect.X,
		BallX:   g.ball.Rect.X,
		BallY:   g.ball.Rect.Y,
		BallVX:  g.ball.Vel.VX,
		BallVY:  g.ball.Vel.VY,

		MovingLeft:  g.movingLeft,
		MovingRight: g.movingRight,

		BricksRemaining: g.field.Remaining(),
		BrickAlive:      alive,
	}
}

// ApplySnapshot restores game state from a snapshot taken from a game with
// the same configuration. The next Render repaints everything.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.ctx.Score = snap.Score
	g.ctx.Lives = snap.Lives
	g.ctx.Paused = snap.Paused
	g.ctx.DiedAt = time.Time{}
	if snap.DiedAt != 0 {
		g.ctx.DiedAt = time.Unix(0, snap.DiedAt)
	}
	switch snap.State {
	case StateReinsert.String():
		g.ctx.State = StateReinsert
	case StateFinished.String():
		g.ctx.State = StateFinished
	default:
		g.ctx.State = StateRunning
	}

	g.paddle.Rect.X = snap.PaddleX
	g.ball.Rect.X, g.ball.Rect.Y = snap.BallX, snap.BallY
	g.ball.Vel = Velocity{VX: snap.BallVX, VY: snap.BallVY}
	g.movingLeft, g.movingRight = snap.MovingLeft, snap.MovingRight

	// Restore brick states
	if len(snap.BrickAlive) == g.field.Total() {
		g.field.Reset()
		for row := range g.field.rows {
			kept := g.field.rows[row][:0]
			for _, b := range g.field.rows[row] {
				if snap.BrickAlive[row*g.layout.Cols+b.Col] {
					kept = append(kept, b)
				}
			}
			g.field.rows[row] = kept
		}
		g.field.count = snap.BricksRemaining
	}

	g.scoreboard.Set(g.ctx.Score, g.ctx.Lives)
	g.inv.InvalidateAll()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + boolBits(snap.Paused)
	h = h*31 + uint64(snap.DiedAt) //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + boolBits(snap.MovingLeft)
	h = h*31 + boolBits(snap.MovingRight)

	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	for _, alive := range snap.BrickAlive {
		h = h*31 + boolBits(alive)
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
