package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Drawable is anything the renderer can paint.
type Drawable interface {
	// Bounds returns the area the drawable paints into.
	Bounds() core.Rect
	Draw(dst core.Surface)
}

// Collider can deflect the ball. Collide reports whether it did.
type Collider interface {
	Collide(b *Ball) bool
}

// Colors used by the renderer.
const (
	BackgroundColor = core.ColorBlack
	WallColor       = core.ColorGrey
	PaddleColor     = core.ColorWhite
	BallColor       = core.ColorWhite
	TextColor       = core.ColorWhite
)

// RowColors colors brick rows from the top down, repeating for taller grids.
var RowColors = []core.Color{
	core.ColorDarkRed,
	core.ColorRed,
	core.ColorDarkOrange,
	core.ColorOrange,
	core.ColorDarkGreen,
	core.ColorGreen,
	core.ColorGold,
	core.ColorYellow,
}

// Wall is a static rectangle the ball bounces off.
type Wall struct {
	Rect core.Rect
}

// Bounds implements Drawable.
func (w Wall) Bounds() core.Rect { return w.Rect }

// Draw implements Drawable.
func (w Wall) Draw(dst core.Surface) {
	dst.FillRect(w.Rect, WallColor)
}

// Brick is one cell of the brick field.
type Brick struct {
	Rect  core.Rect
	Row   int
	Col   int
	Color core.Color
	Value int
}

// BrickValue returns the points for a brick in the given row. Rows score in
// pairs: rows 0-1 are worth 1, rows 2-3 are worth 2 and so on.
func BrickValue(row int) int {
	return row/2 + 1
}

// NewBrick places a brick at (col, row) of the grid described by l.
func NewBrick(l config.Layout, col, row int) Brick {
	return Brick{
		Rect:  core.NewRect(l.Wall+float64(col)*l.BrickW, l.BrickTop+float64(row)*l.BrickH, l.BrickW, l.BrickH),
		Row:   row,
		Col:   col,
		Color: RowColors[row%len(RowColors)],
		Value: BrickValue(row),
	}
}

// Bounds implements Drawable.
func (b Brick) Bounds() core.Rect { return b.Rect }

// Draw implements Drawable.
func (b Brick) Draw(dst core.Surface) {
	dst.FillRect(b.Rect, b.Color)
}

// Paddle is the player's bat. It only moves horizontally and always stays
// between the side walls.
type Paddle struct {
	Rect  core.Rect
	speed float64
	minX  float64
	maxX  float64
}

// NewPaddle creates a paddle centered horizontally above the gutter.
func NewPaddle(l config.Layout) *Paddle {
	return &Paddle{
		Rect:  core.NewRect((l.ScreenW-l.PaddleW)/2, l.PaddleY, l.PaddleW, l.PaddleH),
		speed: l.PaddleSpeed,
		minX:  l.Wall,
		maxX:  l.ScreenW - l.Wall - l.PaddleW,
	}
}

// Move shifts the paddle one step in dir (-1 left, 1 right, 0 none) and
// clamps it to the playfield. It returns the previous rectangle and whether
// the paddle actually moved.
func (p *Paddle) Move(dir int) (core.Rect, bool) {
	old := p.Rect
	p.Rect.X = core.ClampF(p.Rect.X+float64(dir)*p.speed, p.minX, p.maxX)
	return old, p.Rect != old
}

// Limits returns the smallest and largest x the paddle can occupy.
func (p *Paddle) Limits() (float64, float64) {
	return p.minX, p.maxX
}

// Bounds implements Drawable.
func (p *Paddle) Bounds() core.Rect { return p.Rect }

// Draw implements Drawable.
func (p *Paddle) Draw(dst core.Surface) {
	dst.FillRect(p.Rect, PaddleColor)
}

// Collide implements Collider with a plain bounce; where the ball lands on
// the paddle does not change its angle.
func (p *Paddle) Collide(b *Ball) bool {
	return b.Collide(p.Rect)
}

// Ball is the moving square-bounded disc. |VX| and |VY| always equal its
// speed, so every bounce keeps it on a diagonal.
type Ball struct {
	Rect core.Rect
	Vel  Velocity
}

// NewBall creates a ball at the serve position heading north-east.
func NewBall(l config.Layout) *Ball {
	return &Ball{
		Rect: core.NewRect(l.SpawnX, l.SpawnY, l.BallSize, l.BallSize),
		Vel:  NewVelocity(l.BallSpeed, North|East),
	}
}

// Advance moves the ball by its velocity and returns the previous rect.
func (b *Ball) Advance() core.Rect {
	old := b.Rect
	b.Rect.X += b.Vel.VX
	b.Rect.Y += b.Vel.VY
	return old
}

// Deflect changes the ball's heading.
func (b *Ball) Deflect(d Direction) {
	b.Vel = b.Vel.Deflect(d)
}

// Collide deflects the ball away from o if the two overlap.
func (b *Ball) Collide(o core.Rect) bool {
	if !b.Rect.Overlaps(o) {
		return false
	}
	b.Deflect(ContactDirection(b.Rect, o))
	return true
}

// OutOfBounds reports whether the ball has dropped past the bottom edge.
func (b *Ball) OutOfBounds(screenH float64) bool {
	return b.Rect.Y >= screenH
}

// Bounds implements Drawable.
func (b *Ball) Bounds() core.Rect { return b.Rect }

// Draw implements Drawable.
func (b *Ball) Draw(dst core.Surface) {
	cx, cy := b.Rect.Center()
	dst.FillCircle(cx, cy, b.Rect.W/2, BallColor)
}
