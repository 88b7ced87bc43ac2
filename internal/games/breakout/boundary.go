package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Boundary is the three fixed walls around the playfield. The bottom is
// open.
type Boundary struct {
	Left  Wall
	Right Wall
	Top   Wall
}

// NewBoundary builds the walls for layout l. The side walls stop at the
// gutter so the ball can fall out below the paddle.
func NewBoundary(l config.Layout) Boundary {
	return Boundary{
		Left:  Wall{Rect: core.NewRect(0, 0, l.Wall, l.SideWallH)},
		Right: Wall{Rect: core.NewRect(l.ScreenW-l.Wall, 0, l.Wall, l.SideWallH)},
		Top:   Wall{Rect: core.NewRect(0, 0, l.ScreenW, l.Wall)},
	}
}

// Walls returns the walls in draw order.
func (w Boundary) Walls() []Wall {
	return []Wall{w.Left, w.Right, w.Top}
}

// Collide implements Collider. Only the inner edges matter: touching the
// left wall sends the ball east, else touching the right wall sends it
// west; touching the top wall sends it south.
func (w Boundary) Collide(b *Ball) bool {
	var d Direction
	switch {
	case b.Rect.X <= w.Left.Rect.Right():
		d |= East
	case b.Rect.Right() >= w.Right.Rect.X:
		d |= West
	}
	if b.Rect.Y <= w.Top.Rect.Bottom() {
		d |= South
	}
	if d == 0 {
		return false
	}
	b.Deflect(d)
	return true
}

// Bounds implements Drawable.
func (w Boundary) Bounds() core.Rect {
	return w.Left.Rect.Union(w.Right.Rect).Union(w.Top.Rect)
}

// Draw implements Drawable.
func (w Boundary) Draw(dst core.Surface) {
	for _, wall := range w.Walls() {
		wall.Draw(dst)
	}
}
