package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickField is the grid of bricks, stored row by row from the top. Rows
// keep their slot when they empty out; bricks are only ever removed.
type BrickField struct {
	layout config.Layout
	rows   [][]Brick
	count  int
}

// NewBrickField creates a full grid for layout l.
func NewBrickField(l config.Layout) *BrickField {
	f := &BrickField{layout: l}
	f.Reset()
	return f
}

// Reset refills every row.
func (f *BrickField) Reset() {
	f.rows = make([][]Brick, f.layout.Rows)
	for row := range f.rows {
		bricks := make([]Brick, f.layout.Cols)
		for col := range bricks {
			bricks[col] = NewBrick(f.layout, col, row)
		}
		f.rows[row] = bricks
	}
	f.count = f.layout.Rows * f.layout.Cols
}

// Remaining returns the number of bricks still standing.
func (f *BrickField) Remaining() int {
	return f.count
}

// Total returns the number of bricks in a full grid.
func (f *BrickField) Total() int {
	return f.layout.Rows * f.layout.Cols
}

// Row returns the bricks left in row i, west to east. The slice must not be
// modified.
func (f *BrickField) Row(i int) []Brick {
	if i < 0 || i >= len(f.rows) {
		return nil
	}
	return f.rows[i]
}

// Rows returns the number of row slots.
func (f *BrickField) Rows() int {
	return len(f.rows)
}

// rowSpan returns the rectangle covered by row slot i.
func (f *BrickField) rowSpan(i int) core.Rect {
	l := f.layout
	return core.NewRect(l.Wall, l.BrickTop+float64(i)*l.BrickH, l.ScreenW-2*l.Wall, l.BrickH)
}

// Resolve knocks out at most one brick hit by the ball.
//
// Only rows level with the ball are checked. They are visited in the
// direction the ball travels vertically (top down when it moves south),
// and each row in the direction it travels horizontally. The first brick
// overlapping the ball deflects it and is removed; the search stops there.
func (f *BrickField) Resolve(b *Ball) (Brick, bool) {
	candidates := make([]int, 0, 2)
	for i := range f.rows {
		if len(f.rows[i]) > 0 && f.rowSpan(i).SpansY(b.Rect) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return Brick{}, false
	}

	southward := b.Vel.VY > 0
	eastward := b.Vel.VX > 0

	for n := range candidates {
		ri := candidates[n]
		if !southward {
			ri = candidates[len(candidates)-1-n]
		}
		row := f.rows[ri]
		for m := range row {
			ci := m
			if !eastward {
				ci = len(row) - 1 - m
			}
			brick := row[ci]
			if b.Collide(brick.Rect) {
				f.rows[ri] = append(row[:ci], row[ci+1:]...)
				f.count--
				return brick, true
			}
		}
	}
	return Brick{}, false
}

// Collide implements Collider.
func (f *BrickField) Collide(b *Ball) bool {
	_, hit := f.Resolve(b)
	return hit
}

// Each calls fn for every standing brick, top row first.
func (f *BrickField) Each(fn func(Brick)) {
	for _, row := range f.rows {
		for _, brick := range row {
			fn(brick)
		}
	}
}

// Bounds implements Drawable.
func (f *BrickField) Bounds() core.Rect {
	l := f.layout
	return core.NewRect(l.Wall, l.BrickTop, l.ScreenW-2*l.Wall, float64(l.Rows)*l.BrickH)
}

// Draw implements Drawable.
func (f *BrickField) Draw(dst core.Surface) {
	f.Each(func(b Brick) { b.Draw(dst) })
}
