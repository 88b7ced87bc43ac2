package breakout

import (
	"math"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction is a set of compass flags. A contact can report one flag per
// axis at once (a corner hit).
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West
)

// Has reports whether every flag in f is set in d.
func (d Direction) Has(f Direction) bool {
	return f != 0 && d&f == f
}

// String returns the flags as e.g. "N|E", or "-" for the empty set.
func (d Direction) String() string {
	if d == 0 {
		return "-"
	}
	var parts []string
	for _, f := range []struct {
		flag Direction
		name string
	}{{North, "N"}, {South, "S"}, {East, "E"}, {West, "W"}} {
		if d.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Velocity is a per-tick displacement in playfield pixels.
type Velocity struct {
	VX, VY float64
}

// NewVelocity returns a velocity of the given per-axis speed heading d.
func NewVelocity(speed float64, d Direction) Velocity {
	return Velocity{VX: speed, VY: speed}.Deflect(d)
}

// Deflect points the velocity components named by d in that direction.
// Magnitudes never change and axes not named by d are left alone. If d
// names both ends of an axis, North beats South and West beats East.
// ContactDirection never produces such a set.
func (v Velocity) Deflect(d Direction) Velocity {
	switch {
	case d.Has(North):
		v.VY = -math.Abs(v.VY)
	case d.Has(South):
		v.VY = math.Abs(v.VY)
	}
	switch {
	case d.Has(West):
		v.VX = -math.Abs(v.VX)
	case d.Has(East):
		v.VX = math.Abs(v.VX)
	}
	return v
}

// Heading returns the flags describing where the velocity points.
func (v Velocity) Heading() Direction {
	var d Direction
	switch {
	case v.VY < 0:
		d |= North
	case v.VY > 0:
		d |= South
	}
	switch {
	case v.VX < 0:
		d |= West
	case v.VX > 0:
		d |= East
	}
	return d
}

// ContactDirection returns the way ball must be pushed to leave o: West if
// it sticks out past o's left edge, else East past the right edge; North
// past the top edge, else South past the bottom edge. A ball fully inside
// o on an axis contributes nothing for that axis.
func ContactDirection(ball, o core.Rect) Direction {
	var d Direction
	switch {
	case ball.X < o.X:
		d |= West
	case ball.Right() > o.Right():
		d |= East
	}
	switch {
	case ball.Y < o.Y:
		d |= North
	case ball.Bottom() > o.Bottom():
		d |= South
	}
	return d
}
