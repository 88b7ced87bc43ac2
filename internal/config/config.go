// Package config provides YAML/TOML game configuration loading, validation
// and difficulty presets for Breakout.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration cannot produce a
// playable game.
var ErrInvalid = errors.New("invalid config")

// MinGutter is the smallest gutter (twice the wall thickness) that fits the
// two-line scoreboard below the paddle.
const MinGutter = 36

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Screen   ScreenConfig   `yaml:"screen" toml:"screen"`
	Walls    WallsConfig    `yaml:"walls" toml:"walls"`
	Bricks   BricksConfig   `yaml:"bricks" toml:"bricks"`
	Paddle   PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
}

// ScreenConfig defines the playfield size in pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// WallsConfig defines wall geometry.
type WallsConfig struct {
	Thickness float64 `yaml:"thickness" toml:"thickness"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Columns int     `yaml:"columns" toml:"columns"`
	Rows    int     `yaml:"rows" toml:"rows"`
	Height  float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines paddle movement.
type PaddleConfig struct {
	Speed float64 `yaml:"speed" toml:"speed"` // Pixels per tick
}

// BallConfig defines ball movement.
type BallConfig struct {
	Speed float64 `yaml:"speed" toml:"speed"` // Pixels per tick on each axis
}

// GameplayConfig defines lives and timing.
type GameplayConfig struct {
	Lives           int `yaml:"lives" toml:"lives"`
	ReinsertDelayMS int `yaml:"reinsert_delay_ms" toml:"reinsert_delay_ms"`
	UpdateRate      int `yaml:"update_rate" toml:"update_rate"` // Ticks per second
}

// ReinsertDelay returns the pause between losing a ball and serving the next.
func (g GameplayConfig) ReinsertDelay() time.Duration {
	return time.Duration(g.ReinsertDelayMS) * time.Millisecond
}

// TickPeriod returns the nominal time between simulation ticks.
func (g GameplayConfig) TickPeriod() time.Duration {
	if g.UpdateRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(g.UpdateRate)
}

// Validate checks that the configuration describes a playable field.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %gx%g", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Walls.Thickness <= 0:
		return fmt.Errorf("%w: wall thickness must be positive", ErrInvalid)
	case c.Bricks.Columns < 1 || c.Bricks.Rows < 1:
		return fmt.Errorf("%w: need at least one brick, got %dx%d", ErrInvalid, c.Bricks.Columns, c.Bricks.Rows)
	case c.Bricks.Height <= 0:
		return fmt.Errorf("%w: brick height must be positive", ErrInvalid)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive", ErrInvalid)
	case c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball speed must be positive", ErrInvalid)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalid, c.Gameplay.Lives)
	case c.Gameplay.UpdateRate < 1:
		return fmt.Errorf("%w: update rate must be at least 1, got %d", ErrInvalid, c.Gameplay.UpdateRate)
	case c.Gameplay.ReinsertDelayMS < 0:
		return fmt.Errorf("%w: reinsert delay must not be negative", ErrInvalid)
	}

	l := c.Layout()
	inner := c.Screen.Width - 2*c.Walls.Thickness
	switch {
	case inner <= 0:
		return fmt.Errorf("%w: walls leave no playfield", ErrInvalid)
	case l.Gutter < MinGutter:
		return fmt.Errorf("%w: walls of %g leave no room for the scoreboard", ErrInvalid, l.Wall)
	case l.PaddleW > inner:
		return fmt.Errorf("%w: paddle (%g) wider than playfield (%g)", ErrInvalid, l.PaddleW, inner)
	case l.PaddleY <= l.BrickBottom():
		return fmt.Errorf("%w: screen too short for %d brick rows", ErrInvalid, c.Bricks.Rows)
	}
	return nil
}

// Layout holds the geometry derived from a configuration.
type Layout struct {
	ScreenW, ScreenH float64
	Wall             float64 // Wall thickness
	Gutter           float64 // Space below the side walls

	Cols, Rows     int
	BrickW, BrickH float64
	BrickTop       float64 // y of the first brick row

	PaddleW, PaddleH float64
	PaddleY          float64

	BallSize       float64
	SpawnX, SpawnY float64

	SideWallH     float64
	PaddleSpeed   float64
	BallSpeed     float64
	StartingLives int
	ReinsertDelay time.Duration
	TickPeriod    time.Duration
}

// Layout derives the playfield geometry. Brick width divides the space
// between the walls evenly; everything else is proportional to the bricks.
func (c BreakoutConfig) Layout() Layout {
	l := Layout{
		ScreenW:       c.Screen.Width,
		ScreenH:       c.Screen.Height,
		Wall:          c.Walls.Thickness,
		Gutter:        2 * c.Walls.Thickness,
		Cols:          c.Bricks.Columns,
		Rows:          c.Bricks.Rows,
		BrickH:        c.Bricks.Height,
		PaddleSpeed:   c.Paddle.Speed,
		BallSpeed:     c.Ball.Speed,
		StartingLives: c.Gameplay.Lives,
		ReinsertDelay: c.Gameplay.ReinsertDelay(),
		TickPeriod:    c.Gameplay.TickPeriod(),
	}
	if l.Cols > 0 {
		l.BrickW = (l.ScreenW - 2*l.Wall) / float64(l.Cols)
	}
	l.BrickTop = l.Wall + 3*l.BrickH
	l.PaddleW = 2 * l.BrickW
	l.PaddleH = 2 * l.BrickH / 3
	l.PaddleY = l.ScreenH - l.Gutter - l.PaddleH
	l.SideWallH = l.ScreenH - l.Gutter
	l.BallSize = l.BrickW / 4

	// Serve halfway between the last brick row and the gutter
	bottomRowY := l.Wall + float64(l.Rows+3)*l.BrickH
	l.SpawnX = (l.ScreenW - l.BallSize) / 2
	l.SpawnY = l.ScreenH - (bottomRowY+l.BrickH+l.BallSize+l.Gutter)/2
	return l
}

// BrickBottom returns the y of the bottom edge of the last brick row.
func (l Layout) BrickBottom() float64 {
	return l.BrickTop + float64(l.Rows)*l.BrickH
}
