package core

import (
	"math"
	"unicode/utf8"
)

// upperHalf draws the top subpixel in the foreground color and the bottom
// one in the background color.
const upperHalf = '▀'

type textCell struct {
	r  rune
	fg Color
}

// CellSurface is a Surface that maps a virtual pixel space onto a Screen.
// Each terminal cell holds two vertically stacked subpixels drawn with a
// half-block glyph; text is kept on a separate layer and snapped to cells.
//
// Drawing only updates the surface's own buffers. Flush copies the cells
// touched since the previous flush into the Screen.
type CellSurface struct {
	screen *Screen
	worldW float64
	worldH float64

	cols, rows int
	sx, sy     float64 // virtual pixels to subpixels

	sub   []Color     // cols * rows*2 subpixels
	text  []*textCell // cols * rows
	dirty []bool      // cols * rows
}

// NewCellSurface creates a surface that scales a worldW x worldH pixel
// space onto the current size of screen.
func NewCellSurface(screen *Screen, worldW, worldH float64) *CellSurface {
	c := &CellSurface{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
	c.Resize()
	return c
}

// Resize re-reads the screen dimensions and resets the surface to black.
// Callers must redraw everything afterwards.
func (c *CellSurface) Resize() {
	c.cols = c.screen.Width()
	c.rows = c.screen.Height()
	c.sx = float64(c.cols) / c.worldW
	c.sy = float64(c.rows*2) / c.worldH
	c.sub = make([]Color, c.cols*c.rows*2)
	c.text = make([]*textCell, c.cols*c.rows)
	c.dirty = make([]bool, c.cols*c.rows)
	for i := range c.dirty {
		c.dirty[i] = true
	}
}

// Screen returns the screen the surface flushes into.
func (c *CellSurface) Screen() *Screen {
	return c.screen
}

// subRange converts a span in virtual pixels to a half-open subpixel range.
// Non-empty spans always cover at least one subpixel.
func subRange(lo, hi, scale float64, limit int) (int, int) {
	a := round(lo * scale)
	b := round(hi * scale)
	if b <= a && hi > lo {
		b = a + 1
	}
	return Clamp(a, 0, limit), Clamp(b, 0, limit)
}

func (c *CellSurface) setSub(x, y int, col Color) {
	cell := (y/2)*c.cols + x
	c.sub[y*c.cols+x] = col
	c.text[cell] = nil
	c.dirty[cell] = true
}

// FillRect implements Surface.
func (c *CellSurface) FillRect(r Rect, col Color) {
	x0, x1 := subRange(r.X, r.Right(), c.sx, c.cols)
	y0, y1 := subRange(r.Y, r.Bottom(), c.sy, c.rows*2)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.setSub(x, y, col)
		}
	}
}

// FillCircle implements Surface. Subpixels whose centers fall inside the
// circle are painted; a circle too small to cover any center still paints
// the subpixel under its center.
func (c *CellSurface) FillCircle(cx, cy, radius float64, col Color) {
	x0, x1 := subRange(cx-radius, cx+radius, c.sx, c.cols)
	y0, y1 := subRange(cy-radius, cy+radius, c.sy, c.rows*2)
	painted := false
	for y := y0; y < y1; y++ {
		dy := (float64(y)+0.5)/c.sy - cy
		for x := x0; x < x1; x++ {
			dx := (float64(x)+0.5)/c.sx - cx
			if dx*dx+dy*dy <= radius*radius {
				c.setSub(x, y, col)
				painted = true
			}
		}
	}
	if !painted {
		x := int(math.Floor(cx * c.sx))
		y := int(math.Floor(cy * c.sy))
		if x >= 0 && x < c.cols && y >= 0 && y < c.rows*2 {
			c.setSub(x, y, col)
		}
	}
}

// FillText implements Surface. The text occupies the cell row containing
// the vertical middle of the glyph box.
func (c *CellSurface) FillText(text string, x, y float64, align Align, col Color) {
	n := utf8.RuneCountInString(text)
	anchor := round(x * c.sx)
	var start int
	switch align {
	case AlignCenter:
		start = anchor - n/2
	case AlignRight:
		start = anchor - n
	default:
		start = anchor
	}
	mid := y - GlyphAscent + GlyphH/2.0
	row := int(math.Floor(mid * c.sy / 2))
	if row < 0 || row >= c.rows {
		return
	}
	i := 0
	for _, r := range text {
		x := start + i
		i++
		if x < 0 || x >= c.cols {
			continue
		}
		cell := row*c.cols + x
		c.text[cell] = &textCell{r: r, fg: col}
		c.dirty[cell] = true
	}
}

// cellAt composes the terminal cell for the given position.
func (c *CellSurface) cellAt(x, y int) Cell {
	top := c.sub[(2*y)*c.cols+x]
	bottom := c.sub[(2*y+1)*c.cols+x]
	if t := c.text[y*c.cols+x]; t != nil {
		return Cell{Rune: t.r, Fg: t.fg, Bg: bottom}
	}
	return Cell{Rune: upperHalf, Fg: top, Bg: bottom}
}

// Flush writes every cell changed since the last flush into the screen and
// returns how many cells were written.
func (c *CellSurface) Flush() int {
	if c.screen.Width() != c.cols || c.screen.Height() != c.rows {
		c.Resize()
	}
	n := 0
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			i := y*c.cols + x
			if !c.dirty[i] {
				continue
			}
			c.screen.SetCell(x, y, c.cellAt(x, y))
			c.dirty[i] = false
			n++
		}
	}
	return n
}
