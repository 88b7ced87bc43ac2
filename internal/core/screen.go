package core

import (
	"strings"
)

// Cell is a single terminal character with foreground and background colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// blankCell is what an unused cell holds.
var blankCell = Cell{Rune: ' ', Fg: ColorWhite, Bg: ColorBlack}

// Screen is a 2D cell buffer for terminal rendering.
// It decouples game rendering from the terminal, and remembers which cells
// changed since the last flush so direct terminal backends can write only
// those.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	dirty  map[Point]bool
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.dirty = make(map[Point]bool)
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving the top-left content
// that still fits. Every cell is marked dirty.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	old := s.cells
	s.width = width
	s.height = height
	s.allocate()
	for y := range s.cells {
		for x := range s.cells[y] {
			c := blankCell
			if y < len(old) && x < len(old[y]) {
				c = old[y][x]
			}
			s.cells[y][x] = c
			s.dirty[Point{X: x, Y: y}] = true
		}
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.SetCell(x, y, blankCell)
		}
	}
}

// SetCell places a cell at the given position and marks it dirty if it
// changed. Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	if s.cells[y][x] == c {
		return
	}
	s.cells[y][x] = c
	s.dirty[Point{X: x, Y: y}] = true
}

// Set places a rune at the given position keeping the cell's colors.
func (s *Screen) Set(x, y int, r rune) {
	c := s.GetCell(x, y)
	c.Rune = r
	s.SetCell(x, y, c)
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) using the given
// colors. Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg, bg Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Fg: fg, Bg: bg})
		i++
	}
}

// DirtyCells returns all cells changed since the last ClearDirty.
func (s *Screen) DirtyCells() []Point {
	points := make([]Point, 0, len(s.dirty))
	for p := range s.dirty {
		points = append(points, p)
	}
	return points
}

// ClearDirty forgets which cells changed.
func (s *Screen) ClearDirty() {
	s.dirty = make(map[Point]bool)
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
