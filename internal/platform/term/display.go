// Package term runs a game directly on a tcell screen, without Bubble Tea.
// Only cells that changed since the previous frame are written to the
// terminal.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Display draws a game onto a tcell screen.
type Display struct {
	screen  tcell.Screen
	game    registry.Game
	cells   *core.Screen
	surface *core.CellSurface
	styles  map[[2]core.Color]tcell.Style
}

// NewDisplay creates a display sized to screen.
func NewDisplay(screen tcell.Screen, game registry.Game) *Display {
	w, h := screen.Size()
	cells := core.NewScreen(max(1, w), max(1, h))
	ww, wh := game.Size()
	return &Display{
		screen:  screen,
		game:    game,
		cells:   cells,
		surface: core.NewCellSurface(cells, ww, wh),
		styles:  make(map[[2]core.Color]tcell.Style),
	}
}

// Frame renders the game and writes the changed cells. It returns the
// number of cells written.
func (d *Display) Frame() int {
	if w, h := d.screen.Size(); w != d.cells.Width() || h != d.cells.Height() {
		d.cells.Resize(max(1, w), max(1, h))
		d.surface.Resize()
		d.game.InvalidateAll()
		d.screen.Clear()
	}

	d.game.Render(d.surface)
	d.surface.Flush()

	dirty := d.cells.DirtyCells()
	for _, p := range dirty {
		c := d.cells.GetCell(p.X, p.Y)
		d.screen.SetContent(p.X, p.Y, c.Rune, nil, d.style(c.Fg, c.Bg))
	}
	d.cells.ClearDirty()
	if len(dirty) > 0 {
		d.screen.Show()
	}
	return len(dirty)
}

func (d *Display) style(fg, bg core.Color) tcell.Style {
	key := [2]core.Color{fg, bg}
	if s, ok := d.styles[key]; ok {
		return s
	}
	s := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
	d.styles[key] = s
	return s
}

func tcellColor(c core.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
