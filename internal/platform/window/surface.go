// Package window runs a game in a desktop window using Ebitengine.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Surface draws onto an ebiten image. Shapes are not anti-aliased so an
// incremental repaint covers exactly what was drawn before.
type Surface struct {
	img *ebiten.Image
}

// NewSurface creates a surface over img.
func NewSurface(img *ebiten.Image) *Surface {
	return &Surface{img: img}
}

// FillRect implements core.Surface.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
}

// FillCircle implements core.Surface.
func (s *Surface) FillCircle(cx, cy, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(radius), c.RGBA(), false)
}

// FillText implements core.Surface. y is the baseline.
func (s *Surface) FillText(str string, x, y float64, align core.Align, c core.Color) {
	r := core.TextBounds(str, x, y, align)
	text.Draw(s.img, str, basicfont.Face7x13, int(r.X+0.5), int(y+0.5), c.RGBA())
}
