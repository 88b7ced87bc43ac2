package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Messages shown by the overlay.
const (
	PausedText   = "<Paused>"
	FinishedText = "Press <N> to restart"
)

const (
	overlayPad     = 6
	overlayColor   = core.ColorDimGrey
	scoreboardW    = 150
	scoreboardLeft = 5
)

// Scoreboard shows score and lives in the bottom-left gutter.
type Scoreboard struct {
	rect    core.Rect
	screenH float64
	score   int
	lives   int
}

// NewScoreboard creates a scoreboard for layout l.
func NewScoreboard(l config.Layout) *Scoreboard {
	return &Scoreboard{
		rect:    core.NewRect(0, l.ScreenH-config.MinGutter, scoreboardW, config.MinGutter),
		screenH: l.ScreenH,
	}
}

// Set updates the displayed values and reports whether they changed.
func (s *Scoreboard) Set(score, lives int) bool {
	if s.score == score && s.lives == lives {
		return false
	}
	s.score, s.lives = score, lives
	return true
}

// Bounds implements Drawable.
func (s *Scoreboard) Bounds() core.Rect { return s.rect }

// Draw implements Drawable.
func (s *Scoreboard) Draw(dst core.Surface) {
	dst.FillText(fmt.Sprintf("Score: %d", s.score), scoreboardLeft, s.screenH-21, core.AlignLeft, TextColor)
	dst.FillText(fmt.Sprintf("Lives: %d", s.lives), scoreboardLeft, s.screenH-7, core.AlignLeft, TextColor)
}

// banner is a boxed line of text drawn on top of everything else.
type banner struct {
	text  string
	x, y  float64
	align core.Align
}

func (b banner) rect() core.Rect {
	r := core.TextBounds(b.text, b.x, b.y, b.align)
	return core.NewRect(r.X-overlayPad, r.Y-overlayPad/2, r.W+2*overlayPad, r.H+overlayPad)
}

func (b banner) draw(dst core.Surface) {
	dst.FillRect(b.rect(), overlayColor)
	dst.FillText(b.text, b.x, b.y, b.align, TextColor)
}

// overlay returns the pause/finished banner, if one should be visible.
func (g *Game) overlay() (banner, bool) {
	var text string
	switch {
	case g.ctx.Paused:
		text = PausedText
	case g.ctx.State == StateFinished:
		text = FinishedText
	default:
		return banner{}, false
	}
	return banner{text: text, x: g.layout.ScreenW / 2, y: 2 * g.layout.ScreenH / 3, align: core.AlignCenter}, true
}

// debugBanner returns the diagnostics line drawn over the top wall.
func (g *Game) debugBanner() (banner, bool) {
	if !g.debug {
		return banner{}, false
	}
	text := fmt.Sprintf("tick %d  bricks %d  %s  %s", g.tick, g.field.Remaining(), g.ctx.State, g.ball.Vel.Heading())
	return banner{text: text, x: g.layout.Wall + overlayPad, y: g.layout.Wall - 5, align: core.AlignLeft}, true
}

// syncBanners invalidates the area of banners that disappeared or changed
// size since the last incremental render.
func (g *Game) syncBanners() {
	var overlayRect, debugRect core.Rect
	if b, ok := g.overlay(); ok {
		overlayRect = b.rect()
	}
	if b, ok := g.debugBanner(); ok {
		debugRect = b.rect()
	}
	if g.shownOverlay != overlayRect && !g.shownOverlay.Empty() {
		g.inv.Invalidate(g.shownOverlay)
	}
	if g.shownDebug != debugRect && !g.shownDebug.Empty() {
		g.inv.Invalidate(g.shownDebug)
	}
	g.shownOverlay, g.shownDebug = overlayRect, debugRect
}

// Render repaints only what changed since the previous call.
//
// The background is painted over every stale region, then walls, bricks,
// paddle and scoreboard are redrawn where they touch a stale region. The
// region list is cleared before the ball is drawn, and the banners go on
// top of everything.
func (g *Game) Render(dst core.Surface) {
	g.syncBanners()

	regions := g.inv.Regions()
	for _, r := range regions {
		dst.FillRect(r, BackgroundColor)
	}
	if len(regions) > 0 {
		for _, wall := range g.boundary.Walls() {
			if wall.Bounds().OverlapsAny(regions) {
				wall.Draw(dst)
			}
		}
		g.field.Each(func(b Brick) {
			if b.Rect.OverlapsAny(regions) {
				b.Draw(dst)
			}
		})
		for _, d := range []Drawable{g.paddle, g.scoreboard} {
			if d.Bounds().OverlapsAny(regions) {
				d.Draw(dst)
			}
		}
	}
	g.inv.Clear()

	g.drawTop(dst)
}

// RenderFull repaints the whole screen regardless of stale regions. It
// leaves the tracker untouched.
func (g *Game) RenderFull(dst core.Surface) {
	dst.FillRect(core.NewRect(0, 0, g.layout.ScreenW, g.layout.ScreenH), BackgroundColor)
	g.boundary.Draw(dst)
	g.field.Draw(dst)
	g.paddle.Draw(dst)
	g.scoreboard.Draw(dst)
	g.drawTop(dst)
}

// drawTop draws the ball and any banners.
func (g *Game) drawTop(dst core.Surface) {
	g.ball.Draw(dst)
	if b, ok := g.overlay(); ok {
		b.draw(dst)
	}
	if b, ok := g.debugBanner(); ok {
		b.draw(dst)
	}
}
