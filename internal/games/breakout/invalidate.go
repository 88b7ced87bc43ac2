package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// maxDirtyRects is the threshold after which the tracker switches to a full
// redraw.
const maxDirtyRects = 16

// Invalidator collects the screen regions that changed during a tick.
// The renderer consumes them once and clears the list.
type Invalidator struct {
	screen core.Rect
	rects  []core.Rect
	full   bool
}

// NewInvalidator creates a tracker for a screen of the given bounds. It
// starts out requesting a full redraw.
func NewInvalidator(screen core.Rect) *Invalidator {
	return &Invalidator{
		screen: screen,
		rects:  make([]core.Rect, 0, maxDirtyRects),
		full:   true,
	}
}

// Invalidate marks a region as stale. Parts outside the screen are dropped.
// If too many regions accumulate the tracker falls back to a full redraw.
func (inv *Invalidator) Invalidate(r core.Rect) {
	if inv.full {
		return
	}
	r = r.Intersect(inv.screen)
	if r.Empty() {
		return
	}
	inv.rects = append(inv.rects, r)
	if len(inv.rects) > maxDirtyRects {
		inv.InvalidateAll()
	}
}

// InvalidateAll marks the whole screen as stale.
func (inv *Invalidator) InvalidateAll() {
	inv.full = true
	inv.rects = inv.rects[:0]
}

// Regions returns the stale regions. A full redraw is reported as a single
// screen-sized region. The slice is only valid until the next Clear.
func (inv *Invalidator) Regions() []core.Rect {
	if inv.full {
		return []core.Rect{inv.screen}
	}
	return inv.rects
}

// Full reports whether the whole screen is stale.
func (inv *Invalidator) Full() bool {
	return inv.full
}

// Pending reports whether anything needs repainting.
func (inv *Invalidator) Pending() bool {
	return inv.full || len(inv.rects) > 0
}

// Clear forgets all regions after a render pass.
func (inv *Invalidator) Clear() {
	inv.rects = inv.rects[:0]
	inv.full = false
}
