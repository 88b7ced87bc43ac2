package core

import "unicode/utf8"

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text metrics shared by all surfaces. Pixel surfaces draw with a 7x13
// bitmap face; cell surfaces snap to cells but lay out boxes with the same
// numbers so overlays have the same footprint everywhere.
const (
	GlyphW      = 7  // Advance width of one glyph in pixels
	GlyphH      = 13 // Line height in pixels
	GlyphAscent = 11 // Baseline offset from the top of a line
)

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// Surface is the drawing contract consumed by the renderer. Every call is
// applied immediately; implementations need not batch.
type Surface interface {
	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)
	// FillCircle paints a solid disc centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)
	// FillText draws a single line of text with its baseline at y.
	FillText(text string, x, y float64, align Align, c Color)
}

// TextWidth returns the advance width of text in pixels.
func TextWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text) * GlyphW)
}

// TextBounds returns the rectangle covered by text drawn at (x, y) with the
// given alignment.
func TextBounds(text string, x, y float64, align Align) Rect {
	w := TextWidth(text)
	return NewRect(alignX(x, w, align), y-GlyphAscent, w, GlyphH)
}

// alignX returns the left edge of a run of width w anchored at x.
func alignX(x, w float64, align Align) float64 {
	switch align {
	case AlignCenter:
		return x - w/2
	case AlignRight:
		return x - w
	default:
		return x
	}
}
