package core

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory pixel Surface. It backs headless rendering and the
// frame comparison helpers used by tests.
type Raster struct {
	img  *image.RGBA
	face font.Face
}

// NewRaster creates a black raster of the given size in pixels.
func NewRaster(width, height int) *Raster {
	r := &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
	r.FillRect(NewRect(0, 0, float64(width), float64(height)), ColorBlack)
	return r
}

// Image returns the backing image. Callers must not retain it across frames
// if they also draw into the raster.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Bounds returns the raster size as a rectangle.
func (r *Raster) Bounds() Rect {
	b := r.img.Bounds()
	return NewRect(0, 0, float64(b.Dx()), float64(b.Dy()))
}

// round snaps a coordinate to the pixel grid.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// pixelRect converts r to the pixel rectangle it covers.
func pixelRect(r Rect) image.Rectangle {
	return image.Rect(round(r.X), round(r.Y), round(r.Right()), round(r.Bottom()))
}

// FillRect implements Surface.
func (r *Raster) FillRect(rect Rect, c Color) {
	area := pixelRect(rect).Intersect(r.img.Bounds())
	if area.Empty() {
		return
	}
	draw.Draw(r.img, area, image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// FillCircle implements Surface. The disc never paints outside the pixel
// rectangle of its bounding square.
func (r *Raster) FillCircle(cx, cy, radius float64, c Color) {
	box := pixelRect(NewRect(cx-radius, cy-radius, 2*radius, 2*radius)).Intersect(r.img.Bounds())
	rgba := c.RGBA()
	r2 := radius * radius
	for py := box.Min.Y; py < box.Max.Y; py++ {
		dy := float64(py) + 0.5 - cy
		for px := box.Min.X; px < box.Max.X; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				r.img.SetRGBA(px, py, rgba)
			}
		}
	}
}

// FillText implements Surface using the 7x13 bitmap face.
func (r *Raster) FillText(text string, x, y float64, align Align, c Color) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c.RGBA()),
		Face: r.face,
		Dot:  fixed.P(round(alignX(x, TextWidth(text), align)), round(y)),
	}
	d.DrawString(text)
}

// EncodePNG writes the raster as a PNG image.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

// Diff returns the number of pixels that differ between two rasters and
// the bounding rectangle of those pixels. Rasters of different sizes
// compare as entirely different.
func Diff(a, b *Raster) (int, image.Rectangle) {
	ab, bb := a.img.Bounds(), b.img.Bounds()
	if ab != bb {
		return ab.Dx() * ab.Dy(), ab.Union(bb)
	}
	count := 0
	var box image.Rectangle
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			if a.img.RGBAAt(x, y) != b.img.RGBAAt(x, y) {
				count++
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return count, box
}
