package atlas

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ascii/glyph"
)

// resizeRGBA returns an image of w×h pixels, cleared to transparent.
// img's pixel buffer is reused when it is large enough.
func resizeRGBA(img *image.RGBA, w, h int) *image.RGBA {
	n := w * h * 4
	if img == nil || cap(img.Pix) < n {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	img.Pix = img.Pix[:n]
	img.Stride = 4 * w
	img.Rect = image.Rect(0, 0, w, h)
	clear(img.Pix)
	return img
}

// placement computes glyph origins inside atlas cells.
type placement struct {
	align Alignment
	cell  Dimensions
	union glyph.Box
}

// dot returns the glyph origin for a glyph with ink box b drawn into cell.
func (p placement) dot(cell image.Rectangle, b glyph.Box) fixed.Point26_6 {
	var x, y float64
	switch p.align {
	case AlignTopLeft:
		x = float64(cell.Min.X) - b.X1
		y = float64(cell.Min.Y) - p.union.Y1
	default:
		x = float64(cell.Min.X) + (float64(p.cell.Width)-b.Width())/2 - b.X1
		y = float64(cell.Min.Y) + (float64(p.cell.Height)-b.Height())/2 - b.Y1
	}
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}

// drawGlyph rasterizes r white-on-transparent at dot, clipped to cell so
// that no glyph bleeds into its neighbours. It reports false when the
// face has no glyph for r.
func drawGlyph(dst *image.RGBA, face font.Face, cell image.Rectangle, dot fixed.Point26_6, r rune) bool {
	dr, mask, maskp, _, ok := face.Glyph(dot, r)
	if !ok {
		return false
	}

	clipped := dr.Intersect(cell)
	if clipped.Empty() {
		return true
	}
	mp := maskp.Add(clipped.Min.Sub(dr.Min))
	draw.DrawMask(dst, clipped, image.White, image.Point{}, mask, mp, draw.Over)
	return true
}
