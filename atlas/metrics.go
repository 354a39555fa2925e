package atlas

import (
	"math"

	"github.com/gogpu/ascii/glyph"
)

// MaxGlyphDimensions returns the per-axis maximum bounding box size over
// every glyph of src at size, each axis rounded up. A font without
// glyphs yields the zero Dimensions.
//
// The result depends only on src and size, so repeated calls agree.
func MaxGlyphDimensions(src glyph.MetricsSource, size float64) Dimensions {
	dims, _ := measure(src, size)
	return dims
}

// measure walks the glyph set once, returning the max dimensions and the
// union of all boxes. The union positions a shared baseline for
// AlignTopLeft.
func measure(src glyph.MetricsSource, size float64) (Dimensions, glyph.Box) {
	if src == nil {
		return Dimensions{}, glyph.Box{}
	}

	var maxW, maxH float64
	var union glyph.Box
	for _, g := range src.Glyphs() {
		b := src.Bounds(g, size)
		maxW = max(maxW, b.Width())
		maxH = max(maxH, b.Height())
		union = union.Union(b)
	}

	return Dimensions{
		Width:  int(math.Ceil(maxW)),
		Height: int(math.Ceil(maxH)),
	}, union
}
