package glyph

import "golang.org/x/image/font"

// Index is a glyph index within a font.
type Index uint16

// Glyph is a font glyph addressed by the code point that maps to it.
type Glyph struct {
	Rune  rune
	Index Index
}

// Box is a tight glyph bounding box in pixels, relative to the glyph
// origin on the baseline. Y grows downward, so Y1 is negative for glyphs
// that rise above the baseline.
type Box struct {
	X1, Y1, X2, Y2 float64
}

// Width returns X2 - X1.
func (b Box) Width() float64 { return b.X2 - b.X1 }

// Height returns Y2 - Y1.
func (b Box) Height() float64 { return b.Y2 - b.Y1 }

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.X2 <= b.X1 || b.Y2 <= b.Y1 }

// Union returns the smallest box containing b and o. An empty box is
// the identity.
func (b Box) Union(o Box) Box {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box{
		X1: min(b.X1, o.X1),
		Y1: min(b.Y1, o.Y1),
		X2: max(b.X2, o.X2),
		Y2: max(b.Y2, o.Y2),
	}
}

// MetricsSource reports glyph bounding boxes for every code-pointed glyph
// of a font.
type MetricsSource interface {
	// Glyphs returns every glyph with a defined code point.
	Glyphs() []Glyph

	// Bounds returns the glyph's bounding box at size pixels per em.
	Bounds(g Glyph, size float64) Box
}

// Source is a MetricsSource that can also resolve characters and draw
// them.
type Source interface {
	MetricsSource

	// Lookup returns the glyph mapped to r. ok is false when the font has
	// no glyph for r.
	Lookup(r rune) (g Glyph, ok bool)

	// Face returns a face for drawing at size pixels per em.
	Face(size float64) (font.Face, error)
}
