package atlas

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/ascii/glyph"
)

// fakeSize is the pixel size the fake boxes are expressed at. It matches
// basicfont.Face7x13 so that drawn glyphs line up with their boxes.
const fakeSize = 13

// digitBox is the ink box basicfont uses for a full 7x13 cell.
var digitBox = glyph.Box{X1: 0, Y1: -11, X2: 7, Y2: 2}

// fakeFont is a glyph.Source with hand-written boxes that scale linearly
// with size and draws with basicfont.Face7x13 at every size.
type fakeFont struct {
	boxes  map[rune]glyph.Box
	hidden map[rune]bool // mapped for metrics but not reported by Lookup
	glyphs []glyph.Glyph
	faces  int
}

func newFakeFont(boxes map[rune]glyph.Box) *fakeFont {
	f := &fakeFont{boxes: boxes, hidden: map[rune]bool{}}
	for r := rune(0); r < 0x3000; r++ {
		if _, ok := boxes[r]; ok {
			f.glyphs = append(f.glyphs, glyph.Glyph{Rune: r, Index: glyph.Index(len(f.glyphs) + 1)})
		}
	}
	return f
}

// digitsFont maps '0'-'9' and 'A'-'E' to full basicfont cells.
func digitsFont() *fakeFont {
	boxes := map[rune]glyph.Box{}
	for _, r := range "0123456789ABCDE" {
		boxes[r] = digitBox
	}
	return newFakeFont(boxes)
}

func (f *fakeFont) Glyphs() []glyph.Glyph { return f.glyphs }

func (f *fakeFont) Bounds(g glyph.Glyph, size float64) glyph.Box {
	b := f.boxes[g.Rune]
	s := size / fakeSize
	return glyph.Box{X1: b.X1 * s, Y1: b.Y1 * s, X2: b.X2 * s, Y2: b.Y2 * s}
}

func (f *fakeFont) Lookup(r rune) (glyph.Glyph, bool) {
	if f.hidden[r] {
		return glyph.Glyph{}, false
	}
	for _, g := range f.glyphs {
		if g.Rune == r {
			return g, true
		}
	}
	return glyph.Glyph{}, false
}

func (f *fakeFont) Face(float64) (font.Face, error) {
	f.faces++
	return basicfont.Face7x13, nil
}

// cellAlpha sums the alpha channel inside r.
func cellAlpha(img *image.RGBA, r image.Rectangle) int {
	sum := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += int(img.RGBAAt(x, y).A)
		}
	}
	return sum
}
