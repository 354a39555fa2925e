package glyph

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"os"
	"slices"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ascii/internal/cache"
)

// Font is a parsed TrueType or OpenType font.
//
// Font is safe for concurrent use, except for the faces it returns: an
// x/image font.Face must only be used by one goroutine at a time.
// Font must not be copied after creation.
type Font struct {
	// addr points to the Font itself for copy detection.
	addr *Font

	name    string
	sfnt    *sfnt.Font
	glyphs  []Glyph
	runes   map[rune]Index
	hinting font.Hinting

	// mu guards buf, which sfnt requires per call.
	mu  sync.Mutex
	buf sfnt.Buffer

	faces *cache.Cache[float64, font.Face]
}

// NewFont parses TTF or OTF data. The data slice is not retained.
func NewFont(data []byte, opts ...FontOption) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultFontConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}

	// The cmap is read through go-text, which exposes an iterator over
	// every mapped code point; sfnt only supports forward lookups.
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to read character map: %w", err)
	}

	f := &Font{
		sfnt:    parsed,
		runes:   make(map[rune]Index),
		hinting: cfg.hinting,
		faces:   cache.New[float64, font.Face](cfg.faceLimit),
	}
	f.addr = f
	f.faces.OnEvict(func(_ float64, face font.Face) { _ = face.Close() })

	iter := face.Font.Cmap.Iter()
	for iter.Next() {
		r, gid := iter.Char()
		if gid == 0 || gid > math.MaxUint16 {
			continue
		}
		if _, dup := f.runes[r]; dup {
			continue
		}
		f.runes[r] = Index(gid)
		f.glyphs = append(f.glyphs, Glyph{Rune: r, Index: Index(gid)})
	}
	slices.SortFunc(f.glyphs, func(a, b Glyph) int { return cmp.Compare(a.Rune, b.Rune) })

	f.name = cfg.name
	if f.name == "" {
		f.name = fontName(parsed)
	}
	return f, nil
}

// NewFontFromFile loads a font from path.
func NewFontFromFile(path string, opts ...FontOption) (*Font, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to read font file: %w", err)
	}
	return NewFont(data, opts...)
}

// Name returns the font family name.
func (f *Font) Name() string {
	f.copyCheck()
	return f.name
}

// NumGlyphs returns the number of glyphs in the font, including glyphs
// that no code point maps to.
func (f *Font) NumGlyphs() int {
	f.copyCheck()
	return f.sfnt.NumGlyphs()
}

// Glyphs returns every glyph with a code point, ordered by code point.
// The returned slice must not be modified.
func (f *Font) Glyphs() []Glyph {
	f.copyCheck()
	return f.glyphs
}

// Lookup returns the glyph mapped to r.
func (f *Font) Lookup(r rune) (Glyph, bool) {
	f.copyCheck()
	idx, ok := f.runes[r]
	if !ok {
		return Glyph{}, false
	}
	return Glyph{Rune: r, Index: idx}, true
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Font) HasGlyph(r rune) bool {
	_, ok := f.Lookup(r)
	return ok
}

// Bounds returns the outline bounding box of g at size pixels per em.
// Glyphs without an outline, such as the space, yield an empty box.
func (f *Font) Bounds(g Glyph, size float64) Box {
	f.copyCheck()

	f.mu.Lock()
	bounds, _, err := f.sfnt.GlyphBounds(&f.buf, sfnt.GlyphIndex(g.Index), floatToFixed(size), f.hinting)
	f.mu.Unlock()
	if err != nil {
		return Box{}
	}

	return Box{
		X1: fixedToFloat(bounds.Min.X),
		Y1: fixedToFloat(bounds.Min.Y),
		X2: fixedToFloat(bounds.Max.X),
		Y2: fixedToFloat(bounds.Max.Y),
	}
}

// Face returns a face drawing at size pixels per em (72 DPI). Faces are
// cached per size and closed when evicted or when the Font is closed.
func (f *Font) Face(size float64) (font.Face, error) {
	f.copyCheck()
	return f.faces.GetOrCreate(size, func() (font.Face, error) {
		face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: f.hinting,
		})
		if err != nil {
			return nil, fmt.Errorf("glyph: failed to create face at size %v: %w", size, err)
		}
		return face, nil
	})
}

// Close releases cached faces. The Font remains usable; faces are
// recreated on demand.
func (f *Font) Close() error {
	f.copyCheck()
	f.faces.Clear()
	return nil
}

// copyCheck panics if the Font was copied by value.
func (f *Font) copyCheck() {
	if f.addr != f {
		panic("glyph: Font must not be copied by value")
	}
}

// fontName extracts the family name, falling back to the full name.
func fontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
