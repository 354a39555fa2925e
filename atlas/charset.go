package atlas

import (
	"fmt"
	"image"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ascii/glyph"
)

// CharacterSet is a font, a font size and an ordered character list,
// together with the glyph atlas rasterized from them.
//
// A CharacterSet is created once and mutated in place; holders keep a
// stable pointer across font, size and character changes. Every
// successful atlas build bumps Generation so texture owners know to
// re-upload.
type CharacterSet struct {
	font       glyph.Source
	fontSize   int
	characters []rune
	maxDims    Dimensions

	referenceSize int
	alignment     Alignment

	layout     Layout
	refDims    Dimensions
	img        *image.RGBA
	missing    []rune
	generation uint64
}

// New creates a CharacterSet and builds its atlas.
// characters is split into code points after NFC normalization;
// duplicates and order are kept.
func New(font glyph.Source, characters string, opts ...Option) (*CharacterSet, error) {
	if font == nil {
		return nil, ErrNilFont
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cs := &CharacterSet{
		font:          font,
		fontSize:      cfg.fontSize,
		characters:    splitCharacters(characters),
		referenceSize: cfg.referenceSize,
		alignment:     cfg.alignment,
	}
	cs.maxDims = MaxGlyphDimensions(font, float64(cs.fontSize))

	if err := cs.BuildAtlas(); err != nil {
		return nil, err
	}
	return cs, nil
}

// SetFont replaces the font, recomputes MaxGlyphDimensions at the current
// font size and rebuilds the atlas. On error the previous font and atlas
// stay in place.
func (cs *CharacterSet) SetFont(font glyph.Source) error {
	if font == nil {
		return ErrNilFont
	}

	prevFont, prevDims := cs.font, cs.maxDims
	cs.font = font
	cs.maxDims = MaxGlyphDimensions(font, float64(cs.fontSize))

	if err := cs.BuildAtlas(); err != nil {
		cs.font, cs.maxDims = prevFont, prevDims
		return err
	}
	return nil
}

// SetCharacters replaces the character list and rebuilds the atlas.
// Glyph metrics are unaffected. On error the previous list stays.
func (cs *CharacterSet) SetCharacters(characters string) error {
	prev := cs.characters
	cs.characters = splitCharacters(characters)

	if err := cs.BuildAtlas(); err != nil {
		cs.characters = prev
		return err
	}
	return nil
}

// SetFontSize updates the logical font size and MaxGlyphDimensions.
// The atlas is not rebuilt: it is always rasterized at the reference
// size, so only the layout cell size changes.
func (cs *CharacterSet) SetFontSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	cs.fontSize = size
	cs.maxDims = MaxGlyphDimensions(cs.font, float64(size))
	slogger().Debug("atlas: font size changed",
		"size", size, "cell_width", cs.maxDims.Width, "cell_height", cs.maxDims.Height)
	return nil
}

// ComputeMaxGlyphDimensions returns the max glyph dimensions of the
// current font at size.
func (cs *CharacterSet) ComputeMaxGlyphDimensions(size float64) Dimensions {
	return MaxGlyphDimensions(cs.font, size)
}

// BuildAtlas rasterizes every character into its cell at the reference
// size. The pixel buffer of the previous atlas is reused when it is
// large enough. Characters the font cannot draw leave a blank cell and
// are reported by MissingGlyphs.
//
// ErrEmptyGlyphSet and ErrEmptyCharacterSet leave the previous atlas
// untouched.
func (cs *CharacterSet) BuildAtlas() error {
	refDims, union := measure(cs.font, float64(cs.referenceSize))
	if refDims.IsZero() {
		return ErrEmptyGlyphSet
	}
	layout := LayoutFor(len(cs.characters))
	if layout.Count == 0 {
		return ErrEmptyCharacterSet
	}

	face, err := cs.font.Face(float64(cs.referenceSize))
	if err != nil {
		return fmt.Errorf("atlas: %w", err)
	}

	size := layout.Size(refDims)
	cs.img = resizeRGBA(cs.img, size.Width, size.Height)
	cs.layout = layout
	cs.refDims = refDims

	place := placement{align: cs.alignment, cell: refDims, union: union}
	cs.missing = cs.missing[:0]
	for i, r := range cs.characters {
		g, ok := cs.font.Lookup(r)
		if !ok {
			cs.missing = append(cs.missing, r)
			continue
		}
		b := cs.font.Bounds(g, float64(cs.referenceSize))
		if b.Empty() {
			continue
		}
		cell := layout.Rect(i, refDims)
		if !drawGlyph(cs.img, face, cell, place.dot(cell, b), r) {
			cs.missing = append(cs.missing, r)
		}
	}
	cs.generation++

	if len(cs.missing) > 0 {
		slogger().Warn("atlas: characters missing from font, cells left blank",
			"count", len(cs.missing), "characters", string(cs.missing))
	}
	slogger().Debug("atlas: rebuilt",
		"characters", layout.Count,
		"cols", layout.Cols,
		"rows", layout.Rows,
		"width", size.Width,
		"height", size.Height,
		"alignment", cs.alignment.String(),
		"generation", cs.generation)
	return nil
}

// Font returns the current font.
func (cs *CharacterSet) Font() glyph.Source { return cs.font }

// FontSize returns the logical font size.
func (cs *CharacterSet) FontSize() int { return cs.fontSize }

// Characters returns the ordered character list. The slice must not be
// modified.
func (cs *CharacterSet) Characters() []rune { return cs.characters }

// String returns the character list as a string.
func (cs *CharacterSet) String() string { return string(cs.characters) }

// Len returns the number of character slots.
func (cs *CharacterSet) Len() int { return len(cs.characters) }

// MaxGlyphDimensions returns the layout cell size at the font size.
func (cs *CharacterSet) MaxGlyphDimensions() Dimensions { return cs.maxDims }

// ReferenceSize returns the atlas rasterization size.
func (cs *CharacterSet) ReferenceSize() int { return cs.referenceSize }

// ReferenceDimensions returns the atlas cell size in texture pixels.
func (cs *CharacterSet) ReferenceDimensions() Dimensions { return cs.refDims }

// Alignment returns the glyph placement strategy.
func (cs *CharacterSet) Alignment() Alignment { return cs.alignment }

// Layout returns the atlas cell layout.
func (cs *CharacterSet) Layout() Layout { return cs.layout }

// Cols returns the atlas column count.
func (cs *CharacterSet) Cols() int { return cs.layout.Cols }

// Rows returns the atlas row count.
func (cs *CharacterSet) Rows() int { return cs.layout.Rows }

// Image returns the atlas pixels. The image is reused by later builds;
// copy it to keep a snapshot.
func (cs *CharacterSet) Image() *image.RGBA { return cs.img }

// MissingGlyphs returns the characters of the last build that the font
// could not draw.
func (cs *CharacterSet) MissingGlyphs() []rune { return cs.missing }

// Generation returns a counter incremented by every successful build.
func (cs *CharacterSet) Generation() uint64 { return cs.generation }

// splitCharacters normalizes s to NFC and splits it into code points.
func splitCharacters(s string) []rune {
	return []rune(norm.NFC.String(s))
}
