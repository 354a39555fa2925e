package atlas

import "fmt"

// Defaults used by New.
const (
	// DefaultFontSize is the logical font size used for layout.
	DefaultFontSize = 16

	// ReferenceSize is the font size the atlas texture is rasterized at.
	ReferenceSize = 512
)

// Alignment selects how glyphs are placed inside their atlas cell.
type Alignment int

const (
	// AlignCenter centers each glyph's ink box in the cell.
	AlignCenter Alignment = iota

	// AlignTopLeft places glyphs on a shared baseline at the font's
	// maximum ascent, ink box against the cell's left edge.
	AlignTopLeft
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignTopLeft:
		return "top-left"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Option configures a CharacterSet during creation.
type Option func(*config)

type config struct {
	fontSize      int
	referenceSize int
	alignment     Alignment
}

func defaultConfig() config {
	return config{
		fontSize:      DefaultFontSize,
		referenceSize: ReferenceSize,
		alignment:     AlignCenter,
	}
}

// Validate checks option values.
func (c *config) Validate() error {
	if c.fontSize <= 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be positive"}
	}
	if c.referenceSize <= 0 {
		return &ConfigError{Field: "ReferenceSize", Reason: "must be positive"}
	}
	if c.referenceSize > 4096 {
		return &ConfigError{Field: "ReferenceSize", Reason: "must be at most 4096"}
	}
	if c.alignment != AlignCenter && c.alignment != AlignTopLeft {
		return &ConfigError{Field: "Alignment", Reason: "unknown alignment"}
	}
	return nil
}

// WithFontSize sets the logical font size. Default: 16.
func WithFontSize(size int) Option {
	return func(c *config) {
		c.fontSize = size
	}
}

// WithReferenceSize sets the atlas rasterization size. Default: 512.
// Lower values trade sharpness for memory; mostly useful in tests.
func WithReferenceSize(size int) Option {
	return func(c *config) {
		c.referenceSize = size
	}
}

// WithAlignment sets the glyph placement strategy. Default: AlignCenter.
func WithAlignment(a Alignment) Option {
	return func(c *config) {
		c.alignment = a
	}
}
