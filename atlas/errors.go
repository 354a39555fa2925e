package atlas

import "errors"

// Sentinel errors for the atlas package.
var (
	// ErrEmptyGlyphSet is returned when a font yields no usable glyph
	// extents, which would produce a zero-area atlas.
	ErrEmptyGlyphSet = errors.New("atlas: font has no usable glyphs")

	// ErrEmptyCharacterSet is returned when the character list is empty.
	ErrEmptyCharacterSet = errors.New("atlas: character set is empty")

	// ErrNilFont is returned when a nil font is supplied.
	ErrNilFont = errors.New("atlas: nil font")

	// ErrInvalidFontSize is returned for non-positive font sizes.
	ErrInvalidFontSize = errors.New("atlas: font size must be positive")
)

// ConfigError represents an invalid option value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
