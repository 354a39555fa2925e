package glyph

import "errors"

// Sentinel errors for the glyph package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrFontNotFound is returned when a registry has no font by that name.
	ErrFontNotFound = errors.New("glyph: font not found")

	// ErrEmptyName is returned when registering a font under an empty name.
	ErrEmptyName = errors.New("glyph: empty font name")
)
