package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for the render package.
var (
	// ErrInvalidColor is wrapped by every *ColorError.
	ErrInvalidColor = errors.New("render: invalid hex color")

	// ErrInvalidColorMode is returned for color modes other than sampled or fixed.
	ErrInvalidColorMode = errors.New("render: invalid color mode")

	// ErrNilAtlas is returned by Bind when no atlas state is given.
	ErrNilAtlas = errors.New("render: nil atlas")

	// ErrNilGrid is returned by Bind when no grid state is given.
	ErrNilGrid = errors.New("render: nil grid")
)

// ColorError reports a color string that is not a hex color.
type ColorError struct {
	Field string // parameter name, empty for bare ParseHexColor calls
	Value string
}

func (e *ColorError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("render: invalid hex color %q", e.Value)
	}
	return fmt.Sprintf("render: %s: invalid hex color %q", e.Field, e.Value)
}

// Unwrap returns ErrInvalidColor.
func (e *ColorError) Unwrap() error { return ErrInvalidColor }
