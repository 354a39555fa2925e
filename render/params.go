package render

import (
	"errors"
	"fmt"
)

// ColorMode selects where a color comes from.
type ColorMode int32

const (
	// ColorSampled takes the color from the scene pixel under the cell.
	ColorSampled ColorMode = 0

	// ColorFixed uses the configured hex color.
	ColorFixed ColorMode = 1
)

// String returns the mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorSampled:
		return "sampled"
	case ColorFixed:
		return "fixed"
	default:
		return fmt.Sprintf("ColorMode(%d)", int32(m))
	}
}

// Valid reports whether m is a known mode.
func (m ColorMode) Valid() bool { return m == ColorSampled || m == ColorFixed }

// ParseColorMode parses "sampled" or "fixed".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "sampled":
		return ColorSampled, nil
	case "fixed":
		return ColorFixed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
}

// Parameters are the user-tunable shader parameters.
type Parameters struct {
	CharacterColor      string
	BackgroundColor     string
	CharacterColorMode  ColorMode
	BackgroundColorMode ColorMode
	Invert              bool

	// ShaderActive disables the effect when false; the scene passes
	// through unchanged.
	ShaderActive bool
}

// DefaultParameters returns white characters sampled from the scene on a
// fixed black background.
func DefaultParameters() Parameters {
	return Parameters{
		CharacterColor:      "#ffffff",
		BackgroundColor:     "#000000",
		CharacterColorMode:  ColorSampled,
		BackgroundColorMode: ColorFixed,
		Invert:              false,
		ShaderActive:        true,
	}
}

// Validate checks both colors and both color modes. All problems are
// reported together.
func (p Parameters) Validate() error {
	_, _, err := p.colors()
	return err
}

// colors parses both colors and checks the modes.
func (p Parameters) colors() (char, bg RGB, err error) {
	var errs []error

	char, cerr := ParseHexColor(p.CharacterColor)
	if cerr != nil {
		errs = append(errs, &ColorError{Field: "CharacterColor", Value: p.CharacterColor})
	}
	bg, berr := ParseHexColor(p.BackgroundColor)
	if berr != nil {
		errs = append(errs, &ColorError{Field: "BackgroundColor", Value: p.BackgroundColor})
	}
	if !p.CharacterColorMode.Valid() {
		errs = append(errs, fmt.Errorf("%w: CharacterColorMode %d", ErrInvalidColorMode, p.CharacterColorMode))
	}
	if !p.BackgroundColorMode.Valid() {
		errs = append(errs, fmt.Errorf("%w: BackgroundColorMode %d", ErrInvalidColorMode, p.BackgroundColorMode))
	}
	return char, bg, errors.Join(errs...)
}
