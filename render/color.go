package render

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is an opaque color with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// ParseHexColor parses "#rrggbb", "rrggbb" or the shorthand "#rgb".
// Any other input is an error; there is no fallback color.
func ParseHexColor(s string) (RGB, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	switch len(hex) {
	case 3:
		var ok [3]bool
		r, ok[0] = nibble(hex[0])
		g, ok[1] = nibble(hex[1])
		b, ok[2] = nibble(hex[2])
		if !ok[0] || !ok[1] || !ok[2] {
			return RGB{}, &ColorError{Value: s}
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		var ok [3]bool
		r, ok[0] = hexByte(hex[0:2])
		g, ok[1] = hexByte(hex[2:4])
		b, ok[2] = hexByte(hex[4:6])
		if !ok[0] || !ok[1] || !ok[2] {
			return RGB{}, &ColorError{Value: s}
		}
	default:
		return RGB{}, &ColorError{Value: s}
	}

	return RGB{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
	}, nil
}

// MustParseHexColor is like ParseHexColor but panics on error.
func MustParseHexColor(s string) RGB {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	r, g, b := to255(c.R), to255(c.G), to255(c.B)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Color converts c to an opaque color.NRGBA.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: to255(c.R), G: to255(c.G), B: to255(c.B), A: 255}
}

// Array returns the components as a vec3.
func (c RGB) Array() [3]float32 { return [3]float32{c.R, c.G, c.B} }

func to255(v float32) uint8 {
	return uint8(math.Round(float64(max(0, min(1, v))) * 255))
}

func hexByte(s string) (uint8, bool) {
	hi, ok1 := nibble(s[0])
	lo, ok2 := nibble(s[1])
	return hi<<4 | lo, ok1 && ok2
}

func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
