package glyph

import "golang.org/x/image/font"

// FontOption configures a Font during creation.
type FontOption func(*fontConfig)

type fontConfig struct {
	name      string
	hinting   font.Hinting
	faceLimit int
}

func defaultFontConfig() fontConfig {
	return fontConfig{
		hinting:   font.HintingNone,
		faceLimit: 8,
	}
}

// WithName overrides the name read from the font's name table.
func WithName(name string) FontOption {
	return func(c *fontConfig) {
		c.name = name
	}
}

// WithHinting sets the hinting used for both metrics and faces.
// The default is font.HintingNone, which keeps bounding boxes exact.
func WithHinting(h font.Hinting) FontOption {
	return func(c *fontConfig) {
		c.hinting = h
	}
}

// WithFaceCacheSize limits how many per-size faces are kept open.
// Values below 1 are ignored.
func WithFaceCacheSize(n int) FontOption {
	return func(c *fontConfig) {
		if n > 0 {
			c.faceLimit = n
		}
	}
}
