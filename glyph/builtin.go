package glyph

import (
	"fmt"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Names of the fonts registered by RegisterBuiltins.
const (
	GoMono    = "GoMono"
	GoRegular = "GoRegular"
)

// DefaultFontName is the font used when no other font is configured.
const DefaultFontName = GoMono

// RegisterBuiltins registers the Go fonts shipped with x/image.
func RegisterBuiltins(r *Registry) error {
	builtins := []struct {
		name string
		data []byte
	}{
		{GoMono, gomono.TTF},
		{GoRegular, goregular.TTF},
	}
	for _, b := range builtins {
		f, err := NewFont(b.data, WithName(b.name))
		if err != nil {
			return fmt.Errorf("glyph: builtin %s: %w", b.name, err)
		}
		if err := r.Register(b.name, f); err != nil {
			return err
		}
	}
	return nil
}
