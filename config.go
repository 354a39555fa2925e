package ascii

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/ascii/atlas"
	"github.com/gogpu/ascii/glyph"
	"github.com/gogpu/ascii/render"
)

// Frame rate limits accepted by Config and SetFrameRate.
const (
	MinFrameRate = 1
	MaxFrameRate = 60
)

// RecordingTypes lists the supported capture formats.
var RecordingTypes = []string{"webm", "gif", "png", "jpg"}

// Config describes the initial state of a Session.
type Config struct {
	// Font is the registry name of the font.
	Font string

	// Characters is the ordered character set, darkest first.
	Characters string

	// FontSize is the logical glyph size that sets the grid cell size.
	FontSize int

	// ViewportWidth and ViewportHeight are the render target size in pixels.
	ViewportWidth  int
	ViewportHeight int

	// GridCols and GridRows override the derived cell counts. When only
	// one is non-zero the other axis keeps its derived count.
	GridCols int
	GridRows int

	Parameters render.Parameters

	// FrameRate is the desired frame rate, 1 to 60.
	FrameRate int

	// RecordingType is the capture format, one of RecordingTypes.
	RecordingType string

	// Alignment selects how glyphs are placed in their atlas cells.
	Alignment atlas.Alignment
}

// DefaultConfig returns the startup configuration: the built-in mono font
// at size 8 with the digits as character set, 60 frames per second and
// default shader parameters. The viewport is left at zero.
func DefaultConfig() Config {
	return Config{
		Font:          glyph.DefaultFontName,
		Characters:    "0123456789",
		FontSize:      8,
		Parameters:    render.DefaultParameters(),
		FrameRate:     60,
		RecordingType: "webm",
		Alignment:     atlas.AlignCenter,
	}
}

// Validate checks every field and reports all problems together.
func (c Config) Validate() error {
	var errs []error
	add := func(field, reason string) {
		errs = append(errs, &ConfigError{Field: field, Reason: reason})
	}

	if c.Font == "" {
		add("Font", "must not be empty")
	}
	if c.Characters == "" {
		add("Characters", "must not be empty")
	}
	if c.FontSize <= 0 {
		add("FontSize", fmt.Sprintf("must be positive, got %d", c.FontSize))
	}
	if c.ViewportWidth < 0 || c.ViewportHeight < 0 {
		add("Viewport", fmt.Sprintf("must not be negative, got %dx%d", c.ViewportWidth, c.ViewportHeight))
	}
	if c.GridCols < 0 || c.GridRows < 0 {
		add("Grid", fmt.Sprintf("must not be negative, got %dx%d", c.GridCols, c.GridRows))
	}
	if err := validateFrameRate(c.FrameRate); err != nil {
		errs = append(errs, err)
	}
	if err := validateRecordingType(c.RecordingType); err != nil {
		errs = append(errs, err)
	}
	if err := c.Parameters.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateFrameRate(fps int) error {
	if fps < MinFrameRate || fps > MaxFrameRate {
		return &ConfigError{
			Field:  "FrameRate",
			Reason: fmt.Sprintf("must be in [%d, %d], got %d", MinFrameRate, MaxFrameRate, fps),
		}
	}
	return nil
}

func validateRecordingType(t string) error {
	if !slices.Contains(RecordingTypes, t) {
		return &ConfigError{
			Field:  "RecordingType",
			Reason: fmt.Sprintf("must be one of %v, got %q", RecordingTypes, t),
		}
	}
	return nil
}
