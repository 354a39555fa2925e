package ascii

import (
	"github.com/gogpu/ascii/glyph"
	"github.com/gogpu/ascii/render"
)

// Event is a deferred session change applied by Session.Flush.
type Event interface {
	apply(s *Session) error
	kind() string
}

// FontChanged switches to a registered font.
type FontChanged struct {
	Name string
}

// FontLoaded registers a newly loaded font and switches to it.
// Font loaders running on other goroutines post this event.
type FontLoaded struct {
	Name string
	Font *glyph.Font
}

// FontSizeChanged changes the logical font size.
type FontSizeChanged struct {
	Size int
}

// CharactersChanged replaces the character set.
type CharactersChanged struct {
	Characters string
}

// GridCountsChanged overrides the grid cell counts.
type GridCountsChanged struct {
	Cols, Rows int
}

// ViewportResized reports a new render target size.
type ViewportResized struct {
	Width, Height int
}

// ParametersChanged replaces the shader parameters.
type ParametersChanged struct {
	Parameters render.Parameters
}

// FrameRateChanged changes the desired frame rate.
type FrameRateChanged struct {
	FrameRate int
}

// RecordingTypeChanged changes the capture format.
type RecordingTypeChanged struct {
	RecordingType string
}

func (e FontChanged) apply(s *Session) error { return s.SetFont(e.Name) }
func (e FontChanged) kind() string           { return "font" }

func (e FontLoaded) apply(s *Session) error {
	if e.Font == nil {
		return ErrNilFont
	}
	if err := s.registry.Register(e.Name, e.Font); err != nil {
		return err
	}
	return s.SetFont(e.Name)
}
func (e FontLoaded) kind() string { return "font_loaded" }

func (e FontSizeChanged) apply(s *Session) error { return s.SetFontSize(e.Size) }
func (e FontSizeChanged) kind() string           { return "font_size" }

func (e CharactersChanged) apply(s *Session) error { return s.SetCharacters(e.Characters) }
func (e CharactersChanged) kind() string           { return "characters" }

func (e GridCountsChanged) apply(s *Session) error { return s.SetGridCounts(e.Cols, e.Rows) }
func (e GridCountsChanged) kind() string           { return "grid_counts" }

func (e ViewportResized) apply(s *Session) error { s.Resize(e.Width, e.Height); return nil }
func (e ViewportResized) kind() string           { return "resize" }

func (e ParametersChanged) apply(s *Session) error { return s.SetParameters(e.Parameters) }
func (e ParametersChanged) kind() string           { return "parameters" }

func (e FrameRateChanged) apply(s *Session) error { return s.SetFrameRate(e.FrameRate) }
func (e FrameRateChanged) kind() string           { return "frame_rate" }

func (e RecordingTypeChanged) apply(s *Session) error { return s.SetRecordingType(e.RecordingType) }
func (e RecordingTypeChanged) kind() string           { return "recording_type" }
