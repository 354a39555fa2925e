package preset

import (
	"errors"
	"fmt"

	"github.com/gogpu/ascii"
	"github.com/gogpu/ascii/render"
)

// Preset is a snapshot of a session's settings.
type Preset struct {
	Font                string `json:"asciiFont" yaml:"asciiFont"`
	CharacterSet        string `json:"asciiCharacterSet" yaml:"asciiCharacterSet"`
	FontSize            int    `json:"asciiFontSize" yaml:"asciiFontSize"`
	InvertCharacters    bool   `json:"asciiInvertCharacters" yaml:"asciiInvertCharacters"`
	CharacterColorMode  int    `json:"asciiCharacterColorMode" yaml:"asciiCharacterColorMode"`
	BackgroundColorMode int    `json:"asciiBackgroundColorMode" yaml:"asciiBackgroundColorMode"`
	CharacterColor      string `json:"asciiCharacterColor" yaml:"asciiCharacterColor"`
	BackgroundColor     string `json:"asciiBackgroundColor" yaml:"asciiBackgroundColor"`
	GridCellCountX      int    `json:"gridCellCountX" yaml:"gridCellCountX"`
	GridCellCountY      int    `json:"gridCellCountY" yaml:"gridCellCountY"`
	ShaderActive        bool   `json:"asciiShaderActive" yaml:"asciiShaderActive"`
	DesiredFrameRate    int    `json:"desiredFrameRate" yaml:"desiredFrameRate"`
	RecordingType       string `json:"recordingType" yaml:"recordingType"`

	// GridOverride marks the grid counts as a manual override even when
	// they equal the derived counts.
	GridOverride bool `json:"gridOverride,omitempty" yaml:"gridOverride,omitempty"`

	// Recording state written by the browser sketch's export. Accepted on
	// decode and ignored by Apply.
	RecordingActive      bool   `json:"recordingActive,omitempty" yaml:"recordingActive,omitempty"`
	RecordingElapsedTime string `json:"recordingElapsedTime,omitempty" yaml:"recordingElapsedTime,omitempty"`
}

// FromSession captures the current settings of s.
func FromSession(s *ascii.Session) Preset {
	p := s.Parameters()
	cs := s.CharacterSet()
	g := s.Grid()
	return Preset{
		Font:                s.FontName(),
		CharacterSet:        cs.String(),
		FontSize:            cs.FontSize(),
		InvertCharacters:    p.Invert,
		CharacterColorMode:  int(p.CharacterColorMode),
		BackgroundColorMode: int(p.BackgroundColorMode),
		CharacterColor:      p.CharacterColor,
		BackgroundColor:     p.BackgroundColor,
		GridCellCountX:      g.Cols(),
		GridCellCountY:      g.Rows(),
		ShaderActive:        p.ShaderActive,
		DesiredFrameRate:    s.FrameRate(),
		RecordingType:       s.RecordingType(),
		GridOverride:        g.Overridden(),
	}
}

// Parameters returns the shader parameters stored in p.
func (p Preset) Parameters() render.Parameters {
	return render.Parameters{
		CharacterColor:      p.CharacterColor,
		BackgroundColor:     p.BackgroundColor,
		CharacterColorMode:  render.ColorMode(p.CharacterColorMode),
		BackgroundColorMode: render.ColorMode(p.BackgroundColorMode),
		Invert:              p.InvertCharacters,
		ShaderActive:        p.ShaderActive,
	}
}

// Validate checks p without touching a session. Font existence is
// checked by Apply.
func (p Preset) Validate() error {
	cfg := ascii.Config{
		Font:          p.Font,
		Characters:    p.CharacterSet,
		FontSize:      p.FontSize,
		GridCols:      p.GridCellCountX,
		GridRows:      p.GridCellCountY,
		Parameters:    p.Parameters(),
		FrameRate:     p.DesiredFrameRate,
		RecordingType: p.RecordingType,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	return nil
}

// Events returns the session events that apply p, in order. Post them
// from any goroutine; they take effect on the session's next Flush.
//
// Grid counts come last so they are not dropped by the cell size change
// of the font events, and always arrive as an override. Use Apply on the
// render goroutine for an exact restore.
func (p Preset) Events() []ascii.Event {
	return []ascii.Event{
		ascii.FontChanged{Name: p.Font},
		ascii.FontSizeChanged{Size: p.FontSize},
		ascii.CharactersChanged{Characters: p.CharacterSet},
		ascii.ParametersChanged{Parameters: p.Parameters()},
		ascii.FrameRateChanged{FrameRate: p.DesiredFrameRate},
		ascii.RecordingTypeChanged{RecordingType: p.RecordingType},
		ascii.GridCountsChanged{Cols: p.GridCellCountX, Rows: p.GridCellCountY},
	}
}

// Apply restores p into s. It must run on the render goroutine. p is
// validated first, so an invalid preset leaves s untouched; a missing
// font is reported before anything else changes.
//
// Grid counts are applied as an override when GridOverride is set or
// when they differ from the counts derived from the viewport.
func (p Preset) Apply(s *ascii.Session) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.Registry().Lookup(p.Font); err != nil {
		return fmt.Errorf("preset: %w", err)
	}

	var errs []error
	if p.Font != s.FontName() {
		errs = append(errs, s.SetFont(p.Font))
	}
	errs = append(errs,
		s.SetFontSize(p.FontSize),
		s.SetCharacters(p.CharacterSet),
		s.SetParameters(p.Parameters()),
		s.SetFrameRate(p.DesiredFrameRate),
		s.SetRecordingType(p.RecordingType),
	)

	g := s.Grid()
	if p.GridOverride || g.Cols() != p.GridCellCountX || g.Rows() != p.GridCellCountY {
		errs = append(errs, s.SetGridCounts(p.GridCellCountX, p.GridCellCountY))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("preset: apply: %w", err)
	}
	return nil
}
