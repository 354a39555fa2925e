package ascii

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/ascii/atlas"
	"github.com/gogpu/ascii/glyph"
	"github.com/gogpu/ascii/grid"
	"github.com/gogpu/ascii/render"
)

// Session holds the character set, grid and shader parameters of one
// render target.
//
// Setters must be called from the render goroutine. Post is safe for
// concurrent use; posted events are applied by Flush.
type Session struct {
	registry *glyph.Registry

	fontName      string
	charset       *atlas.CharacterSet
	grid          *grid.Grid
	params        render.Parameters
	frameRate     int
	recordingType string

	mu    sync.Mutex // guards queue
	queue []Event
}

// NewSession validates cfg, builds the atlas and lays out the grid.
func NewSession(cfg Config, registry *glyph.Registry) (*Session, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := registry.Lookup(cfg.Font)
	if err != nil {
		return nil, fmt.Errorf("ascii: %w", err)
	}
	cs, err := atlas.New(f, cfg.Characters,
		atlas.WithFontSize(cfg.FontSize),
		atlas.WithAlignment(cfg.Alignment),
	)
	if err != nil {
		return nil, fmt.Errorf("ascii: %w", err)
	}

	cell := cs.MaxGlyphDimensions()
	s := &Session{
		registry:      registry,
		fontName:      cfg.Font,
		charset:       cs,
		grid:          grid.New(cell.Width, cell.Height, cfg.ViewportWidth, cfg.ViewportHeight),
		params:        cfg.Parameters,
		frameRate:     cfg.FrameRate,
		recordingType: cfg.RecordingType,
	}
	if cfg.GridCols > 0 || cfg.GridRows > 0 {
		// A zero axis keeps its derived count.
		cols, rows := cfg.GridCols, cfg.GridRows
		if cols == 0 {
			cols = s.grid.Cols()
		}
		if rows == 0 {
			rows = s.grid.Rows()
		}
		if err := s.grid.SetCellCounts(cols, rows); err != nil {
			return nil, fmt.Errorf("ascii: %w", err)
		}
	}

	Logger().Info("ascii: session created",
		"font", s.fontName,
		"characters", cs.Len(),
		"cols", s.grid.Cols(),
		"rows", s.grid.Rows())
	return s, nil
}

// SetFont switches to the registered font name and rebuilds the atlas.
// The grid follows the new cell size, dropping any cell count override.
func (s *Session) SetFont(name string) error {
	f, err := s.registry.Lookup(name)
	if err != nil {
		return fmt.Errorf("ascii: %w", err)
	}
	if err := s.charset.SetFont(f); err != nil {
		return fmt.Errorf("ascii: set font %q: %w", name, err)
	}
	s.fontName = name
	Logger().Info("ascii: font changed", "font", name)
	return s.syncCellSize()
}

// SetFontSize changes the cell size. The atlas is not rebuilt.
func (s *Session) SetFontSize(size int) error {
	if err := s.charset.SetFontSize(size); err != nil {
		return err
	}
	return s.syncCellSize()
}

// SetCharacters replaces the character set and rebuilds the atlas.
func (s *Session) SetCharacters(characters string) error {
	return s.charset.SetCharacters(characters)
}

// SetGridCounts overrides the grid cell counts.
func (s *Session) SetGridCounts(cols, rows int) error {
	return s.grid.SetCellCounts(cols, rows)
}

// Resize reports a new viewport size. Cell counts are re-derived.
func (s *Session) Resize(width, height int) {
	s.grid.Resize(width, height)
}

// SetParameters replaces the shader parameters after validating them.
func (s *Session) SetParameters(p render.Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.params = p
	return nil
}

// SetFrameRate changes the desired frame rate.
func (s *Session) SetFrameRate(fps int) error {
	if err := validateFrameRate(fps); err != nil {
		return err
	}
	s.frameRate = fps
	return nil
}

// SetRecordingType changes the capture format.
func (s *Session) SetRecordingType(t string) error {
	if err := validateRecordingType(t); err != nil {
		return err
	}
	s.recordingType = t
	return nil
}

// syncCellSize pushes the character set's cell size into the grid.
func (s *Session) syncCellSize() error {
	cell := s.charset.MaxGlyphDimensions()
	return s.grid.SetCellDimensions(cell.Width, cell.Height)
}

// Post queues e for the next Flush. Post is safe for concurrent use.
func (s *Session) Post(e Event) {
	s.mu.Lock()
	s.queue = append(s.queue, e)
	s.mu.Unlock()
}

// Pending returns the number of queued events.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Flush applies queued events in posting order. A failing event is
// skipped and the remaining events still apply; all failures are
// returned joined.
func (s *Session) Flush() error {
	s.mu.Lock()
	events := s.queue
	s.queue = nil
	s.mu.Unlock()

	if len(events) == 0 {
		return nil
	}

	var errs []error
	for _, e := range events {
		if e == nil {
			errs = append(errs, ErrUnknownEvent)
			continue
		}
		if err := e.apply(s); err != nil {
			Logger().Warn("ascii: event rejected", "event", e.kind(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", e.kind(), err))
		}
	}
	Logger().Debug("ascii: events applied", "count", len(events), "failed", len(errs))
	return errors.Join(errs...)
}

// Bind returns this frame's shader uniforms with texture as the atlas
// handle.
func (s *Session) Bind(texture any) (render.Uniforms, error) {
	return render.Bind(s.charset, s.grid, s.params, texture)
}

// FontName returns the registry name of the current font.
func (s *Session) FontName() string { return s.fontName }

// CharacterSet returns the character set. Mutate it through the Session.
func (s *Session) CharacterSet() *atlas.CharacterSet { return s.charset }

// Grid returns the grid. Mutate it through the Session.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Parameters returns the shader parameters.
func (s *Session) Parameters() render.Parameters { return s.params }

// FrameRate returns the desired frame rate.
func (s *Session) FrameRate() int { return s.frameRate }

// RecordingType returns the capture format.
func (s *Session) RecordingType() string { return s.recordingType }

// Registry returns the font registry.
func (s *Session) Registry() *glyph.Registry { return s.registry }
