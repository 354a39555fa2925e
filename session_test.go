package ascii

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ascii/atlas"
	"github.com/gogpu/ascii/glyph"
	"github.com/gogpu/ascii/grid"
	"github.com/gogpu/ascii/render"
)

func newRegistry(t *testing.T) *glyph.Registry {
	t.Helper()
	r := glyph.NewRegistry()
	if err := glyph.RegisterBuiltins(r); err != nil {
		t.Fatalf("RegisterBuiltins() error = %v", err)
	}
	return r
}

func newSession(t *testing.T) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ViewportWidth, cfg.ViewportHeight = 800, 600
	s, err := NewSession(cfg, newRegistry(t))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// assertCellsFollowFont checks that the grid uses the character set's cell size.
func assertCellsFollowFont(t *testing.T, s *Session) {
	t.Helper()
	cell := s.CharacterSet().MaxGlyphDimensions()
	cw, ch := s.Grid().CellSize()
	if cw != cell.Width || ch != cell.Height {
		t.Errorf("grid cell = %dx%d, want %dx%d", cw, ch, cell.Width, cell.Height)
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := newSession(t)

	if s.FontName() != glyph.DefaultFontName {
		t.Errorf("FontName() = %q", s.FontName())
	}
	cs := s.CharacterSet()
	if cs.Len() != 10 || cs.Cols() != 4 || cs.Rows() != 3 {
		t.Errorf("charset = %d chars in %dx%d, want 10 in 4x3", cs.Len(), cs.Cols(), cs.Rows())
	}
	if cs.FontSize() != 8 {
		t.Errorf("FontSize() = %d, want 8", cs.FontSize())
	}
	assertCellsFollowFont(t, s)

	cw, ch := s.Grid().CellSize()
	if s.Grid().Cols() != 800/cw || s.Grid().Rows() != 600/ch {
		t.Errorf("grid = %dx%d for cell %dx%d", s.Grid().Cols(), s.Grid().Rows(), cw, ch)
	}
	if s.FrameRate() != 60 || s.RecordingType() != "webm" {
		t.Errorf("frame rate %d, recording %q", s.FrameRate(), s.RecordingType())
	}
	if s.Parameters() != render.DefaultParameters() {
		t.Errorf("Parameters() = %+v", s.Parameters())
	}
}

func TestNewSessionErrors(t *testing.T) {
	if _, err := NewSession(DefaultConfig(), nil); !errors.Is(err, ErrNilRegistry) {
		t.Errorf("nil registry error = %v", err)
	}

	cfg := DefaultConfig()
	cfg.Font = "UrsaFont"
	if _, err := NewSession(cfg, newRegistry(t)); !errors.Is(err, glyph.ErrFontNotFound) {
		t.Errorf("missing font error = %v, want ErrFontNotFound", err)
	}

	cfg = DefaultConfig()
	cfg.Characters = ""
	cfg.FontSize = 0
	cfg.FrameRate = 120
	cfg.Parameters.CharacterColor = "white"
	_, err := NewSession(cfg, newRegistry(t))
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
	for _, field := range []string{"Characters", "FontSize", "FrameRate"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
	if !errors.Is(err, render.ErrInvalidColor) {
		t.Errorf("error = %v, want ErrInvalidColor among causes", err)
	}
}

func TestNewSessionGridOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ViewportWidth, cfg.ViewportHeight = 800, 600
	cfg.GridCols, cfg.GridRows = 20, 10
	s, err := NewSession(cfg, newRegistry(t))
	if err != nil {
		t.Fatal(err)
	}
	g := s.Grid()
	if g.Cols() != 20 || g.Rows() != 10 || !g.Overridden() {
		t.Errorf("grid = %dx%d overridden=%v, want 20x10 overridden", g.Cols(), g.Rows(), g.Overridden())
	}
}

func TestNewSessionSingleAxisOverride(t *testing.T) {
	cell := newSession(t).CharacterSet().MaxGlyphDimensions()
	derivedCols, derivedRows := grid.DeriveCellCounts(800, 600, cell.Width, cell.Height)

	tests := []struct {
		name       string
		cols, rows int
		wantCols   int
		wantRows   int
	}{
		{"cols only", 20, 0, 20, derivedRows},
		{"rows only", 0, 9, derivedCols, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ViewportWidth, cfg.ViewportHeight = 800, 600
			cfg.GridCols, cfg.GridRows = tt.cols, tt.rows
			s, err := NewSession(cfg, newRegistry(t))
			if err != nil {
				t.Fatal(err)
			}
			g := s.Grid()
			if g.Cols() != tt.wantCols || g.Rows() != tt.wantRows {
				t.Errorf("grid = %dx%d, want %dx%d", g.Cols(), g.Rows(), tt.wantCols, tt.wantRows)
			}
			if g.IsEmpty() || !g.Overridden() {
				t.Errorf("empty=%v overridden=%v, want a non-empty override", g.IsEmpty(), g.Overridden())
			}
		})
	}
}

func TestSetFontSizeUpdatesGrid(t *testing.T) {
	s := newSession(t)
	gen := s.CharacterSet().Generation()
	cw, _ := s.Grid().CellSize()

	if err := s.SetGridCounts(5, 5); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFontSize(16); err != nil {
		t.Fatalf("SetFontSize() error = %v", err)
	}

	assertCellsFollowFont(t, s)
	if s.Grid().Overridden() {
		t.Error("font size change should drop the cell count override")
	}
	if ncw, _ := s.Grid().CellSize(); ncw <= cw {
		t.Errorf("cell width %d did not grow from %d", ncw, cw)
	}
	if s.CharacterSet().Generation() != gen {
		t.Error("font size change rebuilt the atlas")
	}
	if err := s.SetFontSize(0); !errors.Is(err, atlas.ErrInvalidFontSize) {
		t.Errorf("SetFontSize(0) error = %v", err)
	}
}

func TestSetFont(t *testing.T) {
	s := newSession(t)
	gen := s.CharacterSet().Generation()

	if err := s.SetFont(glyph.GoRegular); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	if s.FontName() != glyph.GoRegular {
		t.Errorf("FontName() = %q", s.FontName())
	}
	if s.CharacterSet().Generation() == gen {
		t.Error("font change did not rebuild the atlas")
	}
	assertCellsFollowFont(t, s)

	if err := s.SetFont("missing"); !errors.Is(err, glyph.ErrFontNotFound) {
		t.Errorf("SetFont(missing) error = %v", err)
	}
	if s.FontName() != glyph.GoRegular {
		t.Error("failed SetFont changed the font name")
	}
}

func TestFlushAppliesInOrder(t *testing.T) {
	s := newSession(t)

	s.Post(FontSizeChanged{Size: 16})
	s.Post(GridCountsChanged{Cols: 10, Rows: 5})
	if s.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", s.Pending())
	}
	if s.CharacterSet().FontSize() != 8 {
		t.Fatal("Post applied an event before Flush")
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if g := s.Grid(); g.Cols() != 10 || g.Rows() != 5 || !g.Overridden() {
		t.Errorf("grid = %dx%d overridden=%v, want 10x5 overridden", g.Cols(), g.Rows(), g.Overridden())
	}

	// The cell size change comes last and wins over the override.
	s.Post(GridCountsChanged{Cols: 3, Rows: 3})
	s.Post(FontSizeChanged{Size: 12})
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if s.Grid().Overridden() {
		t.Error("override survived a later font size change")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after Flush", s.Pending())
	}
}

func TestFlushJoinsErrors(t *testing.T) {
	s := newSession(t)

	s.Post(FontChanged{Name: "missing"})
	s.Post(CharactersChanged{Characters: ""})
	s.Post(FontSizeChanged{Size: 12})
	s.Post(nil)

	err := s.Flush()
	if !errors.Is(err, glyph.ErrFontNotFound) {
		t.Errorf("error = %v, want ErrFontNotFound", err)
	}
	if !errors.Is(err, atlas.ErrEmptyCharacterSet) {
		t.Errorf("error = %v, want ErrEmptyCharacterSet", err)
	}
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("error = %v, want ErrUnknownEvent", err)
	}
	if s.CharacterSet().FontSize() != 12 {
		t.Error("valid event after failures was not applied")
	}
	if s.CharacterSet().Len() != 10 {
		t.Error("rejected character change altered the set")
	}
}

func TestPostConcurrent(t *testing.T) {
	s := newSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Post(ViewportResized{Width: 400 + i, Height: 300})
		}(i)
	}
	wg.Wait()

	if s.Pending() != 50 {
		t.Fatalf("Pending() = %d, want 50", s.Pending())
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if _, h := s.Grid().Viewport(); h != 300 {
		t.Errorf("viewport height = %d, want 300", h)
	}
}

func TestFontLoadedEvent(t *testing.T) {
	s := newSession(t)
	f, err := glyph.NewFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	s.Post(FontLoaded{Name: "Uploaded", Font: f})
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if s.FontName() != "Uploaded" {
		t.Errorf("FontName() = %q", s.FontName())
	}
	if got, err := s.Registry().Lookup("Uploaded"); err != nil || got != f {
		t.Errorf("registry Lookup = %v, %v", got, err)
	}

	s.Post(FontLoaded{Name: "Nothing"})
	if err := s.Flush(); !errors.Is(err, ErrNilFont) {
		t.Errorf("error = %v, want ErrNilFont", err)
	}
}

func TestParametersFrameRateRecording(t *testing.T) {
	s := newSession(t)

	p := render.DefaultParameters()
	p.Invert = true
	p.CharacterColorMode = render.ColorFixed
	s.Post(ParametersChanged{Parameters: p})
	s.Post(FrameRateChanged{FrameRate: 30})
	s.Post(RecordingTypeChanged{RecordingType: "gif"})
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if s.Parameters() != p || s.FrameRate() != 30 || s.RecordingType() != "gif" {
		t.Errorf("state = %+v, %d, %q", s.Parameters(), s.FrameRate(), s.RecordingType())
	}

	bad := p
	bad.BackgroundColor = "#12345"
	if err := s.SetParameters(bad); !errors.Is(err, render.ErrInvalidColor) {
		t.Errorf("SetParameters error = %v", err)
	}
	if s.Parameters() != p {
		t.Error("rejected parameters were stored")
	}
	if err := s.SetFrameRate(0); err == nil {
		t.Error("SetFrameRate(0) should fail")
	}
	if err := s.SetRecordingType("mov"); err == nil {
		t.Error("SetRecordingType(mov) should fail")
	}
}

func TestBind(t *testing.T) {
	s := newSession(t)
	tex := "atlas-handle"

	u, err := s.Bind(tex)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if u.CharacterTexture != tex || u.TotalChars != 10 || u.CharsetCols != 4 || u.CharsetRows != 3 {
		t.Errorf("uniforms = %+v", u)
	}
	g := s.Grid()
	if u.GridDimensions != [2]int32{int32(g.Cols()), int32(g.Rows())} {
		t.Errorf("GridDimensions = %v", u.GridDimensions)
	}
	if u.Bypass {
		t.Error("Bypass set for a populated grid")
	}

	s.Resize(1, 1)
	if u, _ = s.Bind(tex); !u.Bypass {
		t.Error("Bypass not set for an empty grid")
	}
}

func TestSetLoggerPropagates(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_ = newSession(t)

	out := buf.String()
	for _, want := range []string{"atlas: rebuilt", "grid: layout", "ascii: session created"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}

	SetLogger(nil)
	buf.Reset()
	_ = newSession(t)
	if buf.Len() != 0 {
		t.Errorf("nil logger still wrote %d bytes", buf.Len())
	}
}
