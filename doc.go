// Package ascii renders a scene as a grid of glyphs whose character and
// color follow the brightness of the scene underneath.
//
// # Overview
//
// The work is split across sub-packages:
//
//   - glyph: font parsing, code point enumeration, glyph bounds
//   - atlas: the CharacterSet and its glyph atlas image
//   - grid: cell counts, centering and resize handling
//   - render: shader parameters and the packed uniform buffer
//   - shader: the WGSL post-process shader
//   - integration/gpuatlas: keeps a GPU texture in step with the atlas
//   - preset: saving and restoring settings as JSON or YAML
//
// A Session ties them together for one render target.
//
// # Quick Start
//
//	reg := glyph.NewRegistry()
//	_ = glyph.RegisterBuiltins(reg)
//
//	cfg := ascii.DefaultConfig()
//	cfg.ViewportWidth, cfg.ViewportHeight = 800, 600
//	s, err := ascii.NewSession(cfg, reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// On any goroutine:
//	s.Post(ascii.FontSizeChanged{Size: 12})
//
//	// Once per frame, on the render goroutine:
//	if err := s.Flush(); err != nil {
//	    log.Print(err)
//	}
//	u, err := s.Bind(texture)
//
// # Frame boundaries
//
// A Session's setters mutate the atlas and grid in place and must only be
// called from the render goroutine. Other goroutines (UI handlers, font
// loaders) Post events instead; Flush applies them in order between
// frames, so a frame never sees a half-updated atlas or grid.
package ascii
