// Package atlas builds glyph atlases for brightness-to-character shaders.
//
// A CharacterSet owns a font, a logical font size and an ordered list of
// characters. It rasterizes the characters into one RGBA texture made of
// uniform cells laid out in a square-ish grid:
//
//	cols = ceil(sqrt(N))
//	rows = ceil(N / cols)
//
// Slot i always lives in cell (i % cols, i / cols), so a shader can find
// any character from the column count alone, without an offset table.
//
// # Cell Size
//
// The cell size is the per-axis maximum of the tight bounding boxes of
// every code-pointed glyph in the font, not only the active characters.
// Growing the character set therefore never changes the cell size.
//
// Two sizes are tracked separately:
//
//   - the font size drives MaxGlyphDimensions, which a grid.Grid uses as
//     its on-screen cell size;
//   - the reference size (512 by default) is the resolution the atlas
//     texture is rasterized at, so changing the font size never resamples
//     the atlas.
//
// # Alignment
//
// AlignCenter centers each glyph's ink box inside its cell. AlignTopLeft
// puts every glyph on a shared baseline at the font's maximum ascent and
// clips anything that extends past the cell. One alignment applies to a
// whole build.
//
// # Thread Safety
//
// CharacterSet is NOT safe for concurrent use. It is owned by the render
// goroutine; see the ascii package for queuing changes from elsewhere.
package atlas
