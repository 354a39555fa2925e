// Package glyph loads fonts and exposes the per-glyph metrics the atlas
// builder needs.
//
// A Font enumerates every glyph reachable through the font's character
// map, reports each glyph's tight outline bounding box at any pixel size,
// and hands out x/image font.Face values for rasterization:
//
//	f, err := glyph.NewFontFromFile("UrsaFont.ttf")
//	if err != nil {
//	    return err
//	}
//	for _, g := range f.Glyphs() {
//	    box := f.Bounds(g, 16)
//	    _ = box.Width()
//	}
//
// Glyphs without a code point are not reported: they cannot be addressed
// by character and therefore never land in an atlas.
//
// A Registry maps user-facing font names to loaded fonts. It is safe for
// concurrent use so that fonts may be loaded off the render goroutine.
package glyph
