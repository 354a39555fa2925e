package render

import (
	"fmt"

	"github.com/gogpu/ascii/grid"
)

// AtlasState is the atlas data Bind reads.
type AtlasState interface {
	Cols() int
	Rows() int
	Len() int
}

// GridState is the grid data Bind reads.
type GridState interface {
	Snapshot() grid.Snapshot
}

// Bind assembles the uniforms for one frame. Invalid colors or modes are
// returned as errors and no uniforms are produced.
func Bind(atlas AtlasState, g GridState, p Parameters, texture any) (Uniforms, error) {
	if atlas == nil {
		return Uniforms{}, ErrNilAtlas
	}
	if g == nil {
		return Uniforms{}, ErrNilGrid
	}

	char, bg, err := p.colors()
	if err != nil {
		return Uniforms{}, fmt.Errorf("render: bind: %w", err)
	}

	s := g.Snapshot()
	empty := s.Cols == 0 || s.Rows == 0
	return Uniforms{
		CharacterTexture:    texture,
		CharsetCols:         int32(atlas.Cols()),
		CharsetRows:         int32(atlas.Rows()),
		TotalChars:          int32(atlas.Len()),
		GridOffset:          [2]float32{float32(s.OffsetX), float32(s.OffsetY)},
		GridPixelSize:       [2]float32{float32(s.Width), float32(s.Height)},
		GridDimensions:      [2]int32{int32(s.Cols), int32(s.Rows)},
		CharacterColor:      char.Array(),
		CharacterColorMode:  int32(p.CharacterColorMode),
		BackgroundColor:     bg.Array(),
		BackgroundColorMode: int32(p.BackgroundColorMode),
		InvertMode:          p.Invert,
		Bypass:              empty || !p.ShaderActive,
	}, nil
}
