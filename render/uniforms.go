package render

import (
	"encoding/binary"
	"math"
)

// UniformSize is the byte size of the packed uniform buffer.
const UniformSize = 80

// Shader-facing uniform names.
const (
	NameCharacterTexture     = "u_characterTexture"
	NameCharsetCols          = "u_charsetCols"
	NameCharsetRows          = "u_charsetRows"
	NameTotalChars           = "u_totalChars"
	NameGridOffsetDimensions = "u_gridOffsetDimensions"
	NameGridPixelDimensions  = "u_gridPixelDimensions"
	NameGridDimensions       = "u_gridDimensions"
	NameCharacterColor       = "u_characterColor"
	NameCharacterColorMode   = "u_characterColorMode"
	NameBackgroundColor      = "u_backgroundColor"
	NameBackgroundColorMode  = "u_backgroundColorMode"
	NameInvertMode           = "u_invertMode"
)

// UniformNames lists every uniform in binding order.
var UniformNames = []string{
	NameCharacterTexture,
	NameCharsetCols,
	NameCharsetRows,
	NameTotalChars,
	NameGridOffsetDimensions,
	NameGridPixelDimensions,
	NameGridDimensions,
	NameCharacterColor,
	NameCharacterColorMode,
	NameBackgroundColor,
	NameBackgroundColorMode,
	NameInvertMode,
}

// Uniforms is the complete shader input for one frame.
type Uniforms struct {
	// CharacterTexture is the atlas texture handle. It is not part of Bytes.
	CharacterTexture any

	CharsetCols int32
	CharsetRows int32
	TotalChars  int32

	GridOffset     [2]float32
	GridPixelSize  [2]float32
	GridDimensions [2]int32

	CharacterColor      [3]float32
	CharacterColorMode  int32
	BackgroundColor     [3]float32
	BackgroundColorMode int32
	InvertMode          bool

	// Bypass is set when the grid is empty or the shader is inactive.
	Bypass bool
}

// Values returns the uniforms keyed by shader name.
func (u Uniforms) Values() map[string]any {
	return map[string]any{
		NameCharacterTexture:     u.CharacterTexture,
		NameCharsetCols:          u.CharsetCols,
		NameCharsetRows:          u.CharsetRows,
		NameTotalChars:           u.TotalChars,
		NameGridOffsetDimensions: u.GridOffset,
		NameGridPixelDimensions:  u.GridPixelSize,
		NameGridDimensions:       u.GridDimensions,
		NameCharacterColor:       u.CharacterColor,
		NameCharacterColorMode:   u.CharacterColorMode,
		NameBackgroundColor:      u.BackgroundColor,
		NameBackgroundColorMode:  u.BackgroundColorMode,
		NameInvertMode:           u.InvertMode,
	}
}

// Bytes packs u into a little-endian std140 buffer of UniformSize bytes.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformSize)
	le := binary.LittleEndian
	f32 := func(off int, v float32) { le.PutUint32(buf[off:off+4], math.Float32bits(v)) }
	i32 := func(off int, v int32) { le.PutUint32(buf[off:off+4], uint32(v)) }

	i32(0, u.CharsetCols)
	i32(4, u.CharsetRows)
	i32(8, u.TotalChars)
	i32(12, u.CharacterColorMode)
	f32(16, u.GridOffset[0])
	f32(20, u.GridOffset[1])
	f32(24, u.GridPixelSize[0])
	f32(28, u.GridPixelSize[1])
	i32(32, u.GridDimensions[0])
	i32(36, u.GridDimensions[1])
	i32(40, u.BackgroundColorMode)
	i32(44, boolInt(u.InvertMode))
	f32(48, u.CharacterColor[0])
	f32(52, u.CharacterColor[1])
	f32(56, u.CharacterColor[2])
	i32(60, boolInt(u.Bypass))
	f32(64, u.BackgroundColor[0])
	f32(68, u.BackgroundColor[1])
	f32(72, u.BackgroundColor[2])
	// Bytes 76..79 are padding.
	return buf
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
