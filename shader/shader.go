package shader

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// ASCIIWGSL is the WGSL source of the ASCII shader.
//
//go:embed shaders/ascii.wgsl
var ASCIIWGSL string

// Entry point names in ASCIIWGSL.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Binding indices in group 0.
const (
	BindingUniforms         = 0
	BindingSceneTexture     = 1
	BindingCharacterTexture = 2
	BindingSampler          = 3
)

// SPIR-V magic number, first word of every module.
const spirvMagic = 0x07230203

var (
	// ErrEmptySource is returned when compiling empty WGSL.
	ErrEmptySource = errors.New("shader: empty source")

	// ErrNilDevice is returned by CreateModule without a device.
	ErrNilDevice = errors.New("shader: nil device")
)

// CompileToSPIRV compiles WGSL source to SPIR-V words.
func CompileToSPIRV(src string) ([]uint32, error) {
	if src == "" {
		return nil, ErrEmptySource
	}

	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: compile: SPIR-V length %d is not word aligned", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if len(words) == 0 || words[0] != spirvMagic {
		return nil, errors.New("shader: compile: output is not SPIR-V")
	}
	return words, nil
}

// CompileASCII compiles ASCIIWGSL.
func CompileASCII() ([]uint32, error) {
	return CompileToSPIRV(ASCIIWGSL)
}

// CreateModule creates a HAL shader module from SPIR-V words.
func CreateModule(device hal.Device, label string, spirv []uint32) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shader: create module %q: %w", label, err)
	}
	return module, nil
}

// CreateWGSLModule creates a HAL shader module directly from WGSL,
// for backends that accept WGSL source.
func CreateWGSLModule(device hal.Device, label, src string) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: src},
	})
	if err != nil {
		return nil, fmt.Errorf("shader: create module %q: %w", label, err)
	}
	return module, nil
}
