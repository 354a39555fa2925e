// Package shader holds the ASCII post-process shader and the glue that
// compiles it for the GPU backend.
//
// The WGSL source is embedded as ASCIIWGSL. Its uniform buffer layout is
// produced by render.Uniforms.Bytes; bindings are:
//
//	@group(0) @binding(0)  uniform AsciiUniforms
//	@group(0) @binding(1)  scene texture
//	@group(0) @binding(2)  character atlas texture
//	@group(0) @binding(3)  atlas sampler
package shader
