// Package render turns atlas, grid and user parameters into the uniform
// set read by the ASCII shader stage.
//
// Bind is called once per frame after any pending session changes have
// been applied. It validates the color parameters, converts them to
// normalized RGB and packs everything into Uniforms. Uniforms.Bytes
// produces the std140 buffer matching the WGSL AsciiUniforms struct:
//
//	offset  field
//	     0  charset_cols           i32
//	     4  charset_rows           i32
//	     8  total_chars            i32
//	    12  character_color_mode   i32
//	    16  grid_offset            vec2<f32>
//	    24  grid_pixel_size        vec2<f32>
//	    32  grid_dimensions        vec2<i32>
//	    40  background_color_mode  i32
//	    44  invert_mode            i32
//	    48  character_color        vec3<f32>
//	    60  bypass                 i32
//	    64  background_color       vec3<f32>
//	    76  (padding)
//
// The atlas texture itself travels in Uniforms.CharacterTexture as an
// opaque handle; it is bound separately from the buffer.
//
// Software and Renderer evaluate the same per-fragment rules on the CPU,
// for previews and as a reference for the shader.
package render
