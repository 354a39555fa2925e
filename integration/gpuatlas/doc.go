// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuatlas keeps a GPU texture in step with a character atlas.
//
// The data flow is:
//
//	atlas.CharacterSet (RGBA pixels) -> Texture.Sync -> GPU texture -> shader
//
// Sync compares the atlas generation with the last upload. A rebuild at
// the same pixel size updates the existing texture in place; a size
// change creates a new texture and destroys the old one only after the
// new one exists, so in-flight frames never sample a freed handle.
//
// The package only depends on gpucontext interfaces, so it works with any
// host that can create RGBA textures.
//
// Texture is NOT safe for concurrent use.
package gpuatlas
