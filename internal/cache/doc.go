// Package cache provides a small generic LRU cache with eviction hooks.
//
// The glyph package keeps one rasterization face per requested pixel size
// in a Cache so that atlas rebuilds at the reference size and layout
// queries at the on-screen size reuse parsed face state:
//
//	faces := cache.New[float64, font.Face](8)
//	faces.OnEvict(func(_ float64, f font.Face) { _ = f.Close() })
//	face, err := faces.GetOrCreate(512, newFace)
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
