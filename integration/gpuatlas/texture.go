// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuatlas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Common errors returned by Texture operations.
var (
	// ErrClosed is returned when operations are attempted on a closed texture.
	ErrClosed = errors.New("gpuatlas: texture is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpuatlas: nil DeviceProvider")

	// ErrNilCreator is returned when a texture must be created without a creator.
	ErrNilCreator = errors.New("gpuatlas: nil TextureCreator")

	// ErrNoAtlas is returned when the source has no atlas image.
	ErrNoAtlas = errors.New("gpuatlas: source has no atlas image")

	// ErrNotDrawable is returned when the texture handle cannot be drawn.
	ErrNotDrawable = errors.New("gpuatlas: texture does not implement gpucontext.Texture")
)

// Source is an atlas that can be uploaded.
type Source interface {
	Image() *image.RGBA
	Generation() uint64
}

// textureDestroyer matches the Destroy method of host textures.
type textureDestroyer interface {
	Destroy()
}

// Texture owns the GPU copy of a character atlas.
type Texture struct {
	provider   gpucontext.DeviceProvider
	texture    any // current handle from the TextureCreator
	oldTexture any // previous handle awaiting destruction
	width      int
	height     int
	generation uint64
	synced     bool
	uploads    int
	creations  int
	closed     bool
}

// New creates an empty Texture. The GPU texture is created lazily by the
// first Sync.
func New(provider gpucontext.DeviceProvider) (*Texture, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Texture{provider: provider}, nil
}

// Format returns the pixel format of the uploaded data.
func (t *Texture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Sync uploads the atlas if its generation changed since the last call and
// returns the current texture handle.
func (t *Texture) Sync(src Source, creator gpucontext.TextureCreator) (any, error) {
	if t.closed {
		return nil, ErrClosed
	}
	img := src.Image()
	if img == nil {
		return nil, ErrNoAtlas
	}

	gen := src.Generation()
	if t.synced && gen == t.generation && t.texture != nil {
		return t.texture, nil
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	data := pixels(img)

	if t.texture != nil && w == t.width && h == t.height {
		if updater, ok := t.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(data); err != nil {
				return nil, fmt.Errorf("gpuatlas: texture update failed: %w", err)
			}
			t.generation, t.synced = gen, true
			t.uploads++
			slogger().Debug("gpuatlas: texture updated", "generation", gen, "width", w, "height", h)
			return t.texture, nil
		}
	}

	if creator == nil {
		return nil, ErrNilCreator
	}
	tex, err := creator.NewTextureFromRGBA(w, h, data)
	if err != nil {
		return nil, fmt.Errorf("gpuatlas: NewTextureFromRGBA failed: %w", err)
	}
	// Atlas pixels are premultiplied (white glyphs on transparent).
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	// The new texture's upload has completed, so the previous handle is
	// no longer read by the GPU.
	t.oldTexture = t.texture
	t.destroyOld()

	t.texture = tex
	t.width, t.height = w, h
	t.generation, t.synced = gen, true
	t.uploads++
	t.creations++
	slogger().Debug("gpuatlas: texture created", "generation", gen, "width", w, "height", h)
	return t.texture, nil
}

// Draw syncs the atlas and draws it at (x, y). It is meant for previewing
// the atlas in a window.
func (t *Texture) Draw(dc gpucontext.TextureDrawer, src Source, x, y float32) error {
	tex, err := t.Sync(src, dc.TextureCreator())
	if err != nil {
		return err
	}
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrNotDrawable
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// Handle returns the current texture handle without syncing.
// Returns nil before the first Sync.
func (t *Texture) Handle() any { return t.texture }

// Size returns the size of the current texture.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Generation returns the atlas generation of the last upload.
func (t *Texture) Generation() uint64 { return t.generation }

// Uploads returns the number of uploads so far, creations included.
func (t *Texture) Uploads() int { return t.uploads }

// Creations returns the number of textures created so far.
func (t *Texture) Creations() int { return t.creations }

// Provider returns the DeviceProvider, or nil after Close.
func (t *Texture) Provider() gpucontext.DeviceProvider {
	if t.closed {
		return nil
	}
	return t.provider
}

// Close destroys the texture. Close is idempotent.
func (t *Texture) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.destroyOld()
	if d, ok := t.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	t.texture = nil
	t.provider = nil
	return nil
}

func (t *Texture) destroyOld() {
	if d, ok := t.oldTexture.(textureDestroyer); ok {
		d.Destroy()
	}
	t.oldTexture = nil
}

// pixels returns img's pixels as tightly packed rows.
func pixels(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride == 4*w && len(img.Pix) == 4*w*h {
		return img.Pix
	}
	out := make([]byte, 0, 4*w*h)
	for y := 0; y < h; y++ {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		out = append(out, img.Pix[off:off+4*w]...)
	}
	return out
}
