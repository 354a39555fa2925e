package render

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/ascii/internal/parallel"
)

// ErrNilImage is returned by Software when an image is missing.
var ErrNilImage = errors.New("render: nil image")

// Software applies the ASCII effect on the CPU with the same per-pixel
// rules as the shader. It is a reference for tests and offline previews.
//
// dst covers the viewport; scene is sampled with its bounds clamped to
// dst's size. atlas is the character atlas the uniforms were bound
// against.
func Software(dst *image.RGBA, scene, atlas image.Image, u Uniforms) error {
	if dst == nil || scene == nil || atlas == nil {
		return ErrNilImage
	}
	b := dst.Bounds()
	shadeRows(dst, scene, atlas, u, parallel.Band{Y0: b.Min.Y, Y1: b.Max.Y})
	return nil
}

// minBandRows is the smallest band worth handing to a worker.
const minBandRows = 16

// Renderer runs Software over row bands on a worker pool. Output is
// identical to Software.
type Renderer struct {
	pool *parallel.WorkerPool
}

// NewRenderer starts a Renderer with the given number of workers.
// A non-positive count means GOMAXPROCS.
func NewRenderer(workers int) *Renderer {
	return &Renderer{pool: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of pool workers.
func (r *Renderer) Workers() int { return r.pool.Workers() }

// Render shades dst like Software, one band per work item.
func (r *Renderer) Render(dst *image.RGBA, scene, atlas image.Image, u Uniforms) error {
	if dst == nil || scene == nil || atlas == nil {
		return ErrNilImage
	}
	b := dst.Bounds()
	parts := min(r.pool.Workers()*2, max(1, b.Dy()/minBandRows))
	bands := parallel.SplitRows(b.Min.Y, b.Max.Y, parts)

	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() { shadeRows(dst, scene, atlas, u, band) }
	}
	r.pool.ExecuteAll(work)
	return nil
}

// Close stops the workers.
func (r *Renderer) Close() { r.pool.Close() }

// shadeRows writes every fragment of dst in band. Bands touch disjoint
// rows of dst and only read scene and atlas.
func shadeRows(dst *image.RGBA, scene, atlas image.Image, u Uniforms, band parallel.Band) {
	b := dst.Bounds()
	for y := band.Y0; y < band.Y1; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Fragment positions are pixel centers.
			px, py := float64(x-b.Min.X)+0.5, float64(y-b.Min.Y)+0.5
			dst.SetRGBA(x, y, shade(scene, atlas, u, px, py))
		}
	}
}

// shade returns the output color of the fragment at (px, py).
func shade(scene, atlas image.Image, u Uniforms, px, py float64) color.RGBA {
	if u.Bypass {
		return toRGBA(sampleScene(scene, px, py))
	}

	lx := px - float64(u.GridOffset[0])
	ly := py - float64(u.GridOffset[1])
	gw, gh := float64(u.GridPixelSize[0]), float64(u.GridPixelSize[1])
	if lx < 0 || ly < 0 || lx >= gw || ly >= gh || u.GridDimensions[0] <= 0 || u.GridDimensions[1] <= 0 {
		return toRGBA(u.BackgroundColor)
	}

	cw := gw / float64(u.GridDimensions[0])
	ch := gh / float64(u.GridDimensions[1])
	col, row := math.Floor(lx/cw), math.Floor(ly/ch)
	sample := sampleScene(scene,
		float64(u.GridOffset[0])+(col+0.5)*cw,
		float64(u.GridOffset[1])+(row+0.5)*ch)

	coverage := glyphCoverage(atlas, u, sample, lx/cw-col, ly/ch-row)
	if u.InvertMode {
		coverage = 1 - coverage
	}

	fg := u.CharacterColor
	if ColorMode(u.CharacterColorMode) == ColorSampled {
		fg = sample
	}
	bg := u.BackgroundColor
	if ColorMode(u.BackgroundColorMode) == ColorSampled {
		bg = sample
	}
	var out [3]float32
	for i := range out {
		out[i] = bg[i] + (fg[i]-bg[i])*float32(coverage)
	}
	return toRGBA(out)
}

const slotEpsilon = 1e-5

// Slot returns the character slot for a brightness in [0, 1].
func Slot(brightness float64, totalChars int) int {
	if totalChars <= 0 {
		return 0
	}
	// The epsilon keeps full white on the last slot despite rounding in
	// the brightness weights.
	s := int(math.Floor(brightness*float64(totalChars-1) + slotEpsilon))
	return max(0, min(totalChars-1, s))
}

// Brightness returns the perceived brightness of c.
func Brightness(c [3]float32) float64 {
	return 0.299*float64(c[0]) + 0.587*float64(c[1]) + 0.114*float64(c[2])
}

// glyphCoverage returns the atlas alpha for the slot chosen by sample at
// fractional cell position (fx, fy).
func glyphCoverage(atlas image.Image, u Uniforms, sample [3]float32, fx, fy float64) float64 {
	cols, rows := int(u.CharsetCols), int(u.CharsetRows)
	if cols <= 0 || rows <= 0 {
		return 0
	}
	slot := Slot(Brightness(sample), int(u.TotalChars))
	sx, sy := float64(slot%cols), float64(slot/cols)

	ab := atlas.Bounds()
	ax := int(math.Floor((sx + fx) / float64(cols) * float64(ab.Dx())))
	ay := int(math.Floor((sy + fy) / float64(rows) * float64(ab.Dy())))
	ax = max(0, min(ab.Dx()-1, ax))
	ay = max(0, min(ab.Dy()-1, ay))

	_, _, _, a := atlas.At(ab.Min.X+ax, ab.Min.Y+ay).RGBA()
	return float64(a) / 0xffff
}

// sampleScene reads the scene pixel under (px, py), clamped to bounds.
func sampleScene(scene image.Image, px, py float64) [3]float32 {
	b := scene.Bounds()
	x := max(b.Min.X, min(b.Max.X-1, b.Min.X+int(math.Floor(px))))
	y := max(b.Min.Y, min(b.Max.Y-1, b.Min.Y+int(math.Floor(py))))
	r, g, bl, _ := scene.At(x, y).RGBA()
	return [3]float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(bl) / 0xffff}
}

func toRGBA(c [3]float32) color.RGBA {
	return color.RGBA{R: to255(c[0]), G: to255(c[1]), B: to255(c[2]), A: 255}
}
