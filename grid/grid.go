package grid

import "fmt"

// Grid is a cell grid centered in a viewport.
//
// A Grid is created once per render session and mutated in place on
// viewport resizes, cell size changes and explicit cell count overrides.
type Grid struct {
	cellWidth, cellHeight         int
	viewportWidth, viewportHeight int

	cols, rows       int
	width, height    int
	offsetX, offsetY int

	overridden bool
}

// New creates a grid of cellWidth×cellHeight cells filling a
// viewportWidth×viewportHeight viewport. Negative values are treated as
// zero.
func New(cellWidth, cellHeight, viewportWidth, viewportHeight int) *Grid {
	g := &Grid{
		cellWidth:      max(cellWidth, 0),
		cellHeight:     max(cellHeight, 0),
		viewportWidth:  max(viewportWidth, 0),
		viewportHeight: max(viewportHeight, 0),
	}
	g.derive()
	return g
}

// DeriveCellCounts returns how many whole cells fit in the viewport.
// A non-positive cell dimension yields zero on that axis.
func DeriveCellCounts(viewportWidth, viewportHeight, cellWidth, cellHeight int) (cols, rows int) {
	return fit(viewportWidth, cellWidth), fit(viewportHeight, cellHeight)
}

// ComputeOffset returns floor((viewport - grid) / 2) per axis. The result
// is negative when the grid is larger than the viewport.
func ComputeOffset(viewportWidth, viewportHeight, gridWidth, gridHeight int) (x, y int) {
	return floorHalf(viewportWidth - gridWidth), floorHalf(viewportHeight - gridHeight)
}

// Resize sets a new viewport size and re-derives the cell counts from the
// current cell size, dropping any explicit cell count override.
func (g *Grid) Resize(viewportWidth, viewportHeight int) {
	g.viewportWidth = max(viewportWidth, 0)
	g.viewportHeight = max(viewportHeight, 0)
	g.derive()
}

// SetCellCounts overrides the cell counts. The cell size is unchanged;
// the pixel footprint and offset follow the new counts. The override
// lasts until the next Resize or SetCellDimensions.
func (g *Grid) SetCellCounts(cols, rows int) error {
	if cols < 0 || rows < 0 {
		return fmt.Errorf("%w: %dx%d", ErrNegativeCellCount, cols, rows)
	}
	g.cols, g.rows = cols, rows
	g.overridden = true
	g.layout()
	return nil
}

// SetCellDimensions changes the cell size and re-derives the cell counts
// from the viewport. A cell size change always wins over an explicit
// cell count override.
func (g *Grid) SetCellDimensions(cellWidth, cellHeight int) error {
	if cellWidth < 0 || cellHeight < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCellSize, cellWidth, cellHeight)
	}
	g.cellWidth, g.cellHeight = cellWidth, cellHeight
	g.derive()
	return nil
}

// derive recomputes counts from the viewport and cell size.
func (g *Grid) derive() {
	g.cols, g.rows = DeriveCellCounts(g.viewportWidth, g.viewportHeight, g.cellWidth, g.cellHeight)
	g.overridden = false
	g.layout()
}

// layout recomputes the pixel footprint and centering offset.
func (g *Grid) layout() {
	g.width = g.cols * g.cellWidth
	g.height = g.rows * g.cellHeight
	g.offsetX, g.offsetY = ComputeOffset(g.viewportWidth, g.viewportHeight, g.width, g.height)

	slogger().Debug("grid: layout",
		"cols", g.cols, "rows", g.rows,
		"width", g.width, "height", g.height,
		"offset_x", g.offsetX, "offset_y", g.offsetY,
		"overridden", g.overridden)
}

// CellSize returns the cell width and height in pixels.
func (g *Grid) CellSize() (width, height int) { return g.cellWidth, g.cellHeight }

// Viewport returns the viewport size in pixels.
func (g *Grid) Viewport() (width, height int) { return g.viewportWidth, g.viewportHeight }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// PixelSize returns the grid's pixel footprint.
func (g *Grid) PixelSize() (width, height int) { return g.width, g.height }

// Offset returns the pixel offset of the grid's top-left corner.
func (g *Grid) Offset() (x, y int) { return g.offsetX, g.offsetY }

// IsEmpty reports whether the grid has no cells.
func (g *Grid) IsEmpty() bool { return g.cols == 0 || g.rows == 0 }

// Overridden reports whether the counts come from SetCellCounts.
func (g *Grid) Overridden() bool { return g.overridden }

// Snapshot returns a copy of the grid state.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		CellWidth:      g.cellWidth,
		CellHeight:     g.cellHeight,
		ViewportWidth:  g.viewportWidth,
		ViewportHeight: g.viewportHeight,
		Cols:           g.cols,
		Rows:           g.rows,
		Width:          g.width,
		Height:         g.height,
		OffsetX:        g.offsetX,
		OffsetY:        g.offsetY,
		Overridden:     g.overridden,
	}
}

// Snapshot is a value copy of a Grid's state.
type Snapshot struct {
	CellWidth, CellHeight         int
	ViewportWidth, ViewportHeight int
	Cols, Rows                    int
	Width, Height                 int
	OffsetX, OffsetY              int
	Overridden                    bool
}

// fit returns floor(length / cell) for non-negative results.
func fit(length, cell int) int {
	if cell <= 0 || length <= 0 {
		return 0
	}
	return length / cell
}

// floorHalf returns floor(v / 2), rounding toward negative infinity.
func floorHalf(v int) int {
	if v >= 0 {
		return v / 2
	}
	return -((-v + 1) / 2)
}
