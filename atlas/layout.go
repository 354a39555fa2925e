package atlas

import (
	"image"
	"math"
)

// Dimensions is a cell size in whole pixels.
type Dimensions struct {
	Width  int
	Height int
}

// IsZero reports whether either side is zero or negative.
func (d Dimensions) IsZero() bool { return d.Width <= 0 || d.Height <= 0 }

// Layout is the square-ish cell arrangement of an atlas holding Count
// characters.
type Layout struct {
	Cols  int
	Rows  int
	Count int
}

// LayoutFor returns the layout for n characters: cols = ceil(sqrt(n)),
// rows = ceil(n/cols). n <= 0 yields the zero Layout.
func LayoutFor(n int) Layout {
	if n <= 0 {
		return Layout{}
	}

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	// Correct float rounding at perfect squares.
	for cols*cols < n {
		cols++
	}
	for cols > 1 && (cols-1)*(cols-1) >= n {
		cols--
	}

	return Layout{
		Cols:  cols,
		Rows:  (n + cols - 1) / cols,
		Count: n,
	}
}

// Slot returns the cell column and row of character index i.
func (l Layout) Slot(i int) (col, row int) {
	if l.Cols == 0 {
		return 0, 0
	}
	return i % l.Cols, i / l.Cols
}

// Cells returns the total number of cells, including blank ones.
func (l Layout) Cells() int { return l.Cols * l.Rows }

// Blank returns the number of trailing cells without a character.
func (l Layout) Blank() int { return l.Cells() - l.Count }

// Rect returns the pixel rectangle of slot i for the given cell size.
func (l Layout) Rect(i int, cell Dimensions) image.Rectangle {
	col, row := l.Slot(i)
	x, y := col*cell.Width, row*cell.Height
	return image.Rect(x, y, x+cell.Width, y+cell.Height)
}

// Size returns the pixel size of an atlas with this layout.
func (l Layout) Size(cell Dimensions) Dimensions {
	return Dimensions{Width: l.Cols * cell.Width, Height: l.Rows * cell.Height}
}
