// Package grid tiles a viewport with fixed-size glyph cells.
//
// A Grid derives how many whole cells fit in the viewport, the pixel
// footprint of those cells and the offset that centers the footprint:
//
//	cols    = floor(viewportWidth / cellWidth)
//	width   = cols * cellWidth
//	offsetX = floor((viewportWidth - width) / 2)
//
// Leftover pixels never form a partial cell; they only shift the grid.
// Offsets may be negative when an explicit cell count makes the grid
// larger than the viewport.
//
// A viewport smaller than one cell yields an empty grid (zero columns or
// rows). Consumers treat that as "draw the scene unchanged".
//
// Grid is NOT safe for concurrent use.
package grid
