package render

import (
	"image"
	"strings"
)

// Text renders scene as cols×rows lines of characters. Each cell takes
// the scene pixel under its center and picks a character with Slot.
// chars is ordered darkest first. invert reverses the character order;
// text has no glyph coverage to invert, so this differs from the
// shader's InvertMode.
//
// Text returns nil when scene is nil, chars is empty or the grid is
// empty.
func Text(scene image.Image, chars []rune, cols, rows int, invert bool) []string {
	if scene == nil || len(chars) == 0 || cols <= 0 || rows <= 0 {
		return nil
	}
	b := scene.Bounds()
	cw := float64(b.Dx()) / float64(cols)
	ch := float64(b.Dy()) / float64(rows)

	lines := make([]string, rows)
	var sb strings.Builder
	for row := range rows {
		sb.Reset()
		for col := range cols {
			c := sampleScene(scene, (float64(col)+0.5)*cw, (float64(row)+0.5)*ch)
			slot := Slot(Brightness(c), len(chars))
			if invert {
				slot = len(chars) - 1 - slot
			}
			sb.WriteRune(chars[slot])
		}
		lines[row] = sb.String()
	}
	return lines
}

// TextRows returns how many rows keep the scene's aspect ratio at cols
// columns when each character cell is cellWidth×cellHeight pixels.
// The result is at least 1 for a non-empty scene.
func TextRows(scene image.Rectangle, cols, cellWidth, cellHeight int) int {
	if scene.Empty() || cols <= 0 || cellWidth <= 0 || cellHeight <= 0 {
		return 0
	}
	rows := float64(cols) * float64(scene.Dy()) / float64(scene.Dx()) * float64(cellWidth) / float64(cellHeight)
	return max(1, int(rows+0.5))
}
