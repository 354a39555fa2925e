package grid

import (
	"errors"
	"testing"
)

func TestNewCentersGrid(t *testing.T) {
	g := New(10, 18, 800, 600)

	if g.Cols() != 80 || g.Rows() != 33 {
		t.Fatalf("counts = %dx%d, want 80x33", g.Cols(), g.Rows())
	}
	if w, h := g.PixelSize(); w != 800 || h != 594 {
		t.Errorf("PixelSize() = %dx%d, want 800x594", w, h)
	}
	if x, y := g.Offset(); x != 0 || y != 3 {
		t.Errorf("Offset() = (%d,%d), want (0,3)", x, y)
	}
	if g.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

func TestViewportSmallerThanCell(t *testing.T) {
	g := New(10, 10, 5, 5)

	if g.Cols() != 0 || g.Rows() != 0 {
		t.Fatalf("counts = %dx%d, want 0x0", g.Cols(), g.Rows())
	}
	if !g.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if w, h := g.PixelSize(); w != 0 || h != 0 {
		t.Errorf("PixelSize() = %dx%d, want 0x0", w, h)
	}
	if x, y := g.Offset(); x != 2 || y != 2 {
		t.Errorf("Offset() = (%d,%d), want (2,2)", x, y)
	}
}

func TestDeriveCellCounts(t *testing.T) {
	tests := []struct {
		name           string
		vw, vh, cw, ch int
		cols, rows     int
	}{
		{"exact", 100, 50, 10, 10, 10, 5},
		{"remainder", 105, 59, 10, 10, 10, 5},
		{"zero cell", 100, 100, 0, 10, 0, 10},
		{"negative viewport", -10, 100, 10, 10, 0, 10},
		{"zero viewport", 0, 0, 8, 8, 0, 0},
		{"one cell", 8, 16, 8, 16, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := DeriveCellCounts(tt.vw, tt.vh, tt.cw, tt.ch)
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("DeriveCellCounts(%d,%d,%d,%d) = %dx%d, want %dx%d",
					tt.vw, tt.vh, tt.cw, tt.ch, cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestComputeOffset(t *testing.T) {
	tests := []struct {
		vw, vh, gw, gh int
		x, y           int
	}{
		{800, 600, 800, 594, 0, 3},
		{801, 600, 800, 597, 0, 1},
		{800, 600, 810, 600, -5, 0},
		{800, 600, 801, 603, -1, -2},
		{0, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		x, y := ComputeOffset(tt.vw, tt.vh, tt.gw, tt.gh)
		if x != tt.x || y != tt.y {
			t.Errorf("ComputeOffset(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				tt.vw, tt.vh, tt.gw, tt.gh, x, y, tt.x, tt.y)
		}
	}
}

func TestGridProperties(t *testing.T) {
	for cw := 1; cw <= 23; cw += 3 {
		for ch := 1; ch <= 31; ch += 5 {
			for vw := 0; vw <= 400; vw += 37 {
				for vh := 0; vh <= 300; vh += 29 {
					g := New(cw, ch, vw, vh)
					s := g.Snapshot()

					if s.Width > vw || s.Height > vh {
						t.Fatalf("cell %dx%d viewport %dx%d: grid %dx%d exceeds viewport",
							cw, ch, vw, vh, s.Width, s.Height)
					}
					if vw-s.Width >= cw || vh-s.Height >= ch {
						t.Fatalf("cell %dx%d viewport %dx%d: a whole cell is left unused",
							cw, ch, vw, vh)
					}
					if s.OffsetX < 0 || s.OffsetY < 0 {
						t.Fatalf("cell %dx%d viewport %dx%d: negative offset (%d,%d)",
							cw, ch, vw, vh, s.OffsetX, s.OffsetY)
					}
					if d := vw - s.Width - 2*s.OffsetX; d != 0 && d != 1 {
						t.Fatalf("cell %dx%d viewport %dx%d: not centered horizontally", cw, ch, vw, vh)
					}
					if d := vh - s.Height - 2*s.OffsetY; d != 0 && d != 1 {
						t.Fatalf("cell %dx%d viewport %dx%d: not centered vertically", cw, ch, vw, vh)
					}
				}
			}
		}
	}
}

func TestSetCellCountsOverride(t *testing.T) {
	g := New(10, 10, 100, 100)

	if err := g.SetCellCounts(12, 4); err != nil {
		t.Fatalf("SetCellCounts: %v", err)
	}
	if g.Cols() != 12 || g.Rows() != 4 || !g.Overridden() {
		t.Fatalf("counts = %dx%d overridden=%v, want 12x4 overridden", g.Cols(), g.Rows(), g.Overridden())
	}
	if w, h := g.PixelSize(); w != 120 || h != 40 {
		t.Errorf("PixelSize() = %dx%d, want 120x40", w, h)
	}
	if x, y := g.Offset(); x != -10 || y != 30 {
		t.Errorf("Offset() = (%d,%d), want (-10,30)", x, y)
	}
	if cw, ch := g.CellSize(); cw != 10 || ch != 10 {
		t.Errorf("CellSize() = %dx%d, want unchanged 10x10", cw, ch)
	}
}

func TestSetCellCountsOddOverflow(t *testing.T) {
	g := New(10, 10, 100, 100)
	if err := g.SetCellCounts(11, 10); err != nil {
		t.Fatal(err)
	}
	if x, _ := g.Offset(); x != -5 {
		t.Errorf("OffsetX = %d, want -5", x)
	}

	g = New(3, 3, 10, 10)
	if err := g.SetCellCounts(4, 3); err != nil {
		t.Fatal(err)
	}
	// floor((10 - 12) / 2) = -1 and floor((10 - 9) / 2) = 0.
	if x, y := g.Offset(); x != -1 || y != 0 {
		t.Errorf("Offset() = (%d,%d), want (-1,0)", x, y)
	}
}

func TestSetCellCountsRejectsNegative(t *testing.T) {
	g := New(10, 10, 100, 100)
	before := g.Snapshot()

	err := g.SetCellCounts(-1, 5)
	if !errors.Is(err, ErrNegativeCellCount) {
		t.Fatalf("err = %v, want ErrNegativeCellCount", err)
	}
	if g.Snapshot() != before {
		t.Error("grid changed after rejected override")
	}
}

func TestSetCellCountsZeroIsEmpty(t *testing.T) {
	g := New(10, 10, 100, 100)
	if err := g.SetCellCounts(0, 7); err != nil {
		t.Fatal(err)
	}
	if !g.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestSetCellDimensionsClearsOverride(t *testing.T) {
	g := New(10, 10, 100, 100)
	if err := g.SetCellCounts(3, 3); err != nil {
		t.Fatal(err)
	}

	if err := g.SetCellDimensions(20, 25); err != nil {
		t.Fatalf("SetCellDimensions: %v", err)
	}
	if g.Overridden() {
		t.Error("Overridden() = true after cell size change")
	}
	if g.Cols() != 5 || g.Rows() != 4 {
		t.Errorf("counts = %dx%d, want 5x4", g.Cols(), g.Rows())
	}
	if x, y := g.Offset(); x != 0 || y != 0 {
		t.Errorf("Offset() = (%d,%d), want (0,0)", x, y)
	}
}

func TestSetCellDimensionsRejectsNegative(t *testing.T) {
	g := New(10, 10, 100, 100)
	if err := g.SetCellDimensions(-1, 10); !errors.Is(err, ErrInvalidCellSize) {
		t.Fatalf("err = %v, want ErrInvalidCellSize", err)
	}
	if cw, _ := g.CellSize(); cw != 10 {
		t.Errorf("cell width = %d, want unchanged 10", cw)
	}
}

func TestResize(t *testing.T) {
	g := New(10, 18, 800, 600)
	if err := g.SetCellCounts(2, 2); err != nil {
		t.Fatal(err)
	}

	g.Resize(1024, 768)
	if g.Overridden() {
		t.Error("Overridden() = true after resize")
	}
	if vw, vh := g.Viewport(); vw != 1024 || vh != 768 {
		t.Errorf("Viewport() = %dx%d, want 1024x768", vw, vh)
	}
	if g.Cols() != 102 || g.Rows() != 42 {
		t.Errorf("counts = %dx%d, want 102x42", g.Cols(), g.Rows())
	}
	// 1024 - 1020 = 4, 768 - 756 = 12.
	if x, y := g.Offset(); x != 2 || y != 6 {
		t.Errorf("Offset() = (%d,%d), want (2,6)", x, y)
	}

	g.Resize(4, 4)
	if !g.IsEmpty() {
		t.Error("tiny viewport should empty the grid")
	}
}

func TestFloorHalf(t *testing.T) {
	tests := map[int]int{0: 0, 1: 0, 2: 1, 3: 1, -1: -1, -2: -1, -3: -2, -10: -5, -11: -6}
	for in, want := range tests {
		if got := floorHalf(in); got != want {
			t.Errorf("floorHalf(%d) = %d, want %d", in, got, want)
		}
	}
}
