package vaders

import (
	"testing"

	"github.com/vovakirdan/picovaders/internal/config"
)

func newTestGrid() *Grid {
	return NewGrid(config.DefaultVadersConfig().Grid)
}

func TestGridLoad(t *testing.T) {
	g := newTestGrid()

	expected := []Cell{CellKind3, CellKind2, CellKind2, CellKind1, CellKind1}
	for row, kind := range expected {
		for col := 0; col < g.Columns(); col++ {
			if got := g.At(col, row); got != kind {
				t.Errorf("At(%d, %d) = %v, expected %v", col, row, got, kind)
			}
		}
	}

	if g.Offset != 0 || g.Descent != 20 || g.Direction != LeftToRight {
		t.Errorf("translation = (%d, %d, %d), expected (0, 20, left-to-right)", g.Offset, g.Descent, g.Direction)
	}
}

func TestGridCellToPixel(t *testing.T) {
	g := newTestGrid()
	g.Offset = 6
	g.Descent = 40

	x, y := g.CellToPixel(3, 2)
	if x != 66 || y != 80 {
		t.Errorf("CellToPixel(3, 2) = (%d, %d), expected (66, 80)", x, y)
	}
}

func TestGridPixelToCell(t *testing.T) {
	g := newTestGrid()

	tests := []struct {
		name     string
		x, y     int
		col, row int
		ok       bool
	}{
		{"origin", 0, 20, 0, 0, true},
		{"bottom left", 3, 103, 0, 4, true},
		{"bottom right", 199, 119, 9, 4, true},
		{"truncates left strip into column 0", -5, 20, 0, 0, true},
		{"truncates top strip into row 0", 50, 5, 2, 0, true},
		{"left of grid", -20, 20, -1, 0, false},
		{"right of grid", 200, 20, 10, 0, false},
		{"above grid", 50, 0, 2, -1, false},
		{"below grid", 50, 120, 2, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row, ok := g.PixelToCell(tc.x, tc.y)
			if col != tc.col || row != tc.row || ok != tc.ok {
				t.Errorf("PixelToCell(%d, %d) = (%d, %d, %v), expected (%d, %d, %v)",
					tc.x, tc.y, col, row, ok, tc.col, tc.row, tc.ok)
			}
		})
	}
}

func TestGridMappingRoundTrip(t *testing.T) {
	g := newTestGrid()
	g.Offset = -14
	g.Descent = 50

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			x, y := g.CellToPixel(col, row)
			c, r, ok := g.PixelToCell(x+3, y+3)
			if !ok || c != col || r != row {
				t.Errorf("cell (%d, %d) maps back to (%d, %d, %v)", col, row, c, r, ok)
			}
		}
	}
}

func TestGridOutOfRange(t *testing.T) {
	g := newTestGrid()

	if got := g.At(-1, 0); got != CellNone {
		t.Errorf("At(-1, 0) = %v, expected none", got)
	}
	g.Set(10, 0, CellKind1)
	g.Set(0, 5, CellKind1)
	if live, _, _ := g.Scan(); live != 50 {
		t.Errorf("out-of-range Set changed live count to %d", live)
	}
}

func TestGridScan(t *testing.T) {
	g := newTestGrid()

	live, left, right := g.Scan()
	if live != 50 || left != 0 || right != 9 {
		t.Errorf("Scan() = (%d, %d, %d), expected (50, 0, 9)", live, left, right)
	}

	for row := 0; row < g.Rows(); row++ {
		g.Set(0, row, CellNone)
		g.Set(9, row, CellHit)
	}
	live, left, right = g.Scan()
	if live != 40 || left != 1 || right != 8 {
		t.Errorf("Scan() = (%d, %d, %d), expected (40, 1, 8)", live, left, right)
	}

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			g.Set(col, row, CellNone)
		}
	}
	live, left, right = g.Scan()
	if live != 0 || left != 10 || right != 0 {
		t.Errorf("empty Scan() = (%d, %d, %d), expected (0, 10, 0)", live, left, right)
	}
}

func TestGridLimit(t *testing.T) {
	g := newTestGrid()

	if got := g.Limit(0, 9); got != 40 {
		t.Errorf("Limit moving right = %d, expected 40", got)
	}
	if got := g.Limit(0, 6); got != 100 {
		t.Errorf("Limit moving right with column 6 outermost = %d, expected 100", got)
	}

	g.Direction = RightToLeft
	if got := g.Limit(2, 9); got != -40 {
		t.Errorf("Limit moving left = %d, expected -40", got)
	}
}

func TestGridAdvanceChain(t *testing.T) {
	g := newTestGrid()
	g.Set(0, 0, CellHit)
	g.Set(1, 0, CellBoom1)
	g.Set(2, 0, CellBoom2)

	g.AdvanceChain()

	expected := []Cell{CellBoom1, CellBoom2, CellNone, CellKind3}
	for col, c := range expected {
		if got := g.At(col, 0); got != c {
			t.Errorf("after one step, At(%d, 0) = %v, expected %v", col, got, c)
		}
	}

	g.AdvanceChain()
	g.AdvanceChain()
	for col := 0; col < 3; col++ {
		if got := g.At(col, 0); got != CellNone {
			t.Errorf("after three steps, At(%d, 0) = %v, expected none", col, got)
		}
	}
}

func TestGridSweep(t *testing.T) {
	g := newTestGrid()
	g.Offset = 38

	if g.Sweep(40) {
		t.Error("Sweep should not flip before reaching the limit")
	}
	if g.Offset != 40 {
		t.Errorf("Offset = %d, expected 40", g.Offset)
	}

	if !g.Sweep(40) {
		t.Error("Sweep should flip at the limit")
	}
	if g.Offset != 38 || g.Descent != 30 || g.Direction != RightToLeft {
		t.Errorf("after right flip = (%d, %d, %d), expected (38, 30, right-to-left)", g.Offset, g.Descent, g.Direction)
	}

	g.Offset = -38
	g.Sweep(-40)
	if g.Offset != -40 {
		t.Errorf("Offset = %d, expected -40", g.Offset)
	}
	if !g.Sweep(-40) {
		t.Error("Sweep should flip at the left limit")
	}
	if g.Offset != -38 || g.Descent != 40 || g.Direction != LeftToRight {
		t.Errorf("after left flip = (%d, %d, %d), expected (-38, 40, left-to-right)", g.Offset, g.Descent, g.Direction)
	}
}

func TestGridLowestRow(t *testing.T) {
	g := newTestGrid()

	if row, ok := g.LowestRow(); !ok || row != 4 {
		t.Errorf("LowestRow() = (%d, %v), expected (4, true)", row, ok)
	}

	for col := 0; col < g.Columns(); col++ {
		g.Set(col, 4, CellBoom1)
	}
	if row, ok := g.LowestRow(); !ok || row != 3 {
		t.Errorf("LowestRow() = (%d, %v), expected (3, true)", row, ok)
	}

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			g.Set(col, row, CellNone)
		}
	}
	if _, ok := g.LowestRow(); ok {
		t.Error("LowestRow() on an empty grid should report false")
	}
}
