package vaders

import (
	"github.com/vovakirdan/picovaders/internal/assets"
	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/core"
)

// Cell is the content of one grid position.
type Cell uint8

const (
	CellNone Cell = iota
	CellKind1
	CellKind2
	CellKind3
	CellHit
	CellBoom1
	CellBoom2
)

// Alive reports whether the cell holds a live invader.
func (c Cell) Alive() bool {
	return c == CellKind1 || c == CellKind2 || c == CellKind3
}

// String returns a short name for the cell content.
func (c Cell) String() string {
	switch c {
	case CellNone:
		return "none"
	case CellKind1:
		return "kind1"
	case CellKind2:
		return "kind2"
	case CellKind3:
		return "kind3"
	case CellHit:
		return "hit"
	case CellBoom1:
		return "boom1"
	case CellBoom2:
		return "boom2"
	default:
		return "unknown"
	}
}

// Direction is the horizontal sweep direction of the grid.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
)

// Grid is the invader sheet. All cells share one rigid translation: a
// horizontal offset that sweeps back and forth and a descent that grows on
// every reversal.
type Grid struct {
	cells [][]Cell // [row][col]

	Offset    int
	Descent   int
	Direction Direction

	cfg config.GridConfig
}

// NewGrid creates a grid and loads the first wave.
func NewGrid(cfg config.GridConfig) *Grid {
	g := &Grid{cfg: cfg}
	g.cells = make([][]Cell, cfg.Rows)
	for row := range g.cells {
		g.cells[row] = make([]Cell, cfg.Columns)
	}
	g.Load()
	return g
}

// Load fills the grid with a fresh wave and resets the translation.
func (g *Grid) Load() {
	for row := range g.cells {
		kind := CellKind1
		switch {
		case row == 0:
			kind = CellKind3
		case row < 3:
			kind = CellKind2
		}
		for col := range g.cells[row] {
			g.cells[row][col] = kind
		}
	}

	g.Offset = 0
	g.Descent = g.cfg.InitialDescent
	g.Direction = LeftToRight
}

// Columns returns the grid width in cells.
func (g *Grid) Columns() int {
	return g.cfg.Columns
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int {
	return g.cfg.Rows
}

// At returns the cell content, or CellNone outside the grid.
func (g *Grid) At(col, row int) Cell {
	if !g.inside(col, row) {
		return CellNone
	}
	return g.cells[row][col]
}

// Set replaces a cell. Positions outside the grid are ignored.
func (g *Grid) Set(col, row int, c Cell) {
	if g.inside(col, row) {
		g.cells[row][col] = c
	}
}

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && col < g.cfg.Columns && row >= 0 && row < g.cfg.Rows
}

// CellToPixel returns the top-left screen position of a cell.
func (g *Grid) CellToPixel(col, row int) (x, y int) {
	return col*g.cfg.CellSize + g.Offset, row*g.cfg.CellSize + g.Descent
}

// PixelToCell maps a screen position to the cell covering it. Division
// truncates toward zero, so the first cell also claims the cell-size strip
// just above and to the left of it. ok is false outside the grid.
func (g *Grid) PixelToCell(x, y int) (col, row int, ok bool) {
	col = (x - g.Offset) / g.cfg.CellSize
	row = (y - g.Descent) / g.cfg.CellSize
	return col, row, g.inside(col, row)
}

// Scan counts live invaders and finds the outermost occupied columns.
// With no invaders left, leftmost is Columns() and rightmost is 0.
func (g *Grid) Scan() (live, leftmost, rightmost int) {
	leftmost = g.cfg.Columns
	for row := range g.cells {
		for col, c := range g.cells[row] {
			if !c.Alive() {
				continue
			}
			live++
			leftmost = min(leftmost, col)
			rightmost = max(rightmost, col)
		}
	}
	return live, leftmost, rightmost
}

// Limit returns the offset at which the sweep reverses for the current
// direction, given the outermost occupied columns.
func (g *Grid) Limit(leftmost, rightmost int) int {
	if g.Direction == LeftToRight {
		return g.cfg.RightEdge - rightmost*g.cfg.CellSize
	}
	return -leftmost * g.cfg.CellSize
}

// AdvanceChain moves every exploding cell one step toward empty.
// Boom2 is handled before Boom1 and Boom1 before Hit so that no cell
// moves twice in one pass.
func (g *Grid) AdvanceChain() {
	steps := [...]struct{ from, to Cell }{
		{CellBoom2, CellNone},
		{CellBoom1, CellBoom2},
		{CellHit, CellBoom1},
	}
	for _, s := range steps {
		for row := range g.cells {
			for col, c := range g.cells[row] {
				if c == s.from {
					g.cells[row][col] = s.to
				}
			}
		}
	}
}

// Sweep translates the grid one step toward limit. On reaching it the
// direction flips, the offset steps back and the grid descends.
// It reports whether the direction flipped.
func (g *Grid) Sweep(limit int) bool {
	step := g.cfg.SweepStep

	if g.Direction == LeftToRight {
		if g.Offset >= limit {
			g.Direction = RightToLeft
			g.Offset -= step
			g.Descent += g.cfg.DescentStep
			return true
		}
		g.Offset += step
		return false
	}

	if g.Offset <= limit {
		g.Direction = LeftToRight
		g.Offset += step
		g.Descent += g.cfg.DescentStep
		return true
	}
	g.Offset -= step
	return false
}

// LowestRow returns the bottom row holding a live invader.
func (g *Grid) LowestRow() (int, bool) {
	for row := len(g.cells) - 1; row >= 0; row-- {
		for _, c := range g.cells[row] {
			if c.Alive() {
				return row, true
			}
		}
	}
	return 0, false
}

// cellSprite returns the left tile of the sprite drawn for a cell.
func cellSprite(c Cell, alt bool) (core.SpriteID, bool) {
	switch c {
	case CellKind1:
		if alt {
			return assets.SpriteInvader1Alt, true
		}
		return assets.SpriteInvader1, true
	case CellKind2:
		if alt {
			return assets.SpriteInvader2Alt, true
		}
		return assets.SpriteInvader2, true
	case CellKind3:
		if alt {
			return assets.SpriteInvader3Alt, true
		}
		return assets.SpriteInvader3, true
	case CellHit, CellBoom1:
		return assets.SpriteBoom, true
	case CellBoom2:
		return assets.SpriteBoomAlt, true
	default:
		return 0, false
	}
}
