package tui

import (
	"math"

	"github.com/vovakirdan/picovaders/internal/assets"
	"github.com/vovakirdan/picovaders/internal/core"
)

// Terminal cell size in logical pixels. A 240x240 playfield fits in a
// 60x30 cell screen, which keeps pixels roughly square in most fonts.
const (
	CellW = 4
	CellH = 8
)

// shades indexes block glyphs by coverage, from empty to full.
var shades = []rune{' ', '░', '▒', '▓', '█'}

// Canvas draws onto a character Screen, one cell per CellW x CellH pixel
// block. Sprites and blits are shaded by how much of each block the sheet
// covers. Pens too transparent to see are not drawn.
type Canvas struct {
	screen *core.Screen
	sheet  *assets.Sheet
	pen    core.Pen
	color  core.Color
}

// NewCanvas creates a canvas for a playfield of width x height pixels.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		screen: core.NewScreen(ceilDiv(width, CellW), ceilDiv(height, CellH)),
		sheet:  assets.DefaultSheet(),
		pen:    core.NewPen(15, 15, 15),
		color:  core.ColorBrightWhite,
	}
}

// Screen returns the character buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Clear implements core.Canvas. The terminal background stands in for the pen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Pen implements core.Canvas.
func (c *Canvas) Pen(p core.Pen) {
	c.pen = p
	c.color = p.Color()
}

// FillRect implements core.Canvas.
func (c *Canvas) FillRect(r core.Rect) {
	if !c.pen.Visible() || r.Empty() {
		return
	}
	for cy := floorDiv(r.Y, CellH); cy <= floorDiv(r.Bottom()-1, CellH); cy++ {
		for cx := floorDiv(r.X, CellW); cx <= floorDiv(r.Right()-1, CellW); cx++ {
			c.screen.Set(cx, cy, '█', c.color)
		}
	}
}

// Pixel implements core.Canvas.
func (c *Canvas) Pixel(x, y int) {
	if !c.pen.Visible() {
		return
	}
	c.screen.Set(floorDiv(x, CellW), floorDiv(y, CellH), '█', c.color)
}

// Sprite implements core.Canvas.
func (c *Canvas) Sprite(id core.SpriteID, x, y int) {
	c.Blit(assets.SpriteRect(id), x, y)
}

// Blit implements core.Canvas.
func (c *Canvas) Blit(src core.Rect, x, y int) {
	if !c.pen.Visible() {
		return
	}
	for by := 0; by < src.H; by += CellH {
		for bx := 0; bx < src.W; bx += CellW {
			block := core.NewRect(src.X+bx, src.Y+by, min(CellW, src.W-bx), min(CellH, src.H-by))
			r := shade(c.sheet.Coverage(block))
			if r == ' ' {
				continue
			}
			c.screen.Set(floorDiv(x+bx, CellW), floorDiv(y+by, CellH), r, c.color)
		}
	}
}

// Text implements core.Canvas.
func (c *Canvas) Text(text string, x, y int) {
	if !c.pen.Visible() {
		return
	}
	c.screen.DrawText(floorDiv(x, CellW), floorDiv(y, CellH), text, c.color)
}

// ScaledText implements core.Canvas. Terminal text cannot grow, so the text
// is centred in the box the scaled text would occupy.
func (c *Canvas) ScaledText(text string, x, y int, scale float64) {
	w, h := c.Measure(text)
	sw := int(math.Round(float64(w) * scale))
	sh := int(math.Round(float64(h) * scale))
	c.Text(text, x+(sw-w)/2, y+(sh-h)/2)
}

// Measure implements core.Canvas. Every rune is one cell.
func (c *Canvas) Measure(text string) (w, h int) {
	n := len([]rune(text))
	if n == 0 {
		return 0, CellH
	}
	return n * CellW, CellH
}

// shade picks a block glyph for a coverage ratio.
func shade(set, total int) rune {
	if total == 0 || set == 0 {
		return ' '
	}
	i := (set*(len(shades)-1) + total - 1) / total
	return shades[i]
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
