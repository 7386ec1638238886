package gui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/picovaders/internal/assets"
	"github.com/vovakirdan/picovaders/internal/core"
)

// Canvas draws onto an ebiten image at one logical pixel per image pixel.
// The sheet is uploaded once as a white mask and tinted with the pen.
type Canvas struct {
	dst   *ebiten.Image
	sheet *ebiten.Image
	face  text.Face
	pen   core.Pen
	color color.NRGBA
}

// NewCanvas uploads the sprite sheet and prepares the text face.
func NewCanvas() *Canvas {
	c := &Canvas{
		sheet: ebiten.NewImageFromImage(assets.DefaultSheet().Image()),
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
	c.Pen(core.NewPen(15, 15, 15))
	return c
}

// Target selects the image subsequent calls draw on.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Clear implements core.Canvas.
func (c *Canvas) Clear() {
	c.dst.Fill(c.color)
}

// Pen implements core.Canvas.
func (c *Canvas) Pen(p core.Pen) {
	c.pen = p
	c.color = penColor(p)
}

// FillRect implements core.Canvas.
func (c *Canvas) FillRect(r core.Rect) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.color, false)
}

// Pixel implements core.Canvas.
func (c *Canvas) Pixel(x, y int) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), 1, 1, c.color, false)
}

// Sprite implements core.Canvas.
func (c *Canvas) Sprite(id core.SpriteID, x, y int) {
	c.Blit(assets.SpriteRect(id), x, y)
}

// Blit implements core.Canvas.
func (c *Canvas) Blit(src core.Rect, x, y int) {
	if src.Empty() {
		return
	}
	sub, ok := c.sheet.SubImage(image.Rect(src.X, src.Y, src.Right(), src.Bottom())).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.color)
	c.dst.DrawImage(sub, op)
}

// Text implements core.Canvas.
func (c *Canvas) Text(s string, x, y int) {
	c.ScaledText(s, x, y, 1)
}

// ScaledText implements core.Canvas.
func (c *Canvas) ScaledText(s string, x, y int, scale float64) {
	if s == "" || scale <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.color)
	text.Draw(c.dst, s, c.face, op)
}

// Measure implements core.Canvas.
func (c *Canvas) Measure(s string) (w, h int) {
	fw, fh := text.Measure(s, c.face, 0)
	return int(math.Ceil(fw)), int(math.Ceil(fh))
}

// penColor widens 4-bit pen channels to 8 bits.
func penColor(p core.Pen) color.NRGBA {
	widen := func(v uint8) uint8 {
		return min(v, 15) * 17
	}
	return color.NRGBA{R: widen(p.R), G: widen(p.G), B: widen(p.B), A: widen(p.A)}
}
