package vaders

import "github.com/vovakirdan/picovaders/internal/core"

type spriteCall struct {
	id   core.SpriteID
	x, y int
}

type textCall struct {
	text  string
	x, y  int
	scale float64
}

// recordingCanvas records draw calls. Text measures charW x charH per rune.
type recordingCanvas struct {
	charW, charH int

	pens    []core.Pen
	clears  int
	pixels  int
	fills   int
	blits   []core.Rect
	sprites []spriteCall
	texts   []textCall
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{charW: 4, charH: 8}
}

func (c *recordingCanvas) Clear() { c.clears++ }
func (c *recordingCanvas) Pen(p core.Pen) { c.pens = append(c.pens, p) }
func (c *recordingCanvas) FillRect(core.Rect) { c.fills++ }
func (c *recordingCanvas) Pixel(int, int) { c.pixels++ }
func (c *recordingCanvas) Blit(src core.Rect, _, _ int) { c.blits = append(c.blits, src) }

func (c *recordingCanvas) Sprite(id core.SpriteID, x, y int) {
	c.sprites = append(c.sprites, spriteCall{id, x, y})
}

func (c *recordingCanvas) Text(text string, x, y int) {
	c.texts = append(c.texts, textCall{text, x, y, 1})
}

func (c *recordingCanvas) ScaledText(text string, x, y int, scale float64) {
	c.texts = append(c.texts, textCall{text, x, y, scale})
}

func (c *recordingCanvas) Measure(text string) (int, int) {
	if c.charW == 0 {
		return 0, 0
	}
	return len([]rune(text)) * c.charW, c.charH
}
