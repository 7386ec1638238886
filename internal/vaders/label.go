package vaders

import (
	"math"

	"github.com/vovakirdan/picovaders/internal/core"
)

// Label is a line of text drawn at a fixed scale.
type Label struct {
	Text  string
	Scale float64
}

// Size returns the scaled extents of the label on c. A canvas that cannot
// measure the text reports zero extents.
func (l Label) Size(c core.Canvas) (w, h int) {
	w, h = c.Measure(l.Text)
	scale := l.scale()
	return int(math.Round(float64(w) * scale)), int(math.Round(float64(h) * scale))
}

// Draw renders the label with its top-left corner at (x, y). Nothing is
// drawn when the canvas has no extents for the text.
func (l Label) Draw(c core.Canvas, x, y int) {
	w, h := l.Size(c)
	if w <= 0 || h <= 0 {
		return
	}
	if l.scale() == 1 {
		c.Text(l.Text, x, y)
		return
	}
	c.ScaledText(l.Text, x, y, l.scale())
}

// DrawCentered renders the label horizontally centred in a span of width.
func (l Label) DrawCentered(c core.Canvas, width, y int) {
	w, _ := l.Size(c)
	l.Draw(c, (width-w)/2, y)
}

func (l Label) scale() float64 {
	if l.Scale <= 0 {
		return 1
	}
	return l.Scale
}
