package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Pen is a drawing colour with 4-bit channels (0-15), matching the
// handheld's native pen format. A is the alpha channel; 15 is opaque.
type Pen struct {
	R, G, B, A uint8
}

// NewPen builds an opaque pen.
func NewPen(r, g, b uint8) Pen {
	return Pen{R: r, G: g, B: b, A: 15}
}

// Color maps the pen onto the closest terminal colour. Each channel is
// thresholded into off / dim / bright.
func (p Pen) Color() Color {
	level := func(c uint8) int {
		switch {
		case c >= 12:
			return 2
		case c >= 6:
			return 1
		default:
			return 0
		}
	}
	r, g, b := level(p.R), level(p.G), level(p.B)

	switch {
	case r == 0 && g == 0 && b == 0:
		return ColorDefault
	case r == g && g == b:
		if r == 2 {
			return ColorBrightWhite
		}
		return ColorGray
	case r == 2 && g == 1 && b == 0:
		return ColorOrange
	}

	// Only the strongest channels contribute to the hue.
	top := max(r, g, b)
	on := func(c int) bool { return c == top }

	var base Color
	switch {
	case on(r) && on(g):
		base = ColorYellow
	case on(r) && on(b):
		base = ColorMagenta
	case on(g) && on(b):
		base = ColorCyan
	case on(r):
		base = ColorRed
	case on(g):
		base = ColorGreen
	default:
		base = ColorBlue
	}

	if top == 2 {
		// Bright variants sit 7 entries after their base colour.
		return base + 7
	}
	return base
}

// Visible reports whether the pen is opaque enough to draw in a medium
// without blending.
func (p Pen) Visible() bool {
	return p.A >= 4
}
