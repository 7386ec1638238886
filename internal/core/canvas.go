package core

// SpriteID indexes an 8x8 tile on the sprite sheet.
type SpriteID int

// Canvas is the drawing service the simulation renders through. Coordinates
// are in logical screen pixels. Implementations must tolerate out-of-bounds
// drawing and must never fail the caller: anything they cannot draw is skipped.
type Canvas interface {
	// Clear fills the whole canvas with the current pen.
	Clear()

	// Pen selects the colour used by subsequent drawing calls.
	Pen(p Pen)

	// FillRect fills a rectangle with the current pen.
	FillRect(r Rect)

	// Pixel sets a single pixel with the current pen.
	Pixel(x, y int)

	// Sprite draws an 8x8 sheet tile at (x, y).
	Sprite(id SpriteID, x, y int)

	// Blit copies a region of the sprite sheet to (x, y).
	Blit(src Rect, x, y int)

	// Text draws text with the top-left corner at (x, y).
	Text(text string, x, y int)

	// ScaledText draws text magnified by scale.
	ScaledText(text string, x, y int, scale float64)

	// Measure returns the rendered extents of text at scale 1.
	Measure(text string) (w, h int)
}
