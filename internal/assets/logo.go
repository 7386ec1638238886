package assets

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Bitmap is a 1-bit image packed MSB-first, row by row.
type Bitmap struct {
	Width  int
	Height int
	Bits   []byte
}

// Stride returns the number of bytes per row.
func (b Bitmap) Stride() int {
	return (b.Width + 7) / 8
}

// At reports whether the pixel at (x, y) is set. Out-of-range pixels are unset.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.Bits[y*b.Stride()+x/8]&(0x80>>(x%8)) != 0
}

// Splash logo geometry, in screen pixels.
const (
	SplashLogoX    = 24
	SplashLogoY    = 24
	SplashLogoSize = 192
)

var (
	splashLogo     Bitmap
	splashLogoOnce sync.Once
)

// SplashLogo returns the 192x192 boot logo.
func SplashLogo() Bitmap {
	splashLogoOnce.Do(func() {
		img := Rasterise([]string{"TUI", "ARCADE"}, 4, SplashLogoSize, SplashLogoSize)
		splashLogo = pack(img)
	})
	return splashLogo
}

// Rasterise renders centred lines of text in the 7x13 bitmap font, magnified
// by an integer scale, into a w x h alpha mask.
func Rasterise(lines []string, scale, w, h int) *image.Alpha {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineH := metrics.Height.Ceil()

	small := image.NewAlpha(image.Rect(0, 0, w/scale, h/scale))
	top := (small.Bounds().Dy() - lineH*len(lines)) / 2

	d := &font.Drawer{Dst: small, Src: image.Opaque, Face: face}
	for i, line := range lines {
		x := (small.Bounds().Dx() - d.MeasureString(line).Ceil()) / 2
		d.Dot = fixed.P(x, top+i*lineH+metrics.Ascent.Ceil())
		d.DrawString(line)
	}

	out := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetAlpha(x, y, small.AlphaAt(x/scale, y/scale))
		}
	}
	return out
}

// pack thresholds an alpha mask into a Bitmap.
func pack(img *image.Alpha) Bitmap {
	b := img.Bounds()
	bm := Bitmap{Width: b.Dx(), Height: b.Dy()}
	bm.Bits = make([]byte, bm.Stride()*bm.Height)

	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if img.AlphaAt(b.Min.X+x, b.Min.Y+y).A >= 0x80 {
				bm.Bits[y*bm.Stride()+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return bm
}
