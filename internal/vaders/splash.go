package vaders

import (
	"github.com/vovakirdan/picovaders/internal/assets"
	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/core"
)

// Splash shows the boot logo, fading it in and out, then hands over to
// the title screen.
type Splash struct {
	cfg    config.SplashConfig
	timeMS uint32
	logo   assets.Bitmap
}

// NewSplash creates a splash screen at time zero.
func NewSplash(cfg config.VadersConfig) *Splash {
	return &Splash{cfg: cfg.Splash, logo: assets.SplashLogo()}
}

func (s *Splash) sealed() {}

// ID implements Screen.
func (s *Splash) ID() ScreenID {
	return ScreenSplash
}

// Advance implements Screen. Every delta counts, including the first.
func (s *Splash) Advance(deltaMS uint32, _ core.Controls) ScreenID {
	s.timeMS += deltaMS
	if s.timeMS > uint32(s.cfg.DurationMS) {
		return ScreenTitle
	}
	return ScreenSplash
}

// Elapsed returns the time spent on the splash in milliseconds.
func (s *Splash) Elapsed() uint32 {
	return s.timeMS
}

// SplashAlpha returns the logo opacity (0-15) at t milliseconds: a linear
// fade in over fadeMS, full for the middle, and a linear fade out over the
// last fadeMS of durationMS.
func SplashAlpha(t, durationMS, fadeMS uint32) uint8 {
	switch {
	case fadeMS == 0:
		return 15
	case t < fadeMS:
		return uint8(t * 15 / fadeMS)
	case t < durationMS-fadeMS:
		return 15
	case t < durationMS:
		return uint8(15 - (t-(durationMS-fadeMS))*15/fadeMS)
	default:
		return 0
	}
}

// Render implements Screen.
func (s *Splash) Render(c core.Canvas) {
	c.Pen(penBlack)
	c.Clear()

	alpha := SplashAlpha(s.timeMS, uint32(s.cfg.DurationMS), uint32(s.cfg.FadeMS))
	if alpha == 0 {
		return
	}

	for y := 0; y < s.logo.Height; y++ {
		sy := assets.SplashLogoY + y
		green := uint8(((uint32(sy)+s.timeMS/10)%200)/20 + 5)
		c.Pen(core.Pen{R: 15, G: green, B: 15, A: alpha})
		for x := 0; x < s.logo.Width; x++ {
			if s.logo.At(x, y) {
				c.Pixel(assets.SplashLogoX+x, sy)
			}
		}
	}
}
