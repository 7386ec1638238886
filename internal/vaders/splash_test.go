package vaders

import (
	"testing"

	"github.com/vovakirdan/picovaders/internal/config"
)

func TestSplashBoundary(t *testing.T) {
	s := NewSplash(config.DefaultVadersConfig())

	if next := s.Advance(2000, noInput); next != ScreenSplash {
		t.Errorf("at 2000ms Advance() = %v, expected splash", next)
	}
	if next := s.Advance(1, noInput); next != ScreenTitle {
		t.Errorf("at 2001ms Advance() = %v, expected title", next)
	}
}

func TestSplashCountsFirstDelta(t *testing.T) {
	s := NewSplash(config.DefaultVadersConfig())
	if next := s.Advance(2001, noInput); next != ScreenTitle {
		t.Errorf("Advance(2001) = %v, expected title", next)
	}
	if s.Elapsed() != 2001 {
		t.Errorf("Elapsed() = %d, expected 2001", s.Elapsed())
	}
}

func TestSplashAlpha(t *testing.T) {
	tests := []struct {
		t    uint32
		want uint8
	}{
		{0, 0},
		{250, 7},
		{499, 14},
		{500, 15},
		{1000, 15},
		{1500, 15},
		{1501, 15},
		{1750, 8},
		{1999, 1},
		{2000, 0},
		{5000, 0},
	}

	for _, tc := range tests {
		if got := SplashAlpha(tc.t, 2000, 500); got != tc.want {
			t.Errorf("SplashAlpha(%d) = %d, expected %d", tc.t, got, tc.want)
		}
	}
}

func TestSplashRender(t *testing.T) {
	s := NewSplash(config.DefaultVadersConfig())

	c := newRecordingCanvas()
	s.Render(c)
	if c.pixels != 0 {
		t.Errorf("fully transparent splash drew %d pixels", c.pixels)
	}

	s.Advance(1000, noInput)
	c = newRecordingCanvas()
	s.Render(c)
	if c.pixels == 0 {
		t.Error("visible splash should draw the logo")
	}
	for _, p := range c.pens[1:] {
		if p.A != 15 || p.G < 5 || p.G > 14 {
			t.Errorf("logo pen = %+v, expected alpha 15 and green in [5, 14]", p)
		}
	}
}
