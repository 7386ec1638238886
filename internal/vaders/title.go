package vaders

import (
	"github.com/vovakirdan/picovaders/internal/assets"
	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/core"
	"github.com/vovakirdan/picovaders/internal/tick"
)

// Title rows of the decorative invader band.
const (
	titleBandTop   = 40
	titleBandCount = 10
	titlePromptY   = 180
)

var penFooter = core.Pen{R: 15, G: 8, B: 15, A: 10}

// Title shows the logo over a band of marching invaders and waits for the
// start button.
type Title struct {
	cfg    config.VadersConfig
	ticker *tick.Ticker
	timeMS uint32

	offset int
	dir    Direction
}

// NewTitle creates a title screen.
func NewTitle(cfg config.VadersConfig) *Title {
	return &Title{
		cfg:    cfg,
		ticker: tick.New(uint32(cfg.Title.SweepMS)),
		offset: cfg.Title.StartOffset,
	}
}

func (t *Title) sealed() {}

// ID implements Screen.
func (t *Title) ID() ScreenID {
	return ScreenTitle
}

// Advance implements Screen. Like Play, the first delta only starts the
// clock, so a start press carried over from the previous screen is ignored.
func (t *Title) Advance(deltaMS uint32, in core.Controls) ScreenID {
	if t.timeMS == 0 {
		t.timeMS = 1
		t.ticker.Advance(deltaMS)
		return ScreenTitle
	}

	t.timeMS += deltaMS
	t.ticker.Advance(deltaMS)
	for t.ticker.Poll() {
		t.sweep()
	}

	if in.IsPressed(core.ButtonX) {
		return ScreenPlay
	}
	return ScreenTitle
}

func (t *Title) sweep() {
	step := t.cfg.Grid.SweepStep
	if t.dir == LeftToRight {
		t.offset += step
		if t.offset >= t.cfg.Title.SweepMax {
			t.offset = t.cfg.Title.SweepMax
			t.dir = RightToLeft
		}
		return
	}
	t.offset -= step
	if t.offset <= t.cfg.Title.SweepMin {
		t.offset = t.cfg.Title.SweepMin
		t.dir = LeftToRight
	}
}

// Offset returns the horizontal position of the invader band.
func (t *Title) Offset() int {
	return t.offset
}

// PromptAlpha returns the start prompt opacity at t milliseconds. It pulses
// between 5 and 15 with a one second period.
func PromptAlpha(t uint32) uint8 {
	phase := int((t / 50) % 20)
	return uint8(5 + core.Abs(phase-10))
}

// Render implements Screen.
func (t *Title) Render(c core.Canvas) {
	w, h := t.cfg.Screen.Width, t.cfg.Screen.Height

	c.Pen(penBlack)
	c.Clear()

	alt := t.ticker.Count()%2 == 1
	rows := [...]Cell{CellKind3, CellKind2}
	for i, kind := range rows {
		sprite, _ := cellSprite(kind, alt)
		y := titleBandTop + i*t.cfg.Grid.CellSize
		c.Pen(cellPen(kind))
		for n := 0; n < titleBandCount; n++ {
			x := t.offset + n*t.cfg.Grid.CellSize
			c.Sprite(sprite, x, y)
			c.Sprite(sprite+1, x+assets.TileSize, y)
		}
	}

	c.Pen(penKind3)
	logo := assets.TitleRegion
	c.Blit(logo, (w-logo.W)/2, (h-logo.H)/2)

	c.Pen(core.Pen{R: 10, G: 15, B: 15, A: PromptAlpha(t.timeMS)})
	Label{Text: t.cfg.Title.Prompt, Scale: t.cfg.Title.PromptScale}.DrawCentered(c, w, titlePromptY)

	footer := Label{Text: t.cfg.Title.Footer, Scale: 1}
	_, fh := footer.Size(c)
	c.Pen(penFooter)
	footer.DrawCentered(c, w, h-fh)
}
