package vaders

import (
	"testing"

	"github.com/vovakirdan/picovaders/internal/assets"
	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/core"
)

var start = core.Controls{Pressed: core.Buttons(0).With(core.ButtonX)}

func TestTitleStart(t *testing.T) {
	tt := NewTitle(config.DefaultVadersConfig())

	if next := tt.Advance(16, start); next != ScreenTitle {
		t.Errorf("first Advance() = %v, expected title", next)
	}
	if next := tt.Advance(16, noInput); next != ScreenTitle {
		t.Errorf("Advance() without start = %v, expected title", next)
	}
	held := core.Controls{Held: core.Buttons(0).With(core.ButtonX)}
	if next := tt.Advance(16, held); next != ScreenTitle {
		t.Errorf("Advance() with start held = %v, expected title", next)
	}
	if next := tt.Advance(16, start); next != ScreenPlay {
		t.Errorf("Advance() with start pressed = %v, expected play", next)
	}
}

func TestTitleSweep(t *testing.T) {
	tt := NewTitle(config.DefaultVadersConfig())
	tt.Advance(0, noInput)

	if tt.Offset() != 20 {
		t.Fatalf("Offset() = %d, expected 20", tt.Offset())
	}

	tt.Advance(301, noInput) // one tick
	if tt.Offset() != 22 {
		t.Errorf("Offset() after one tick = %d, expected 22", tt.Offset())
	}

	minOffset, maxOffset := tt.Offset(), tt.Offset()
	for range 100 {
		tt.Advance(300, noInput)
		minOffset = min(minOffset, tt.Offset())
		maxOffset = max(maxOffset, tt.Offset())
	}
	if minOffset != 0 || maxOffset != 44 {
		t.Errorf("sweep range = [%d, %d], expected [0, 44]", minOffset, maxOffset)
	}
}

func TestPromptAlpha(t *testing.T) {
	tests := []struct {
		t    uint32
		want uint8
	}{
		{0, 15},
		{250, 10},
		{500, 5},
		{750, 10},
		{1000, 15},
	}

	for _, tc := range tests {
		if got := PromptAlpha(tc.t); got != tc.want {
			t.Errorf("PromptAlpha(%d) = %d, expected %d", tc.t, got, tc.want)
		}
	}
}

func TestTitleRender(t *testing.T) {
	tt := NewTitle(config.DefaultVadersConfig())
	c := newRecordingCanvas()

	tt.Render(c)

	if len(c.sprites) != 40 {
		t.Errorf("sprites = %d, expected two rows of 10 two-tile invaders", len(c.sprites))
	}
	if len(c.blits) != 1 || c.blits[0] != assets.TitleRegion {
		t.Errorf("blits = %v, expected the title logo", c.blits)
	}
	if len(c.texts) != 2 {
		t.Fatalf("texts = %v, expected prompt and footer", c.texts)
	}

	prompt := c.texts[0]
	if prompt.text != "PRESS X TO START" || prompt.scale != 1.5 || prompt.y != 180 {
		t.Errorf("prompt = %+v", prompt)
	}
	// 16 runes * 4px * 1.5 = 96px wide
	if prompt.x != 72 {
		t.Errorf("prompt x = %d, expected 72", prompt.x)
	}

	footer := c.texts[1]
	if footer.y != 232 {
		t.Errorf("footer y = %d, expected 232", footer.y)
	}
}
