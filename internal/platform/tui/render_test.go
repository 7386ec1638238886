package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/picovaders/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "AB", core.ColorRed)
	s.DrawText(2, 0, "CD", core.ColorRed)
	s.DrawText(1, 1, "xy", core.ColorBrightGreen)

	// Without a terminal, lipgloss renders no escape sequences.
	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("styleFor(200).Render() = %q, expected plain text", got)
	}
}

func TestRenderFrame(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "HI", core.ColorWhite)

	view := renderFrame(s, "play · frame 1", "q quit", 0, 0)
	for _, want := range []string{"HI", "play · frame 1", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("renderFrame() missing %q:\n%s", want, view)
		}
	}
}
