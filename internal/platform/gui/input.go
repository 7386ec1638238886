package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/picovaders/internal/core"
)

// binding maps a keyboard key onto a handheld button.
type binding struct {
	key    ebiten.Key
	button core.Button
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ButtonLeft},
	{ebiten.KeyA, core.ButtonLeft},
	{ebiten.KeyArrowRight, core.ButtonRight},
	{ebiten.KeyD, core.ButtonRight},
	{ebiten.KeyArrowUp, core.ButtonUp},
	{ebiten.KeyArrowDown, core.ButtonDown},
	{ebiten.KeySpace, core.ButtonA},
	{ebiten.KeyZ, core.ButtonA},
	{ebiten.KeyX, core.ButtonX},
	{ebiten.KeyEnter, core.ButtonX},
	{ebiten.KeyC, core.ButtonB},
	{ebiten.KeyV, core.ButtonY},
}

// keyState reports a key's state. ebiten.IsKeyPressed and
// inpututil.IsKeyJustPressed both satisfy it.
type keyState func(ebiten.Key) bool

// readControls builds the frame's input snapshot. A button is held while any
// of its keys is down and pressed when any of them went down this frame.
func readControls(held, justPressed keyState) core.Controls {
	var in core.Controls
	for _, b := range bindings {
		if held(b.key) {
			in.Held = in.Held.With(b.button)
		}
		if justPressed(b.key) {
			in.Pressed = in.Pressed.With(b.button)
			in.Held = in.Held.With(b.button)
		}
	}
	return in
}
