// Package vaders implements the PicoVaders simulation: the screens, the
// invader grid, the player and the sequencer that swaps between them.
//
// The host drives a Session once per frame with the wall-clock delta since
// the previous frame, then renders it through a core.Canvas. Nothing in this
// package blocks, spawns goroutines or holds locks.
package vaders

import "github.com/vovakirdan/picovaders/internal/core"

// ScreenID names one of the three screens.
type ScreenID uint8

const (
	ScreenSplash ScreenID = iota
	ScreenTitle
	ScreenPlay
)

// String returns the screen name.
func (id ScreenID) String() string {
	switch id {
	case ScreenSplash:
		return "splash"
	case ScreenTitle:
		return "title"
	case ScreenPlay:
		return "play"
	default:
		return "unknown"
	}
}

// Screen is one state of the screen machine. The set of screens is closed:
// only Splash, Title and Play implement it.
type Screen interface {
	// ID identifies the screen variant.
	ID() ScreenID

	// Advance moves the screen forward by deltaMS and returns the screen
	// that should run next. Returning its own ID keeps it current.
	Advance(deltaMS uint32, in core.Controls) ScreenID

	// Render draws the screen. It must not change simulation state.
	Render(c core.Canvas)

	sealed()
}

// Common pens.
var (
	penBlack = core.Pen{R: 0, G: 0, B: 0, A: 15}
	penWhite = core.NewPen(15, 15, 15)
)
