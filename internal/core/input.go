package core

import "strings"

// Button is one of the handheld's physical buttons.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA // Fire
	ButtonB
	ButtonX // Start
	ButtonY
	buttonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	default:
		return "Unknown"
	}
}

// Buttons is a set of buttons stored as a bitmask.
type Buttons uint16

// With returns the set with b added.
func (s Buttons) With(b Button) Buttons {
	return s | 1<<b
}

// Has reports whether b is in the set.
func (s Buttons) Has(b Button) bool {
	return s&(1<<b) != 0
}

// String lists the buttons in the set, e.g. "Left+A".
func (s Buttons) String() string {
	var names []string
	for b := Button(0); b < buttonCount; b++ {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "+")
}

// Controls is the input snapshot for one host frame. Held lists buttons that
// are currently down; Pressed lists buttons that went down since the previous
// frame (edge-triggered).
type Controls struct {
	Held    Buttons
	Pressed Buttons
}

// IsHeld reports whether b is currently down.
func (c Controls) IsHeld(b Button) bool {
	return c.Held.Has(b)
}

// IsPressed reports whether b went down this frame.
func (c Controls) IsPressed(b Button) bool {
	return c.Pressed.Has(b)
}
