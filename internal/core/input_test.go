package core

import "testing"

func TestButtonsSet(t *testing.T) {
	var s Buttons
	s = s.With(ButtonLeft).With(ButtonA)

	if !s.Has(ButtonLeft) || !s.Has(ButtonA) {
		t.Errorf("set %v should contain Left and A", s)
	}
	if s.Has(ButtonRight) {
		t.Errorf("set %v should not contain Right", s)
	}
	if s.String() != "Left+A" {
		t.Errorf("String() = %q, expected %q", s.String(), "Left+A")
	}
	if Buttons(0).String() != "-" {
		t.Errorf("empty set String() = %q, expected %q", Buttons(0).String(), "-")
	}
}

func TestControls(t *testing.T) {
	c := Controls{
		Held:    Buttons(0).With(ButtonRight),
		Pressed: Buttons(0).With(ButtonX),
	}

	if !c.IsHeld(ButtonRight) || c.IsHeld(ButtonX) {
		t.Error("IsHeld should only report Right")
	}
	if !c.IsPressed(ButtonX) || c.IsPressed(ButtonRight) {
		t.Error("IsPressed should only report X")
	}
}

func TestPenColor(t *testing.T) {
	tests := []struct {
		name     string
		pen      Pen
		expected Color
	}{
		{"black", NewPen(0, 0, 0), ColorDefault},
		{"white", NewPen(15, 15, 15), ColorBrightWhite},
		{"grey", NewPen(8, 8, 8), ColorGray},
		{"bright red", NewPen(15, 0, 0), ColorBrightRed},
		{"dim green", NewPen(0, 8, 0), ColorGreen},
		{"magenta logo", NewPen(15, 8, 15), ColorBrightMagenta},
		{"cyan prompt", NewPen(10, 15, 15), ColorBrightCyan},
		{"orange", NewPen(15, 8, 0), ColorOrange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pen.Color(); got != tc.expected {
				t.Errorf("Color() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestPenVisible(t *testing.T) {
	if (Pen{A: 3}).Visible() {
		t.Error("alpha 3 should not be visible")
	}
	if !(Pen{A: 4}).Visible() {
		t.Error("alpha 4 should be visible")
	}
}
