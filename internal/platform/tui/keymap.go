package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/picovaders/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Start      key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.Start},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "z"),
			key.WithHelp("space/z", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("x", "enter"),
			key.WithHelp("x/enter", "start"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button returns the handheld button bound to a key, if any.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	case key.Matches(msg, k.Fire):
		return core.ButtonA, true
	case key.Matches(msg, k.Start):
		return core.ButtonX, true
	}
	return 0, false
}

// Input turns terminal key presses into button state. Terminals report no
// key releases, so a press holds its button for a short window that key
// auto-repeat keeps extending.
type Input struct {
	hold      time.Duration
	heldUntil map[core.Button]time.Time
	pressed   core.Buttons
}

// NewInput creates input state with the given hold window.
func NewInput(hold time.Duration) *Input {
	return &Input{
		hold:      hold,
		heldUntil: make(map[core.Button]time.Time),
	}
}

// Press registers a key press at now and extends the hold window. Presses
// that arrive before the next frame collapse into one pressed edge.
func (in *Input) Press(b core.Button, now time.Time) {
	in.pressed = in.pressed.With(b)
	in.heldUntil[b] = now.Add(in.hold)
}

// Controls returns the button state for a frame at now and clears the
// pressed edges.
func (in *Input) Controls(now time.Time) core.Controls {
	var c core.Controls
	for b, until := range in.heldUntil {
		if now.Before(until) {
			c.Held = c.Held.With(b)
		} else {
			delete(in.heldUntil, b)
		}
	}
	c.Pressed = in.pressed
	c.Held |= in.pressed
	in.pressed = 0
	return c
}
