package vaders

import (
	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/core"
)

// Sequencer owns the current screen and swaps it when another one is
// requested. A swap always builds a fresh screen; nothing carries over.
type Sequencer struct {
	cfg       config.VadersConfig
	current   Screen
	requested ScreenID
}

// NewSequencer creates a sequencer that starts on the splash screen.
func NewSequencer(cfg config.VadersConfig) *Sequencer {
	return &Sequencer{cfg: cfg, requested: ScreenSplash}
}

// Request asks for a screen to be built on the next Advance.
func (s *Sequencer) Request(id ScreenID) {
	s.requested = id
}

// Requested returns the screen that the next Advance will run.
func (s *Sequencer) Requested() ScreenID {
	return s.requested
}

// Current returns the running screen, or nil before the first Advance.
func (s *Sequencer) Current() Screen {
	return s.current
}

// Advance swaps in the requested screen if needed and advances it.
// It reports whether a swap happened.
func (s *Sequencer) Advance(deltaMS uint32, in core.Controls) bool {
	swapped := false
	if s.current == nil || s.current.ID() != s.requested {
		s.current = s.build(s.requested)
		swapped = true
	}
	s.requested = s.current.Advance(deltaMS, in)
	return swapped
}

// Render draws the current screen, if any.
func (s *Sequencer) Render(c core.Canvas) {
	if s.current != nil {
		s.current.Render(c)
	}
}

func (s *Sequencer) build(id ScreenID) Screen {
	switch id {
	case ScreenTitle:
		return NewTitle(s.cfg)
	case ScreenPlay:
		return NewPlay(s.cfg)
	default:
		return NewSplash(s.cfg)
	}
}
