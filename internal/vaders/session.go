package vaders

import (
	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/core"
)

// Session is one running game: a sequencer plus frame bookkeeping. A host
// calls Advance then Render once per frame from a single goroutine.
type Session struct {
	seq       *Sequencer
	frames    uint64
	elapsedMS uint64
	swaps     int
}

// NewSession creates a session that opens on the splash screen.
func NewSession(cfg config.VadersConfig) *Session {
	return &Session{seq: NewSequencer(cfg)}
}

// Advance runs one frame of simulation with the wall-clock delta since the
// previous frame.
func (s *Session) Advance(deltaMS uint32, in core.Controls) {
	if s.seq.Advance(deltaMS, in) {
		s.swaps++
	}
	s.frames++
	s.elapsedMS += uint64(deltaMS)
}

// Render draws the current frame. frame is informational only.
func (s *Session) Render(frame uint32, c core.Canvas) {
	s.seq.Render(c)
}

// Screen returns the ID of the running screen. Before the first Advance
// it is the splash screen.
func (s *Session) Screen() ScreenID {
	if cur := s.seq.Current(); cur != nil {
		return cur.ID()
	}
	return ScreenSplash
}

// Request forces a screen swap on the next Advance.
func (s *Session) Request(id ScreenID) {
	s.seq.Request(id)
}

// Snapshot captures the observable session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:    s.Screen(),
		Requested: s.seq.Requested(),
		Frames:    s.frames,
		ElapsedMS: s.elapsedMS,
		Swaps:     s.swaps,
	}

	switch cur := s.seq.Current().(type) {
	case *Play:
		snap.fillPlay(cur)
	case *Title:
		snap.TitleOffset = cur.Offset()
	case *Splash:
		snap.SplashMS = cur.Elapsed()
	}
	return snap
}
