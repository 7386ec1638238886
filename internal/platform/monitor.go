// Package platform holds what every PicoVaders frontend shares: frame timing
// and the per-frame bookkeeping a host does after advancing its session.
package platform

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picovaders/internal/storage"
	"github.com/vovakirdan/picovaders/internal/vaders"
)

// Monitor follows a session from its host loop. It logs screen changes and
// game results, and feeds the frame log when one is attached.
type Monitor struct {
	logger    *log.Logger
	recorder  *storage.Recorder
	screen    vaders.ScreenID
	lastScore uint32
}

// NewMonitor creates a monitor. A nil logger discards events; a nil store
// disables the frame log. Failing to open a frame log session is logged and
// leaves the monitor without one.
func NewMonitor(logger *log.Logger, store *storage.Store, frontend, user string) *Monitor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Monitor{logger: logger}

	if store != nil {
		rec, err := storage.NewRecorder(store, frontend, user, storage.DefaultBatchSize)
		if err != nil {
			logger.Warn("frame log disabled", "error", err)
		} else {
			m.recorder = rec
			logger.Debug("frame log session started", "session", rec.SessionID(), "frontend", frontend)
		}
	}
	return m
}

// Observe records one advanced frame.
func (m *Monitor) Observe(delta uint32, snap vaders.Snapshot) {
	if snap.Screen != m.screen {
		m.logger.Debug("screen changed", "from", m.screen, "to", snap.Screen)
		if m.screen == vaders.ScreenPlay {
			m.logger.Info("game over", "score", m.lastScore)
		}
		m.screen = snap.Screen
	}
	if snap.Screen == vaders.ScreenPlay {
		m.lastScore = snap.Score
	}

	if m.recorder == nil {
		return
	}
	err := m.recorder.Record(storage.Frame{
		Frame:   snap.Frames,
		DeltaMS: delta,
		Screen:  snap.Screen.String(),
		Score:   snap.Score,
	})
	if err != nil {
		m.logger.Warn("frame log write failed", "error", err)
	}
}

// Screen returns the screen seen on the last observed frame.
func (m *Monitor) Screen() vaders.ScreenID {
	return m.screen
}

// Recorder returns the frame log recorder, or nil when there is none.
func (m *Monitor) Recorder() *storage.Recorder {
	return m.recorder
}

// Logger returns the monitor's logger.
func (m *Monitor) Logger() *log.Logger {
	return m.logger
}

// Close flushes the frame log. It is safe to call more than once.
func (m *Monitor) Close() error {
	if m.recorder == nil {
		return nil
	}
	if err := m.recorder.Close(); err != nil {
		m.logger.Warn("frame log flush failed", "error", err)
		return err
	}
	return nil
}

// DeltaMS converts a frame interval to whole milliseconds, saturating.
func DeltaMS(d time.Duration) uint32 {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(ms)
}
