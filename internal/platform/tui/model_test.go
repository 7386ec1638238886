package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/storage"
	"github.com/vovakirdan/picovaders/internal/vaders"
)

// tickFor feeds n frames of step to the model, starting at its last frame time.
func tickFor(m Model, n int, step time.Duration) Model {
	now := m.last
	for range n {
		now = now.Add(step)
		next, _ := m.Update(TickMsg(now))
		m = next.(Model)
	}
	return m
}

func newTestModel(opts Options) Model {
	opts.Config = config.DefaultVadersConfig()
	m := NewModel(opts)
	m.last = time.Unix(1000, 0)
	return m
}

func TestModelRunsScreens(t *testing.T) {
	m := newTestModel(Options{FPS: 30})

	m = tickFor(m, 70, 33*time.Millisecond) // 2310ms
	if m.Screen() != vaders.ScreenTitle {
		t.Fatalf("screen after splash = %v, expected title", m.Screen())
	}

	next, _ := m.Update(runeKey('x'))
	m = next.(Model)
	m = tickFor(m, 2, 33*time.Millisecond)
	if m.Screen() != vaders.ScreenPlay {
		t.Fatalf("screen after start = %v, expected play", m.Screen())
	}

	if view := m.View(); !strings.Contains(view, "SCORE: 000000") {
		t.Errorf("play view should show the score line:\n%s", view)
	}
	if m.frame != 72 {
		t.Errorf("frame = %d, expected 72", m.frame)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(Options{})

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if !m.quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(Options{})

	next, _ := m.Update(runeKey('?'))
	m = next.(Model)
	if !m.help.ShowAll {
		t.Error("? should show full help")
	}
}

func TestModelRecordsFrames(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "frames.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(Options{Store: store, Frontend: "tui", User: "tester"})
	if m.Recorder() == nil {
		t.Fatal("model with a store should record frames")
	}

	m = tickFor(m, 10, 20*time.Millisecond)
	if err := m.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	stats, err := store.DeltaStats(m.Recorder().SessionID())
	if err != nil {
		t.Fatalf("DeltaStats() failed: %v", err)
	}
	if stats.Frames != 10 || stats.MinMS != 20 || stats.MaxMS != 20 {
		t.Errorf("DeltaStats() = %+v, expected 10 frames of 20ms", stats)
	}
}
