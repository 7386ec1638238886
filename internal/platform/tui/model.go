// Package tui runs a PicoVaders session in the terminal with Bubble Tea,
// locally or over SSH.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/platform"
	"github.com/vovakirdan/picovaders/internal/storage"
	"github.com/vovakirdan/picovaders/internal/vaders"
)

// Options configures a terminal session.
type Options struct {
	Config config.VadersConfig
	FPS    int

	// Store enables the frame log when non-nil.
	Store    *storage.Store
	Frontend string
	User     string

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// TickMsg asks the model for a host frame.
type TickMsg time.Time

// tickCmd schedules the next host frame.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model running one PicoVaders session.
type Model struct {
	session  *vaders.Session
	canvas   *Canvas
	input    *Input
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	monitor  *platform.Monitor
	fps      int
	interval time.Duration

	last     time.Time
	frame    uint32
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates a model with a fresh session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	m := Model{
		session:  vaders.NewSession(opts.Config),
		canvas:   NewCanvas(opts.Config.Screen.Width, opts.Config.Screen.Height),
		input:    NewInput(time.Duration(opts.Config.Input.HoldWindowMS) * time.Millisecond),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		monitor:  platform.NewMonitor(logger, opts.Store, opts.Frontend, opts.User),
		fps:      opts.FPS,
		interval: time.Second / time.Duration(opts.FPS),
		last:     time.Now(),
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		//nolint:errcheck // Close logs its own failure
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.input.Press(b, now)
	}
	return m, nil
}

// handleTick advances the session by the wall-clock time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := platform.DeltaMS(now.Sub(m.last))
	m.last = now

	m.session.Advance(delta, m.input.Controls(now))
	m.frame++
	m.monitor.Observe(delta, m.session.Snapshot())

	return m, tickCmd(m.interval)
}

// Screen returns the screen shown on the last frame.
func (m Model) Screen() vaders.ScreenID {
	return m.monitor.Screen()
}

// Recorder returns the frame log recorder, or nil when there is none.
func (m Model) Recorder() *storage.Recorder {
	return m.monitor.Recorder()
}

// Close flushes the frame log. It is safe to call more than once.
func (m Model) Close() error {
	return m.monitor.Close()
}

// saveScreenshot writes the current frame as text and returns a status line.
func (m Model) saveScreenshot() string {
	m.session.Render(m.frame, m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed: " + err.Error()
	}
	dir := filepath.Join(home, ".picovaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("vaders_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed: " + err.Error()
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.frame, m.canvas)

	status := fmt.Sprintf("%s · frame %d · %d fps", m.Screen(), m.frame, m.fps)
	if m.status != "" {
		status += " · " + m.status
	}
	return renderFrame(m.canvas.Screen(), status, m.help.View(m.keys), m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		//nolint:errcheck // Close logs its own failure
		fm.Close()
	}
	return err
}
