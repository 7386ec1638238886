// Package gui runs a PicoVaders session in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/platform"
	"github.com/vovakirdan/picovaders/internal/storage"
	"github.com/vovakirdan/picovaders/internal/vaders"
)

// Options configures a window session.
type Options struct {
	Config config.VadersConfig
	FPS    int // Updates per second; 0 keeps Ebitengine's default
	Scale  int // Window pixels per logical pixel

	// Store enables the frame log when non-nil.
	Store *storage.Store
	User  string

	Logger *log.Logger
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session *vaders.Session
	canvas  *Canvas
	monitor *platform.Monitor
	width   int
	height  int

	last  time.Time
	frame uint32
}

// NewGame creates a game with a fresh session.
func NewGame(opts Options) *Game {
	return &Game{
		session: vaders.NewSession(opts.Config),
		canvas:  NewCanvas(),
		monitor: platform.NewMonitor(opts.Logger, opts.Store, "gui", opts.User),
		width:   opts.Config.Screen.Width,
		height:  opts.Config.Screen.Height,
		last:    time.Now(),
	}
}

// Update implements ebiten.Game. It advances the session by the wall-clock
// time since the previous update.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	delta := platform.DeltaMS(now.Sub(g.last))
	g.last = now

	g.session.Advance(delta, readControls(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	g.frame++
	g.monitor.Observe(delta, g.session.Snapshot())
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.session.Render(g.frame, g.canvas)
}

// Layout implements ebiten.Game. The playfield has a fixed logical size and
// Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close flushes the frame log.
func (g *Game) Close() error {
	return g.monitor.Close()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 3
	}
	game := NewGame(opts)

	ebiten.SetWindowSize(game.width*opts.Scale, game.height*opts.Scale)
	ebiten.SetWindowTitle("PicoVaders")
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	err := ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return errors.Join(err, game.Close())
}
