package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/picovaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Z          - Fire
  X/Enter          - Start
  Ctrl+S           - Save a text screenshot
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Terminals report no key releases, so a key counts as held for a short
window after each press (input.hold_window_ms in the config).

Examples:
  vaders play
  vaders play --fps 30
  vaders play --config ./my-vaders.yaml --log ./vaders.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The playfield needs one column per 4 pixels and one row per 8, plus
	// the status and help lines.
	needW := (cfg.Screen.Width + tui.CellW - 1) / tui.CellW
	needH := (cfg.Screen.Height+tui.CellH-1)/tui.CellH + 2
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the playfield needs %dx%d\n", w, h, needW, needH)
	}

	logger, closeLog := openLogger("vaders", io.Discard)
	defer closeLog()

	store := openStore()

	user := os.Getenv("USER")
	runErr := tui.Run(tui.Options{
		Config:   cfg,
		FPS:      flagFPS,
		Store:    store,
		Frontend: "tui",
		User:     user,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
