package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picovaders/internal/platform/gui"
)

var flagScale int

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a window and start a game.

Controls:
  Left/Right, A/D  - Move
  Space/Z          - Fire
  X/Enter          - Start
  Esc/Q            - Quit

Examples:
  vaders gui
  vaders gui --scale 4
  vaders gui --fps 144 --db ~/.picovaders/frames.db`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().IntVar(&flagScale, "scale", 3, "Window pixels per game pixel")
}

func runGUI(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := openLogger("vaders-gui", os.Stderr)
	defer closeLog()

	store := openStore()

	logger.Info("starting window", "width", cfg.Screen.Width*flagScale, "height", cfg.Screen.Height*flagScale, "fps", flagFPS)
	runErr := gui.Run(gui.Options{
		Config: cfg,
		FPS:    flagFPS,
		Scale:  flagScale,
		Store:  store,
		User:   os.Getenv("USER"),
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
