// vaders plays PicoVaders, a small Space-Invaders style arcade game, in the
// terminal, in a desktop window or over SSH.
//
// Usage:
//
//	vaders play              - Play in the terminal
//	vaders gui               - Play in a desktop window
//	vaders serve             - Start SSH server for remote play
//	vaders frames [session]  - Show recorded frame-log sessions
//	vaders config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60)
//	--config <path>  - Load game tuning from a YAML file
//	--db <path>      - Record frames to a sqlite database
//	--log <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/picovaders/internal/config"
	"github.com/vovakirdan/picovaders/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vaders",
	Short: "PicoVaders - Space Invaders for terminals and windows",
	Long: `PicoVaders is a tiny Space-Invaders style arcade game. The same
simulation runs in your terminal, in a desktop window, or over SSH.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  frames   - Show recorded frame-log sessions
  config   - Print the default game config

Examples:
  vaders play
  vaders gui --fps 120
  vaders play --db ~/.picovaders/frames.db
  vaders serve --ssh :2222
  vaders frames --db ~/.picovaders/frames.db`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to frame-log database (empty disables recording)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to debug log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config or exits.
func loadConfig() config.VadersConfig {
	cfg, err := config.LoadVaders(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the frame log when --db is set. A database that cannot be
// opened only disables recording.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open frame log: %v\n", err)
		return nil
	}
	return store
}

// openLogger writes to the --log file at debug level, or to fallback at info
// level when no file is given.
func openLogger(prefix string, fallback io.Writer) (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.NewWithOptions(fallback, log.Options{
			ReportTimestamp: true,
			Prefix:          prefix,
		}), func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
