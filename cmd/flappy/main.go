// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy sim               - Run a headless simulation
//	flappy runs              - List recorded runs
//	flappy replay <id>       - Re-simulate a recorded run
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--db <path>         - Set database path (default: ~/.flappy/runs.db)
//	--log-file <path>   - Set log file for the terminal UI (default: ~/.flappy/flappy.log)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Shared by play, serve and sim
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal",
	Long: `Flappy is a terminal take on the classic one-button game: the bird falls,
you flap, and every pipe you clear scores a point.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation
  runs     - List recorded runs
  replay   - Re-simulate a recorded run

Examples:
  flappy play
  flappy play --record --seed 42
  flappy serve --ssh :2222
  flappy sim --frames 3600 --jump-every 24
  flappy replay 3`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file for the terminal UI")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger creates a logger at the level chosen by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// fileLogger logs to --log-file, since the terminal belongs to the game.
// If the file cannot be opened, logging is discarded.
func fileLogger(prefix string) (*log.Logger, func()) {
	path, err := expandHome(flagLogFile)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	return newLogger(f, prefix), func() { f.Close() }
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
