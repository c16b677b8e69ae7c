package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagMute   bool
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W/Click - Flap
  Enter/R          - Start / restart (Space also starts)
  ?                - Toggle help line
  Q/Ctrl+C         - Quit

Examples:
  flappy play
  flappy play --mute
  flappy play --record --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record finished runs to the database")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	logger, closeLog := fileLogger("flappy")
	defer closeLog()

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var player audio.Player = audio.Nop{}
	if !flagMute && cfg.Audio.Enabled {
		sp := audio.NewSpeaker(cfg.Audio.Volume)
		if err := sp.Init(); err != nil {
			// Keep the speaker: its cues fail with ErrNotReady and get logged
			logger.Warn("audio unavailable, playing muted", "err", err)
		} else {
			defer sp.Close()
		}
		player = sp
	}

	session := flappy.NewSession(cfg, flagSeed, player, logger)

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
			logger.Warn("recording disabled", "err", err)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	if err := tui.Run(session, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
