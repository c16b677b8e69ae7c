package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Replay a recorded run headlessly with the seed, configuration and inputs
it was recorded with, and check that the recorded score reproduces.

Exits with status 1 if the replayed score differs.

Examples:
  flappy replay 3`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run ID %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.Run(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "No run #%d. Run 'flappy runs' to list recorded runs.\n", id)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		return
	}

	res, err := tui.ReplayRun(run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying run: %v\n", err)
		return
	}

	fmt.Printf("run #%d (seed %d)\n", run.ID, run.Seed)
	fmt.Printf("  recorded: score %d over %d frames\n", run.Score, run.FrameCount)
	fmt.Printf("  replayed: score %d over %d frames (%s)\n", res.Score, res.Frames, res.Phase)

	if res.Score != run.Score {
		fmt.Println("MISMATCH")
		store.Close()
		os.Exit(1)
	}
	fmt.Println("reproduced")
}
