package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsBrowse bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent recorded runs.

With --browse, opens an interactive table where Enter replays the selected
run and D deletes it.

Examples:
  flappy runs
  flappy runs --limit 50
  flappy runs --browse`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to list")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Open the interactive runs browser")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunRunsBrowser(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recorded Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play --record' to record one!")
		return
	}

	fmt.Printf("  %-6s  %-6s  %-7s  %-20s  %s\n", "Run", "Score", "Frames", "Seed", "Date")
	fmt.Printf("  %-6s  %-6s  %-7s  %-20s  %s\n", "---", "-----", "------", "----", "----")

	for _, r := range runs {
		fmt.Printf("  %-6d  %-6d  %-7d  %-20d  %s\n",
			r.ID, r.Score, r.FrameCount, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
