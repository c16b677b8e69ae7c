package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSimFrames    int
	flagSimJumpEvery int
	flagSimRecord    bool
	flagSimRender    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI at a fixed step of 1/fps seconds.

The bot flaps every --jump-every frames (0 never flaps). The run stops when
it ends or after --frames steps, and the final state is printed.

Examples:
  flappy sim
  flappy sim --frames 3600 --jump-every 24 --seed 7
  flappy sim --jump-every 22 --record
  flappy sim --render`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Flap every N frames (0 = never)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the run to the database")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame as text")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "flappy-sim")

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	delta := 1.0 / float64(fps)

	session := flappy.NewSession(cfg, seed, audio.Nop{}, logger)
	session.StartGame()

	for i := 0; i < flagSimFrames; i++ {
		if flagSimJumpEvery > 0 && i%flagSimJumpEvery == 0 {
			session.Jump()
		}
		if res := session.Step(delta); res.Ended {
			break
		}
	}

	st := session.State()
	fmt.Printf("phase=%s score=%d frames=%d seed=%d\n", st.Phase, st.Score, st.Frame, seed)

	if flagSimRender {
		rt := core.DefaultConfig()
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		session.Render(screen)
		fmt.Println(screen.String())
	}

	if flagSimRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := tui.RecordRun(store, session)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
			return
		}
		fmt.Printf("recorded as run #%d\n", id)
	}
}
