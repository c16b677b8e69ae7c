package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// RunRecorder persists finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(seed int64, configYAML string, score int, frames []storage.Frame) (int64, error)
}

// RecordRun saves the session's last run together with the seed and the
// configuration it was played with.
func RecordRun(rec RunRecorder, s *flappy.Session) (int64, error) {
	data, err := config.Marshal(s.Config())
	if err != nil {
		return 0, err
	}

	trace := s.Trace()
	frames := make([]storage.Frame, len(trace))
	for i, in := range trace {
		frames[i] = storage.Frame{Delta: in.Delta, Jump: in.Jump}
	}

	return rec.SaveRun(s.Seed(), string(data), s.State().Score, frames)
}

// ReplayRun re-simulates a recorded run with its stored configuration.
func ReplayRun(run *storage.Run) (flappy.Result, error) {
	cfg, err := config.Parse([]byte(run.ConfigYAML))
	if err != nil {
		return flappy.Result{}, fmt.Errorf("run %d: %w", run.ID, err)
	}

	inputs := make([]flappy.FrameInput, len(run.Frames))
	for i, f := range run.Frames {
		inputs[i] = flappy.FrameInput{Delta: f.Delta, Jump: f.Jump}
	}

	return flappy.Replay(cfg, run.Seed, inputs), nil
}
