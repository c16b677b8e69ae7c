package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Result summarizes a finished or truncated run.
type Result struct {
	Score  int
	Frames int
	Phase  Phase
}

// Replay re-runs a recorded trace on a fresh, muted session.
// Equal configuration, seed and inputs always produce an equal Result.
// Inputs after the run ends are ignored.
func Replay(cfg config.FlappyConfig, seed int64, inputs []FrameInput) Result {
	s := NewSession(cfg, seed, audio.Nop{}, nil)
	s.StartGame()

	for _, in := range inputs {
		if in.Jump {
			s.Jump()
		}
		if res := s.Step(in.Delta); res.State.Phase != PhaseRunning {
			break
		}
	}

	st := s.State()
	return Result{Score: st.Score, Frames: st.Frame, Phase: st.Phase}
}
