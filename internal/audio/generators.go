package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// sweep is a sine tone whose frequency glides linearly from one pitch to
// another with an exponential decay envelope.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	decay    float64
	total    int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration, decay float64) *sweep {
	return &sweep{
		sr:    sr,
		from:  from,
		to:    to,
		decay: decay,
		total: sr.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		t := float64(s.pos) / float64(s.sr)

		sample := 0.4 * math.Exp(-t*s.decay) * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error {
	return nil
}

// cueStreamer builds a fresh streamer for a cue.
func cueStreamer(sr beep.SampleRate, cue Cue) (beep.Streamer, error) {
	switch cue {
	case CueWing:
		// Short upward chirp
		return newSweep(sr, 420, 780, 90*time.Millisecond, 18), nil
	case CuePoint:
		// Two bright notes
		first, err := generators.SineTone(sr, 988)
		if err != nil {
			return nil, err
		}
		second, err := generators.SineTone(sr, 1319)
		if err != nil {
			return nil, err
		}
		return beep.Seq(
			withGain(beep.Take(sr.N(60*time.Millisecond), first), 0.25),
			withGain(beep.Take(sr.N(120*time.Millisecond), second), 0.25),
		), nil
	case CueDie:
		// Falling thud
		return newSweep(sr, 520, 90, 450*time.Millisecond, 5), nil
	default:
		return nil, ErrUnknownCue
	}
}

// withGain scales a streamer by a linear gain in [0, 1].
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}
