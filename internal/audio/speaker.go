package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	numCues    = int(CueDie) + 1
)

// Speaker plays cues on the default output device through beep.
// Each cue may have at most one instance in flight; a second Play of the
// same cue before the first finishes returns ErrBusy.
type Speaker struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	sink        func(beep.Streamer)
	initialized bool
	inFlight    [numCues]atomic.Bool
}

// NewSpeaker creates a speaker with a linear volume in [0, 1].
// Init must be called before cues are audible.
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the output device. Calling it twice is a no-op.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(s.mixer)

	s.sink = func(st beep.Streamer) {
		speaker.Lock()
		s.mixer.Add(st)
		speaker.Unlock()
	}
	s.initialized = true
	return nil
}

// Play implements Player.
func (s *Speaker) Play(cue Cue) error {
	if cue < 0 || int(cue) >= numCues {
		return ErrUnknownCue
	}

	s.mu.Lock()
	sink := s.sink
	ready := s.initialized
	volume := s.volume
	s.mu.Unlock()

	if !ready {
		return ErrNotReady
	}
	if !s.inFlight[cue].CompareAndSwap(false, true) {
		return ErrBusy
	}

	st, err := cueStreamer(sampleRate, cue)
	if err != nil {
		s.inFlight[cue].Store(false)
		return err
	}

	// The callback runs on the speaker goroutine with its lock held, so it
	// only touches the atomic flag.
	sink(beep.Seq(withGain(st, volume), beep.Callback(func() {
		s.inFlight[cue].Store(false)
	})))
	return nil
}

// Close silences all cues and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	for i := range s.inFlight {
		s.inFlight[i].Store(false)
	}
	s.initialized = false
	s.sink = nil
}
