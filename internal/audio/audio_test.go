package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// newCapturingSpeaker returns a speaker that hands streamers to the test
// instead of an output device.
func newCapturingSpeaker(captured *[]beep.Streamer) *Speaker {
	s := NewSpeaker(0.5)
	s.initialized = true
	s.sink = func(st beep.Streamer) {
		*captured = append(*captured, st)
	}
	return s
}

// drain streams st to completion, as the speaker goroutine would.
func drain(t *testing.T, st beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := st.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestSpeakerNotInitialized(t *testing.T) {
	s := NewSpeaker(1)

	for _, cue := range []Cue{CueWing, CuePoint, CueDie} {
		if err := s.Play(cue); !errors.Is(err, ErrNotReady) {
			t.Errorf("Play(%s) before Init = %v, expected ErrNotReady", cue, err)
		}
	}

	// Close before Init must not panic
	s.Close()
}

func TestSpeakerBusyUntilCueFinishes(t *testing.T) {
	var captured []beep.Streamer
	s := newCapturingSpeaker(&captured)

	if err := s.Play(CueWing); err != nil {
		t.Fatalf("First Play(wing) failed: %v", err)
	}
	if err := s.Play(CueWing); !errors.Is(err, ErrBusy) {
		t.Errorf("Second Play(wing) = %v, expected ErrBusy", err)
	}

	// Other cues are independent
	if err := s.Play(CuePoint); err != nil {
		t.Errorf("Play(point) while wing in flight failed: %v", err)
	}

	if len(captured) != 2 {
		t.Fatalf("Expected 2 streamers handed to the device, got %d", len(captured))
	}

	if n := drain(t, captured[0]); n == 0 {
		t.Error("Wing cue produced no samples")
	}

	if err := s.Play(CueWing); err != nil {
		t.Errorf("Play(wing) after the first finished = %v, expected nil", err)
	}
}

func TestSpeakerUnknownCue(t *testing.T) {
	var captured []beep.Streamer
	s := newCapturingSpeaker(&captured)

	if err := s.Play(Cue(42)); !errors.Is(err, ErrUnknownCue) {
		t.Errorf("Play(42) = %v, expected ErrUnknownCue", err)
	}
	if len(captured) != 0 {
		t.Errorf("Unknown cue should not reach the device, got %d streamers", len(captured))
	}
}

func TestCueStreamersFinish(t *testing.T) {
	for _, cue := range []Cue{CueWing, CuePoint, CueDie} {
		t.Run(cue.String(), func(t *testing.T) {
			st, err := cueStreamer(sampleRate, cue)
			if err != nil {
				t.Fatalf("cueStreamer(%s) failed: %v", cue, err)
			}
			n := drain(t, st)
			if n == 0 || n > sampleRate.N(time.Second) {
				t.Errorf("cue %s produced %d samples, expected a short non-empty cue", cue, n)
			}
		})
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	if err := p.Play(CueDie); err != nil {
		t.Errorf("Nop.Play() = %v, expected nil", err)
	}
}

func TestCueString(t *testing.T) {
	tests := []struct {
		cue      Cue
		expected string
	}{
		{CueWing, "wing"},
		{CuePoint, "point"},
		{CueDie, "die"},
		{Cue(7), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.cue.String(); got != tc.expected {
			t.Errorf("Cue(%d).String() = %q, expected %q", tc.cue, got, tc.expected)
		}
	}
}
