// Package audio plays the game's sound cues.
//
// Playback is best-effort: callers fire a cue and move on. A Player never
// blocks the frame step, and its errors are meant to be logged, not handled.
package audio

import "errors"

// Cue identifies a sound effect.
type Cue int

const (
	CueWing  Cue = iota // Actor jumped
	CuePoint            // Obstacle cleared
	CueDie              // Run ended
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueWing:
		return "wing"
	case CuePoint:
		return "point"
	case CueDie:
		return "die"
	default:
		return "unknown"
	}
}

var (
	// ErrNotReady is returned when the output device was never initialized.
	ErrNotReady = errors.New("audio: player not initialized")
	// ErrBusy is returned when the same cue is still in flight.
	ErrBusy = errors.New("audio: cue already playing")
	// ErrUnknownCue is returned for cues without a generator.
	ErrUnknownCue = errors.New("audio: unknown cue")
)

// Player plays sound cues without blocking.
type Player interface {
	Play(cue Cue) error
}

// Nop is a Player that discards every cue. Used for muted and remote sessions.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Cue) error { return nil }
