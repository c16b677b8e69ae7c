package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// FramePacer turns frame timestamps into clamped deltas.
// The zero value has no baseline; the first timestamp after Reset yields a
// zero delta and becomes the baseline.
type FramePacer struct {
	last    time.Time
	hasLast bool
}

// Delta returns the seconds elapsed since the previous timestamp, clamped to
// [0, MaxDelta].
func (p *FramePacer) Delta(now time.Time) float64 {
	if !p.hasLast {
		p.last = now
		p.hasLast = true
		return 0
	}
	d := now.Sub(p.last).Seconds()
	p.last = now
	return core.ClampF(d, 0, MaxDelta)
}

// Reset clears the baseline. Must be called on every (re)start.
func (p *FramePacer) Reset() {
	p.last = time.Time{}
	p.hasLast = false
}
