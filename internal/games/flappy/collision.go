package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Verdict is the outcome of one detector pass.
type Verdict struct {
	Passed int  // Obstacles scored this pass
	Hit    bool // Actor collided with an obstacle
}

// Evaluate scores obstacles the actor has cleared and tests it against every
// barrier. An obstacle is cleared once its right edge is left of the actor's
// left edge; it is scored at most once. The actor's box is shrunk by inset
// on all sides before the overlap test.
func Evaluate(a Actor, obstacles []Obstacle, width, inset float64) Verdict {
	var v Verdict
	box := a.Box().Inset(inset)

	for i := range obstacles {
		o := &obstacles[i]

		if !o.Scored && o.X+width < a.X {
			o.Scored = true
			v.Passed++
		}

		column := core.NewRectF(o.X, 0, width, 0)
		if box.OverlapsX(column) && (box.Y < o.Top || box.Bottom() > o.Bottom) {
			v.Hit = true
		}
	}

	return v
}
