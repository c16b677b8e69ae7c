package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Frame timing. Tunables are expressed per step at 60 steps per second;
// scaling the elapsed time by FrameRateNormalization keeps the simulation
// independent of the host refresh rate.
const (
	MaxDelta               = 0.1 // Longest step in seconds (tab suspend, stalls)
	FrameRateNormalization = 60.0
)

// normalize clamps a delta in seconds to [0, MaxDelta] and converts it to
// 60 Hz steps.
func normalize(delta float64) float64 {
	return core.ClampF(delta, 0, MaxDelta) * FrameRateNormalization
}

// World is the fixed playfield.
type World struct {
	Width        float64
	Height       float64
	GroundHeight float64
}

// NewWorld builds the playfield from configuration.
func NewWorld(cfg config.FlappyWorld) World {
	return World{
		Width:        cfg.Width,
		Height:       cfg.Height,
		GroundHeight: cfg.GroundHeight,
	}
}

// FloorY returns the y-coordinate of the floor line.
func (w World) FloorY() float64 {
	return w.Height - w.GroundHeight
}

// Actor is the falling, jumping player entity. X never changes after spawn.
type Actor struct {
	X, Y        float64
	Velocity    float64 // Vertical, positive = down
	Width       float64
	Height      float64
	Gravity     float64
	JumpImpulse float64 // Negative = up
}

// NewActor places an actor at its spawn pose with zero velocity.
func NewActor(cfg config.FlappyActor) Actor {
	return Actor{
		X:           cfg.X,
		Y:           cfg.StartY,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Gravity:     cfg.Gravity,
		JumpImpulse: cfg.JumpImpulse,
	}
}

// Box returns the actor's bounding box.
func (a Actor) Box() core.RectF {
	return core.NewRectF(a.X, a.Y, a.Width, a.Height)
}

// Advance integrates gravity and velocity over delta seconds.
// It reports true when the actor reached the floor; the actor is then
// resting on the floor line with zero velocity. The ceiling is a soft stop.
func (a *Actor) Advance(delta float64, w World) (floorHit bool) {
	d := normalize(delta)

	a.Velocity += a.Gravity * d
	a.Y += a.Velocity * d

	if a.Y+a.Height > w.FloorY() {
		a.Y = w.FloorY() - a.Height
		a.Velocity = 0
		floorHit = true
	}

	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	}

	return floorHit
}

// Jump replaces the velocity with the jump impulse.
func (a *Actor) Jump() {
	a.Velocity = a.JumpImpulse
}
