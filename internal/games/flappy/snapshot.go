package flappy

// Tilt is the actor's visual pitch, derived from its velocity.
type Tilt int

const (
	TiltLevel Tilt = iota
	TiltUp         // Rising fast
	TiltDown       // Falling fast
)

// tiltThreshold is the speed beyond which the actor visibly pitches.
const tiltThreshold = 5

// Snapshot is a read-only copy of everything a renderer needs.
// Mutating it has no effect on the session.
type Snapshot struct {
	Phase         Phase
	Score         int
	Frame         int
	World         World
	Actor         Actor
	Obstacles     []Obstacle
	ObstacleWidth float64
	GroundOffset  float64
	FlapFrame     int // 0..2 wing animation phase
	Tilt          Tilt
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.field.Obstacles()))
	copy(obstacles, s.field.Obstacles())

	return Snapshot{
		Phase:         s.machine.Phase(),
		Score:         s.score,
		Frame:         s.frame,
		World:         s.world,
		Actor:         s.actor,
		Obstacles:     obstacles,
		ObstacleWidth: s.field.Width(),
		GroundOffset:  s.groundOffset,
		FlapFrame:     flapFrame(s.frame, s.cfg.Actor.AnimationSpeed),
		Tilt:          tiltFor(s.actor.Velocity),
	}
}

func flapFrame(frame, speed int) int {
	if speed <= 0 {
		return 0
	}
	return (frame / speed) % 3
}

func tiltFor(velocity float64) Tilt {
	switch {
	case velocity < -tiltThreshold:
		return TiltUp
	case velocity > tiltThreshold:
		return TiltDown
	default:
		return TiltLevel
	}
}
