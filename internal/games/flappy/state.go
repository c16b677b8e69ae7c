package flappy

// Phase is the run state tag.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start
	PhaseRunning              // Simulation steps execute, input accepted
	PhaseOver                 // Frozen, only a restart is accepted
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Machine sequences Idle -> Running -> Over -> Running.
// There is no transition from Idle straight to Over.
type Machine struct {
	phase Phase
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Running reports whether simulation steps may execute.
func (m *Machine) Running() bool {
	return m.phase == PhaseRunning
}

// Start moves to Running from Idle or Over and reports whether it did.
func (m *Machine) Start() bool {
	if m.phase == PhaseRunning {
		return false
	}
	m.phase = PhaseRunning
	return true
}

// End moves Running to Over. It returns false on every other phase, so
// terminal side effects guarded by it fire once per run.
func (m *Machine) End() bool {
	if m.phase != PhaseRunning {
		return false
	}
	m.phase = PhaseOver
	return true
}
