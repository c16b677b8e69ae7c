// Package flappy implements the simulation core of a Flappy Bird-style game.
// The actor falls under gravity, jumps on command and must pass through the
// gaps of obstacles scrolling in from the right. One point is awarded per
// obstacle cleared; touching a barrier or the floor ends the run.
//
// A Session owns all run state. The host drives it by calling Frame (with
// display timestamps) or Step (with elapsed seconds) once per display frame;
// the session never schedules itself and never blocks.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the externally visible run state.
type State struct {
	Phase Phase
	Score int
	Frame int
}

// StepResult is returned after every frame step.
type StepResult struct {
	State  State
	Passed int  // Obstacles cleared during this step
	Ended  bool // The run ended during this step
}

// FrameInput is one recorded step: the clamped delta and whether a jump
// was accepted since the previous step.
type FrameInput struct {
	Delta float64
	Jump  bool
}

// Session is a single game session: actor, obstacles, score and the state
// machine gating them.
type Session struct {
	cfg     config.FlappyConfig
	world   World
	actor   Actor
	field   *ObstacleField
	machine Machine
	pacer   FramePacer

	score        int
	frame        int
	groundOffset float64
	seed         int64

	jumped bool         // Jump accepted since the last step
	trace  []FrameInput // Inputs of the current run

	player audio.Player
	logger *log.Logger
}

// NewSession creates an idle session. A nil player mutes the session and a
// nil logger discards log output.
func NewSession(cfg config.FlappyConfig, seed int64, player audio.Player, logger *log.Logger) *Session {
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := NewWorld(cfg.World)
	return &Session{
		cfg:    cfg,
		world:  world,
		actor:  NewActor(cfg.Actor),
		field:  NewObstacleField(seed, world, cfg.Obstacles),
		seed:   seed,
		player: player,
		logger: logger,
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Seed returns the seed used by the current (or next) run.
func (s *Session) Seed() int64 {
	return s.seed
}

// SetSeed changes the seed used from the next StartGame on.
func (s *Session) SetSeed(seed int64) {
	s.seed = seed
}

// StartGame begins a run from Idle or restarts one from Over, resetting the
// actor, obstacles, score, frame counter and frame pacing baseline.
// It is ignored while a run is in progress.
func (s *Session) StartGame() {
	if !s.machine.Start() {
		return
	}

	s.actor = NewActor(s.cfg.Actor)
	s.field.Reset(s.seed)
	s.pacer.Reset()
	s.score = 0
	s.frame = 0
	s.groundOffset = 0
	s.jumped = false
	s.trace = s.trace[:0]

	s.logger.Info("run started", "seed", s.seed)
}

// Jump applies the jump impulse. Ignored unless a run is in progress.
func (s *Session) Jump() {
	if !s.machine.Running() {
		return
	}
	s.actor.Jump()
	s.jumped = true
	s.playCue(audio.CueWing)
}

// Apply dispatches the commands collected since the last frame.
func (s *Session) Apply(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		s.StartGame()
	}
	if in.Has(core.ActionJump) {
		s.Jump()
	}
}

// Frame runs one step using the time elapsed since the previous frame.
// Frames delivered outside a run only keep the pacer idle.
func (s *Session) Frame(now time.Time) StepResult {
	if !s.machine.Running() {
		return StepResult{State: s.State()}
	}
	return s.Step(s.pacer.Delta(now))
}

// Step advances the run by delta seconds: physics, then obstacles, then
// collision and scoring. It is a no-op outside a run.
func (s *Session) Step(delta float64) StepResult {
	if !s.machine.Running() {
		return StepResult{State: s.State()}
	}

	delta = core.ClampF(delta, 0, MaxDelta)
	s.trace = append(s.trace, FrameInput{Delta: delta, Jump: s.jumped})
	s.jumped = false

	floorHit := s.actor.Advance(delta, s.world)
	s.field.Tick(s.frame, delta)
	verdict := Evaluate(s.actor, s.field.Obstacles(), s.field.Width(), s.cfg.Collision.Inset)

	for i := 0; i < verdict.Passed; i++ {
		s.score++
		s.playCue(audio.CuePoint)
	}

	s.scrollGround()
	s.frame++

	result := StepResult{Passed: verdict.Passed}
	switch {
	case floorHit:
		result.Ended = s.end("floor")
	case verdict.Hit:
		result.Ended = s.end("obstacle")
	}
	result.State = s.State()
	return result
}

// end performs the Running -> Over transition once per run.
func (s *Session) end(cause string) bool {
	if !s.machine.End() {
		return false
	}
	s.playCue(audio.CueDie)
	s.logger.Info("run over", "score", s.score, "frames", s.frame, "cause", cause)
	return true
}

// scrollGround moves the ground band; it wraps every tile width.
func (s *Session) scrollGround() {
	s.groundOffset -= s.cfg.World.GroundSpeed
	if tile := s.cfg.World.GroundTileWidth; tile > 0 && s.groundOffset <= -tile {
		s.groundOffset = 0
	}
}

// playCue fires a cue; failures are logged and dropped.
func (s *Session) playCue(cue audio.Cue) {
	if err := s.player.Play(cue); err != nil {
		s.logger.Debug("cue playback failed", "cue", cue, "err", err)
	}
}

// State returns the current run state.
func (s *Session) State() State {
	return State{
		Phase: s.machine.Phase(),
		Score: s.score,
		Frame: s.frame,
	}
}

// Trace returns a copy of the inputs recorded for the current run.
func (s *Session) Trace() []FrameInput {
	out := make([]FrameInput, len(s.trace))
	copy(out, s.trace)
	return out
}
