// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling bird alive by flapping through the gaps of
// pipe gates that scroll in from the right.
//
// A Session owns all mutable state. It performs no scheduling: the host
// calls Tick once per frame with a monotonic timestamp and feeds input
// through Jump and Start.
package flappy

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle    State = iota // No session started yet
	StateRunning              // Ticking every frame
	StateOver                 // Halted after a collision, final score available
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// RunID identifies one run of a session. Every successful Start issues a new
// one, so hosts can tag scheduled ticks and drop those of a superseded run.
type RunID uint64

// Option configures a Session.
type Option func(*Session)

// WithRand sets the source used for gap placement.
func WithRand(r Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBounds sets the initial play-area size. Defaults to the configured
// play area.
func WithBounds(width, height float64) Option {
	return func(s *Session) {
		s.bounds = core.Size{W: width, H: height}
	}
}

// Session is the game driver: one avatar, its gates and the score.
type Session struct {
	cfg    config.FlappyConfig
	logger *log.Logger
	rng    Rand
	bounds core.Size

	state  State
	run    RunID
	avatar Avatar
	gates  *ObstacleManager
	score  int
	final  int
	tick   uint64
}

// NewSession creates an idle session.
func NewSession(cfg config.FlappyConfig, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
		bounds: core.Size{W: cfg.PlayArea.Width, H: cfg.PlayArea.Height},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	s.gates = NewObstacleManager(cfg.Obstacles, s.rng)
	s.avatar = newAvatar(cfg, s.bounds.H)
	return s
}

// Start begins a new run at time now, replacing whatever ran before.
// It fails without touching the current run if the configuration cannot
// produce a valid gate in the current play area.
func (s *Session) Start(now time.Duration) (RunID, error) {
	if err := s.cfg.Validate(); err != nil {
		return s.run, err
	}
	if err := s.cfg.ValidateBounds(s.bounds.W, s.bounds.H); err != nil {
		return s.run, fmt.Errorf("cannot start session: %w", err)
	}

	s.run++
	s.avatar = newAvatar(s.cfg, s.bounds.H)
	s.gates.Reset(now)
	s.score = 0
	s.final = 0
	s.tick = 0
	s.state = StateRunning

	s.logger.Debug("session started",
		"run", s.run,
		"width", s.bounds.W,
		"height", s.bounds.H,
	)
	return s.run, nil
}

// Jump applies the jump impulse. It is ignored unless the session is
// running; the return value reports whether it was applied.
func (s *Session) Jump() bool {
	if s.state != StateRunning {
		return false
	}
	s.avatar.Jump()
	return true
}

// Tick advances the simulation by one frame at time now. Outside of
// StateRunning it does nothing.
func (s *Session) Tick(now time.Duration) core.GameState {
	if s.state != StateRunning {
		return s.GameState()
	}

	s.tick++
	s.avatar.ApplyGravity()

	if s.gates.MaybeSpawn(now, s.bounds) {
		s.logger.Debug("gate spawned", "run", s.run, "tick", s.tick, "gates", len(s.gates.Gates()))
	}
	s.score += s.gates.Advance(s.avatar.X)
	s.gates.RetireOffscreen()

	if IsGameOver(s.avatar, s.gates.Obstacles(), s.bounds.H) {
		s.state = StateOver
		s.final = s.score
		s.logger.Info("game over",
			"run", s.run,
			"score", s.final,
			"ticks", s.tick,
		)
	}

	return s.GameState()
}

// Step applies one frame of host input and then ticks. A start request is
// honored only when no run is active.
func (s *Session) Step(in core.InputFrame, now time.Duration) (core.GameState, error) {
	if in.Has(core.ActionStart) && s.state != StateRunning {
		if _, err := s.Start(now); err != nil {
			return s.GameState(), err
		}
	}
	if in.Has(core.ActionJump) {
		s.Jump()
	}
	return s.Tick(now), nil
}

// Resize updates the play area. The new bounds apply from the next tick on;
// gates already on screen keep their geometry.
func (s *Session) Resize(width, height float64) {
	s.bounds = core.Size{W: width, H: height}
}

// Bounds returns the current play-area size.
func (s *Session) Bounds() core.Size {
	return s.bounds
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Run returns the id of the current (or last) run.
func (s *Session) Run() RunID {
	return s.run
}

// Score returns the live score.
func (s *Session) Score() int {
	return s.score
}

// FinalScore returns the score the last run ended with. ok is false unless
// the session is in StateOver.
func (s *Session) FinalScore() (score int, ok bool) {
	return s.final, s.state == StateOver
}

// GameState returns the host-facing summary.
func (s *Session) GameState() core.GameState {
	score := s.score
	if s.state == StateOver {
		score = s.final
	}
	return core.GameState{
		Score:    score,
		Running:  s.state == StateRunning,
		GameOver: s.state == StateOver,
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}
