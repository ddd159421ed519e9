// Package headless drives a flappy session without a terminal or window.
// Time comes from a fixed-step clock, so runs are reproducible for a given
// seed and policy.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const (
	defaultTickRate = 60
	defaultMaxTicks = 60 * 60
)

// Policy decides, before each step, whether the avatar should jump.
type Policy func(snap flappy.Snapshot) bool

// JumpEvery returns a policy that jumps on every n-th tick.
// n <= 0 never jumps.
func JumpEvery(n int) Policy {
	return func(snap flappy.Snapshot) bool {
		return n > 0 && snap.Tick%uint64(n) == 0
	}
}

// Autopilot returns a policy that keeps the avatar just above the bottom of
// the next gap, or above the middle of the play area while no gate is ahead.
func Autopilot() Policy {
	const clearance = 10

	return func(snap flappy.Snapshot) bool {
		target := snap.Bounds.H / 2
		if g, ok := snap.NextGate(); ok {
			target = g.GapBottom()
		}

		a := snap.Avatar
		next := a.Y + a.Height + a.Velocity + a.Gravity
		return next >= target-clearance
	}
}

// Options configures a headless run.
type Options struct {
	TickRate int    // Simulated ticks per second, defaults to 60
	MaxTicks int    // Upper bound on steps, defaults to one simulated minute
	Policy   Policy // Jump decision, defaults to never jumping
}

// Result summarizes a finished run.
type Result struct {
	Score    int
	Ticks    uint64
	GameOver bool
	Elapsed  time.Duration // Simulated time of the last step
}

// Run starts a new run on s, superseding any run in progress, and steps it
// until game over, MaxTicks or cancellation of ctx.
func Run(ctx context.Context, s *flappy.Session, opts Options) (Result, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = defaultTickRate
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = defaultMaxTicks
	}
	if opts.Policy == nil {
		opts.Policy = JumpEvery(0)
	}

	var res Result
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("headless run interrupted: %w", err)
	}
	if _, err := s.Start(0); err != nil {
		return res, err
	}

	interval := time.Second / time.Duration(opts.TickRate)
	in := core.NewInputFrame()

	for i := range opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("headless run interrupted: %w", err)
		}

		now := time.Duration(i) * interval
		in.Clear()
		if opts.Policy(s.Snapshot()) {
			in.Set(core.ActionJump)
		}

		st, err := s.Step(in, now)
		if err != nil {
			return res, err
		}

		res.Score = st.Score
		res.GameOver = st.GameOver
		res.Ticks = s.Snapshot().Tick
		res.Elapsed = now

		if st.GameOver {
			break
		}
	}
	return res, nil
}
