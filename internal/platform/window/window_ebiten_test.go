//go:build ebiten

package window

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

type lowRand struct{}

func (lowRand) IntN(int) int { return 0 }

func newTestGame(t *testing.T, w, h float64) *Game {
	t.Helper()
	s := flappy.NewSession(config.DefaultFlappyConfig(), flappy.WithRand(lowRand{}), flappy.WithBounds(w, h))
	return New(s, Options{})
}

func TestNewDefaults(t *testing.T) {
	g := newTestGame(t, 800, 600)
	if g.tickRate != 60 || g.logger == nil {
		t.Errorf("tickRate=%d logger=%v, want 60 and a logger", g.tickRate, g.logger)
	}
}

func TestLayoutFollowsBounds(t *testing.T) {
	g := newTestGame(t, 800, 600)
	if w, h := g.Layout(1920, 1080); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", w, h)
	}

	g.session.Resize(640, 480)
	if w, h := g.Layout(1920, 1080); w != 640 || h != 480 {
		t.Errorf("Layout after resize = %dx%d, want 640x480", w, h)
	}
}

func TestStepStartsAndJumps(t *testing.T) {
	g := newTestGame(t, 800, 600)

	g.step(pressed{})
	if g.session.State() != flappy.StateIdle {
		t.Fatalf("no input should leave the session idle, got %v", g.session.State())
	}

	g.step(pressed{jump: true})
	if g.session.State() != flappy.StateRunning {
		t.Fatalf("jump should start a run, got %v", g.session.State())
	}
	// Jump impulse -10 plus one tick of gravity.
	if v := g.session.Snapshot().Avatar.Velocity; v != -9.5 {
		t.Errorf("velocity = %v, want -9.5", v)
	}

	g.step(pressed{})
	if tick := g.session.Snapshot().Tick; tick != 2 {
		t.Errorf("tick = %d, want 2", tick)
	}
}

func TestStepKeepsStartError(t *testing.T) {
	g := newTestGame(t, 800, 100)

	g.step(pressed{start: true})
	if !errors.Is(g.err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", g.err)
	}

	g.session.Resize(800, 600)
	g.step(pressed{start: true})
	if g.err != nil || g.session.State() != flappy.StateRunning {
		t.Errorf("start after resize failed: %v", g.err)
	}
}
