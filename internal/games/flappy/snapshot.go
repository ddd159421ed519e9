package flappy

import (
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Run    RunID
	Tick   uint64
	State  State
	Score  int
	Bounds core.Size
	Avatar Avatar
	Gates  []Gate
}

// Obstacles returns the snapshot's obstacles as top, bottom pairs.
func (s Snapshot) Obstacles() []Obstacle {
	out := make([]Obstacle, 0, 2*len(s.Gates))
	for _, g := range s.Gates {
		out = append(out, g.Top, g.Bottom)
	}
	return out
}

// NextGate returns the oldest gate the avatar has not yet cleared.
func (s Snapshot) NextGate() (Gate, bool) {
	for _, g := range s.Gates {
		if g.Right() >= s.Avatar.X {
			return g, true
		}
	}
	return Gate{}, false
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Run:    s.run,
		Tick:   s.tick,
		State:  s.state,
		Score:  s.GameState().Score,
		Bounds: s.bounds,
		Avatar: s.avatar,
		Gates:  slices.Clone(s.gates.Gates()),
	}
}
