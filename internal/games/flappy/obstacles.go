package flappy

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the source used to place gaps. *rand.Rand from math/rand/v2
// satisfies it; tests plug in fixed sequences.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed is replaced by the
// current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Obstacle is one solid pipe segment.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Passed        bool // The avatar's left edge is past this obstacle's right edge
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// Gate is a top and bottom obstacle moving in lockstep around a gap.
type Gate struct {
	Top    Obstacle
	Bottom Obstacle
	Scored bool // Set once the gate has added to the score
}

// GapTop returns the y-coordinate where the opening starts.
func (g Gate) GapTop() float64 {
	return g.Top.Y + g.Top.Height
}

// GapBottom returns the y-coordinate where the opening ends.
func (g Gate) GapBottom() float64 {
	return g.Bottom.Y
}

// Right returns the trailing edge shared by both obstacles.
func (g Gate) Right() float64 {
	return g.Top.Right()
}

// ObstacleManager spawns, moves and retires gates. Gates are kept in spawn
// order, oldest first.
type ObstacleManager struct {
	gates     []Gate
	flat      []Obstacle
	rng       Rand
	cfg       config.Obstacles
	lastSpawn time.Duration
}

// NewObstacleManager creates an empty manager.
func NewObstacleManager(cfg config.Obstacles, rng Rand) *ObstacleManager {
	return &ObstacleManager{
		gates: make([]Gate, 0, 8),
		flat:  make([]Obstacle, 0, 16),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset drops all gates and restarts the spawn timer at now.
func (m *ObstacleManager) Reset(now time.Duration) {
	m.gates = m.gates[:0]
	m.lastSpawn = now
}

// MaybeSpawn adds a gate at the right edge of the play area once more than
// the spawn interval has elapsed since the previous one. The gap is drawn
// uniformly from [margin, height-gap-margin]. If the bounds cannot hold a gate
// (too small or not finite) nothing is spawned and the timer keeps running.
func (m *ObstacleManager) MaybeSpawn(now time.Duration, bounds core.Size) bool {
	if now-m.lastSpawn <= m.cfg.SpawnInterval {
		return false
	}

	span := math.Floor(bounds.H - m.cfg.GapSize - 2*m.cfg.MinMargin)
	if !(span >= 0 && span < math.MaxInt32) || !(bounds.W > 0) || math.IsInf(bounds.W, 0) {
		return false
	}

	gapStart := m.cfg.MinMargin + float64(m.rng.IntN(int(span)+1))
	gapEnd := gapStart + m.cfg.GapSize

	m.gates = append(m.gates, Gate{
		Top: Obstacle{
			X:      bounds.W,
			Y:      0,
			Width:  m.cfg.Width,
			Height: gapStart,
		},
		Bottom: Obstacle{
			X:      bounds.W,
			Y:      gapEnd,
			Width:  m.cfg.Width,
			Height: bounds.H - gapEnd,
		},
	})
	m.lastSpawn = now
	return true
}

// Advance moves every gate left by the configured speed and marks obstacles
// the avatar has cleared. Returns the number of gates scored by this call;
// each gate scores at most once.
func (m *ObstacleManager) Advance(avatarX float64) int {
	scored := 0
	for i := range m.gates {
		g := &m.gates[i]
		g.Top.X -= m.cfg.Speed
		g.Bottom.X -= m.cfg.Speed

		markPassed(&g.Top, avatarX)
		markPassed(&g.Bottom, avatarX)

		if !g.Scored && (g.Top.Passed || g.Bottom.Passed) {
			g.Scored = true
			scored++
		}
	}
	return scored
}

func markPassed(o *Obstacle, avatarX float64) {
	if !o.Passed && o.Right() < avatarX {
		o.Passed = true
	}
}

// RetireOffscreen drops gates from the front while their trailing edge is
// left of x = 0. Returns the number of gates removed.
func (m *ObstacleManager) RetireOffscreen() int {
	retired := 0
	for len(m.gates) > 0 && m.gates[0].Right() < 0 {
		m.gates = m.gates[1:]
		retired++
	}
	return retired
}

// Gates returns the active gates, oldest first. The slice is owned by the
// manager and is only valid until the next update.
func (m *ObstacleManager) Gates() []Gate {
	return m.gates
}

// Obstacles returns every active obstacle as top, bottom pairs in spawn
// order. The slice is reused between calls.
func (m *ObstacleManager) Obstacles() []Obstacle {
	m.flat = m.flat[:0]
	for _, g := range m.gates {
		m.flat = append(m.flat, g.Top, g.Bottom)
	}
	return m.flat
}
