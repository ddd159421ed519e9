package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// fixedRand answers every draw with pick(n).
type fixedRand struct {
	pick func(n int) int
}

func (r fixedRand) IntN(n int) int { return r.pick(n) }

var (
	lowRand  = fixedRand{pick: func(int) int { return 0 }}
	highRand = fixedRand{pick: func(n int) int { return n - 1 }}
)

// frame returns the timestamp of tick i at 60 ticks per second (rounded down
// to whole milliseconds).
func frame(i int) time.Duration {
	return time.Duration(i) * 16 * time.Millisecond
}

// gateAt builds a gate by hand, bypassing the spawn timer.
func gateAt(x, width, gapTop, gapSize, playHeight float64) Gate {
	return Gate{
		Top:    Obstacle{X: x, Y: 0, Width: width, Height: gapTop},
		Bottom: Obstacle{X: x, Y: gapTop + gapSize, Width: width, Height: playHeight - gapTop - gapSize},
	}
}

func testObstacles() config.Obstacles {
	return config.DefaultFlappyConfig().Obstacles
}
