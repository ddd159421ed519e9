// Package window hosts a flappy session in a desktop window with ebiten.
// The window build needs the ebiten build tag; without it Run reports
// ErrUnavailable.
package window

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the 'ebiten' tag")

// Options configures the window host.
type Options struct {
	TickRate int         // Updates per second, defaults to 60
	Title    string      // Window title
	Logger   *log.Logger // Optional
}

// Palette used by the window renderer.
var (
	skyColor    = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor   = color.RGBA{R: 30, G: 200, B: 15, A: 255}
	capColor    = color.RGBA{R: 20, G: 140, B: 10, A: 255}
	avatarColor = color.RGBA{R: 250, G: 210, B: 40, A: 255}
	textColor   = color.White
)

// capHeight is the height of the darker band at each pipe's open end.
const capHeight = 12

// pressed is the set of triggers seen during one update.
type pressed struct {
	jump  bool // Space, up, W, mouse button or touch
	start bool // Enter or R
}

// buildFrame turns raw triggers into an input frame. A jump trigger also
// starts a run when none is active.
func buildFrame(p pressed, state flappy.State) core.InputFrame {
	in := core.NewInputFrame()
	if p.start || (p.jump && state != flappy.StateRunning) {
		in.Set(core.ActionStart)
	}
	if p.jump {
		in.Set(core.ActionJump)
	}
	return in
}

// statusLine returns the text shown in the middle of the window, or "" while
// a run is in progress.
func statusLine(snap flappy.Snapshot) string {
	switch snap.State {
	case flappy.StateIdle:
		return "press space to start"
	case flappy.StateOver:
		return "game over - press space to retry"
	default:
		return ""
	}
}
