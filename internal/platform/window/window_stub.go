//go:build !ebiten

package window

import "github.com/vovakirdan/tui-flappy/internal/games/flappy"

// Run always fails in builds without the ebiten tag.
func Run(*flappy.Session, Options) error {
	return ErrUnavailable
}
