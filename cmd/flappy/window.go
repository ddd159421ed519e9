package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window sized to the configured play area.

The window build requires the ebiten build tag:
  go run -tags ebiten ./cmd/flappy window

Controls:
  Space/Up/W/Click/Tap  - Flap (also starts a run)
  Enter/R               - Restart
  Q/Esc                 - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := newSession(logger)
	if err != nil {
		return err
	}

	err = window.Run(session, window.Options{
		TickRate: flagFPS,
		Title:    "Flappy",
		Logger:   logger,
	})
	if errors.Is(err, window.ErrUnavailable) {
		return fmt.Errorf("%w; re-run with `go run -tags ebiten ./cmd/flappy window`", err)
	}
	return err
}
