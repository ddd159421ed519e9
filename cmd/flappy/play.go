package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The play area follows the terminal size.

Controls:
  Space/Up/W/Click  - Flap
  Enter/R           - Restart after game over
  Ctrl+S            - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file is set, since the game owns the
terminal.

Examples:
  flappy play
  flappy play --seed 7
  flappy play --log-level debug --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := newSession(logger)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger.Info("starting", "width", rc.ScreenW, "height", rc.ScreenH, "fps", rc.TickRate)
	return tui.Run(session, rc, logger)
}
