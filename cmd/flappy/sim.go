package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/headless"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagAutopilot bool
	flagWidth     float64
	flagHeight    float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run one game without a display on a fixed-step clock and print the
outcome. The same seed and policy always give the same result.

Policies:
  --jump-every N  - Flap on every N-th tick (0 = never)
  --autopilot     - Aim for the bottom of the next gap

Examples:
  flappy sim --seed 1
  flappy sim --seed 1 --jump-every 12
  flappy sim --seed 1 --autopilot --ticks 36000`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 60*60, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Flap on every N-th tick (0 = never)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer towards the next gap")
	simCmd.Flags().Float64Var(&flagWidth, "width", 0, "Play area width (0 = from config)")
	simCmd.Flags().Float64Var(&flagHeight, "height", 0, "Play area height (0 = from config)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := newSession(logger)
	if err != nil {
		return err
	}

	bounds := session.Bounds()
	if flagWidth > 0 {
		bounds.W = flagWidth
	}
	if flagHeight > 0 {
		bounds.H = flagHeight
	}
	session.Resize(bounds.W, bounds.H)

	policy := headless.JumpEvery(flagJumpEvery)
	if flagAutopilot {
		policy = headless.Autopilot()
	}

	res, err := headless.Run(cmd.Context(), session, headless.Options{
		TickRate: flagFPS,
		MaxTicks: flagTicks,
		Policy:   policy,
	})
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	logger.Info("simulation finished",
		"score", res.Score,
		"ticks", res.Ticks,
		"game_over", res.GameOver,
	)
	printResult(cmd, res)
	return nil
}

func printResult(cmd *cobra.Command, res headless.Result) {
	outcome := "survived"
	if res.GameOver {
		outcome = "game over"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "score: %d\nticks: %d\nsimulated: %s\noutcome: %s\n",
		res.Score, res.Ticks, res.Elapsed, outcome)
}
