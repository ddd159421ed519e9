// flappy is a flappy-bird style game for the terminal and the desktop.
//
// Usage:
//
//	flappy play      - Play in the terminal
//	flappy sim       - Run a headless simulation and print the outcome
//	flappy window    - Play in a desktop window (needs -tags ebiten)
//	flappy config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gap placement
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Append logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - keep the bird in the air",
	Long: `Flappy is a side-scroller where you flap a falling bird through the
gaps of pipe gates that scroll in from the right.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless simulation
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --fps 30 --log-file flappy.log
  flappy sim --autopilot --seed 42
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close function releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}

// newSession loads the configuration and builds a session seeded from
// --seed.
func newSession(logger *log.Logger, opts ...flappy.Option) (*flappy.Session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	opts = append([]flappy.Option{
		flappy.WithRand(flappy.NewRand(flagSeed)),
		flappy.WithLogger(logger),
	}, opts...)
	return flappy.NewSession(cfg, opts...), nil
}
