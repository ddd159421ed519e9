package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: Physics{
			Gravity:     0.5,
			JumpImpulse: -10,
		},
		Avatar: Avatar{
			X:      50,
			Width:  40,
			Height: 30,
		},
		Obstacles: Obstacles{
			Width:         80,
			Speed:         2,
			GapSize:       150,
			MinMargin:     50,
			SpawnInterval: 1500 * time.Millisecond,
		},
		PlayArea: PlayArea{
			Width:  800,
			Height: 600,
		},
		Terminal: Terminal{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
