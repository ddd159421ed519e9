// Package config provides YAML-based configuration loading and validation
// for the flappy game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure so callers can
// tell configuration problems apart from I/O errors.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics   Physics   `yaml:"physics"`
	Avatar    Avatar    `yaml:"avatar"`
	Obstacles Obstacles `yaml:"obstacles"`
	PlayArea  PlayArea  `yaml:"play_area"`
	Terminal  Terminal  `yaml:"terminal"`
}

// Physics defines the avatar's vertical motion.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
}

// Avatar defines the avatar's fixed horizontal position and hitbox.
type Avatar struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines gate geometry and cadence.
type Obstacles struct {
	Width         float64       `yaml:"width"`
	Speed         float64       `yaml:"speed"`          // Units moved left per tick
	GapSize       float64       `yaml:"gap_size"`       // Vertical opening of a gate
	MinMargin     float64       `yaml:"min_margin"`     // Minimum pipe length above and below the gap
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Time between gates, e.g. "1500ms"
}

// PlayArea is the default simulation bounds for hosts with a fixed canvas.
type PlayArea struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Terminal maps terminal cells to play-area units for the TUI host.
type Terminal struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Validate checks the values that do not depend on the play area.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	check(c.Avatar.X >= 0, "avatar.x must not be negative, got %v", c.Avatar.X)
	check(c.Avatar.Width > 0, "avatar.width must be positive, got %v", c.Avatar.Width)
	check(c.Avatar.Height > 0, "avatar.height must be positive, got %v", c.Avatar.Height)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.GapSize > 0, "obstacles.gap_size must be positive, got %v", c.Obstacles.GapSize)
	check(c.Obstacles.MinMargin >= 0, "obstacles.min_margin must not be negative, got %v", c.Obstacles.MinMargin)
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval)
	check(c.Terminal.CellWidth > 0, "terminal.cell_width must be positive, got %v", c.Terminal.CellWidth)
	check(c.Terminal.CellHeight > 0, "terminal.cell_height must be positive, got %v", c.Terminal.CellHeight)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// MinPlayHeight is the smallest play-area height that can hold a gate.
func (c FlappyConfig) MinPlayHeight() float64 {
	return c.Obstacles.GapSize + 2*c.Obstacles.MinMargin
}

// ValidateBounds checks that a gate can be placed inside a play area of the
// given size.
func (c FlappyConfig) ValidateBounds(width, height float64) error {
	if !isFinite(width) || !isFinite(height) {
		return fmt.Errorf("%w: play area %vx%v must be finite", ErrInvalidConfig, width, height)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: play area %vx%v must be positive", ErrInvalidConfig, width, height)
	}
	if c.Obstacles.GapSize >= height {
		return fmt.Errorf("%w: gap size %v does not fit play height %v",
			ErrInvalidConfig, c.Obstacles.GapSize, height)
	}
	if minH := c.MinPlayHeight(); height < minH {
		return fmt.Errorf("%w: play height %v is below gap size plus margins (%v)",
			ErrInvalidConfig, height, minH)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
