package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the player-controlled bird. X is fixed for the whole session,
// Y grows downwards.
type Avatar struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
	Gravity       float64 // Added to Velocity every tick
	JumpImpulse   float64 // Velocity set by a jump (negative = up)
}

// newAvatar places the avatar at the vertical center of the play area.
func newAvatar(cfg config.FlappyConfig, playHeight float64) Avatar {
	return Avatar{
		X:           cfg.Avatar.X,
		Y:           playHeight / 2,
		Width:       cfg.Avatar.Width,
		Height:      cfg.Avatar.Height,
		Gravity:     cfg.Physics.Gravity,
		JumpImpulse: cfg.Physics.JumpImpulse,
	}
}

// ApplyGravity integrates one tick of motion. The avatar is clamped at the
// top of the play area and loses its upward momentum there; the floor is
// left to the collision check.
func (a *Avatar) ApplyGravity() {
	a.Velocity += a.Gravity
	a.Y += a.Velocity

	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	}
}

// Jump replaces the current velocity with the jump impulse.
func (a *Avatar) Jump() {
	a.Velocity = a.JumpImpulse
}

// Rect returns the avatar's collision rectangle.
func (a Avatar) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}
