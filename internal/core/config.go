package core

// RuntimeConfig contains host-level settings passed down when a game is run.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for gap placement, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState summarizes a session for hosts after each tick.
type GameState struct {
	Score    int  // Current score (final score once GameOver is set)
	Running  bool // Whether the session is ticking
	GameOver bool // Whether the last session ended in a collision
}
