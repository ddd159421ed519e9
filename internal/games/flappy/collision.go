package flappy

// IsGameOver reports whether the avatar touched the floor or overlaps any
// obstacle. There is no ceiling check; the avatar is clamped instead.
func IsGameOver(a Avatar, obstacles []Obstacle, playHeight float64) bool {
	if a.Y+a.Height >= playHeight {
		return true
	}

	r := a.Rect()
	for _, o := range obstacles {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}
