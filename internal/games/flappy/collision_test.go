package flappy

import "testing"

func testAvatar(y float64) Avatar {
	return Avatar{X: 50, Y: y, Width: 40, Height: 30}
}

func TestIsGameOverFloor(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"well above", 300, false},
		{"one unit above", 569, false},
		{"touching", 570, true},
		{"below", 590, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGameOver(testAvatar(tt.y), nil, 600); got != tt.want {
				t.Errorf("IsGameOver(y=%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestIsGameOverObstacles(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		gate Gate
		want bool
	}{
		{"inside gap", 250, gateAt(60, 80, 200, 150, 600), false},
		{"hits top pipe", 180, gateAt(60, 80, 200, 150, 600), true},
		{"hits bottom pipe", 330, gateAt(60, 80, 200, 150, 600), true},
		{"flush on top pipe", 200, gateAt(60, 80, 200, 150, 600), false},
		{"flush on bottom pipe", 320, gateAt(60, 80, 200, 150, 600), false},
		{"gate flush to the right", 100, gateAt(90, 80, 200, 150, 600), false},
		{"gate flush to the left", 100, gateAt(-30, 80, 200, 150, 600), false},
		{"gate overlapping right edge", 100, gateAt(89, 80, 200, 150, 600), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := []Obstacle{tt.gate.Top, tt.gate.Bottom}
			if got := IsGameOver(testAvatar(tt.y), obs, 600); got != tt.want {
				t.Errorf("IsGameOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsGameOverNoCeiling(t *testing.T) {
	if IsGameOver(testAvatar(0), nil, 600) {
		t.Error("touching the top of the play area is not a collision")
	}
}
