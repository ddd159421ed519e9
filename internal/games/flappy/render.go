package flappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	AvatarChar    = '●'
	AvatarBeak    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// Render draws the session into dst, scaling play-area units to cells.
func (s *Session) Render(dst *core.Screen) {
	RenderSnapshot(dst, s.Snapshot())
}

// RenderSnapshot draws a snapshot into dst. The whole screen maps onto the
// play area.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.Bounds.W <= 0 || snap.Bounds.H <= 0 {
		return
	}

	v := viewport{
		sx: float64(dst.Width()) / snap.Bounds.W,
		sy: float64(dst.Height()) / snap.Bounds.H,
	}

	for _, g := range snap.Gates {
		drawGate(dst, v, g)
	}

	if snap.State != StateIdle {
		drawAvatar(dst, v, snap.Avatar)
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)

	switch snap.State {
	case StateIdle:
		dst.DrawTextCentered(dst.Height()/2, " press enter to start ", core.ColorCyan)
	case StateOver:
		drawBanner(dst, fmt.Sprintf(" GAME OVER | final score %d ", snap.Score))
	}
}

// drawBanner draws msg centered in a red box.
func drawBanner(dst *core.Screen, msg string) {
	y := dst.Height() / 2
	w := utf8.RuneCountInString(msg)
	x := (dst.Width() - w) / 2

	dst.FillRect(x-1, y-1, w+2, 3, ' ', core.ColorDefault)
	dst.DrawBox(x-1, y-1, w+2, 3, core.ColorRed)
	dst.DrawTextColored(x, y, msg, core.ColorRed)
}

// viewport converts play-area units into cell coordinates.
type viewport struct {
	sx, sy float64
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Round(y * v.sy)) }

func drawGate(dst *core.Screen, v viewport, g Gate) {
	left := v.col(g.Top.X)
	right := int(math.Ceil(g.Right() * v.sx))
	width := max(right-left, 1)

	topEnd := v.row(g.GapTop())
	bottomStart := v.row(g.GapBottom())

	dst.FillRect(left, 0, width, topEnd, PipeChar, core.ColorGreen)
	if topEnd > 0 {
		dst.DrawHLine(left, topEnd-1, width, PipeCapTop, core.ColorBrightGreen)
	}

	dst.FillRect(left, bottomStart, width, dst.Height()-bottomStart, PipeChar, core.ColorGreen)
	if bottomStart < dst.Height() {
		dst.DrawHLine(left, bottomStart, width, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawAvatar(dst *core.Screen, v viewport, a Avatar) {
	x := v.col(a.X)
	y := int(math.Floor(a.Y * v.sy))
	w := max(int(math.Round(a.Width*v.sx)), 1)
	h := max(int(math.Round(a.Height*v.sy)), 1)

	// Keep the avatar visible when it sits on the floor line.
	y = core.Clamp(y, 0, dst.Height()-h)

	dst.FillRect(x, y, w, h, AvatarChar, core.ColorBrightYellow)
	dst.SetColored(x+w-1, y, AvatarBeak, core.ColorYellow)
}
