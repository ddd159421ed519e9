//go:build ebiten

package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Game adapts a flappy session to the ebiten.Game interface.
type Game struct {
	session  *flappy.Session
	logger   *log.Logger
	tickRate int
	ticks    uint64
	err      error // Last start failure
}

// New constructs a Game for the session.
func New(session *flappy.Session, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		session:  session,
		logger:   opts.Logger,
		tickRate: opts.TickRate,
	}
}

// Update reads input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.step(readPressed())
	return nil
}

// readPressed collects this frame's input edges.
func readPressed() pressed {
	return pressed{
		jump: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
		start: inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// step feeds one frame of input to the session at the next clock tick.
// A failed start is kept for Draw and logged once.
func (g *Game) step(p pressed) {
	now := time.Duration(g.ticks) * time.Second / time.Duration(g.tickRate)
	g.ticks++

	if _, err := g.session.Step(buildFrame(p, g.session.State()), now); err != nil {
		if g.err == nil {
			g.logger.Error("start failed", "error", err)
		}
		g.err = err
		return
	}
	g.err = nil
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	screen.Fill(skyColor)

	for _, gate := range snap.Gates {
		drawObstacle(screen, gate.Top, gate.Top.Height-capHeight)
		drawObstacle(screen, gate.Bottom, 0)
	}

	if snap.State != flappy.StateIdle {
		a := snap.Avatar
		vector.DrawFilledRect(screen, float32(a.X), float32(a.Y), float32(a.Width), float32(a.Height), avatarColor, false)
	}

	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), face, 10, 20, textColor)

	msg := statusLine(snap)
	if g.err != nil {
		msg = g.err.Error()
	}
	if msg != "" {
		bounds := text.BoundString(face, msg)
		x := (screen.Bounds().Dx() - bounds.Dx()) / 2
		text.Draw(screen, msg, face, x, screen.Bounds().Dy()/2, textColor)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f", ebiten.ActualTPS()), 10, screen.Bounds().Dy()-20)
}

// drawObstacle fills one pipe and a darker cap band starting capY units
// below its top edge.
func drawObstacle(dst *ebiten.Image, o flappy.Obstacle, capY float64) {
	vector.DrawFilledRect(dst, float32(o.X), float32(o.Y), float32(o.Width), float32(o.Height), pipeColor, false)
	if o.Height >= capHeight {
		vector.DrawFilledRect(dst, float32(o.X), float32(o.Y+capY), float32(o.Width), capHeight, capColor, false)
	}
}

// Layout returns the logical screen size, which is the play area.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.session.Bounds()
	return int(b.W), int(b.H)
}

// Run opens a window and blocks until it is closed.
func Run(session *flappy.Session, opts Options) error {
	g := New(session, opts)
	b := session.Bounds()

	ebiten.SetWindowSize(int(b.W), int(b.H))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(g.tickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
