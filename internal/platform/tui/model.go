package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// helpRows is the number of terminal rows reserved below the play area.
const helpRows = 1

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

// Model is the Bubble Tea model running one flappy session.
type Model struct {
	session  *flappy.Session
	cfg      config.FlappyConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	tickRate int
	epoch    time.Time
	logger   *log.Logger

	screenshotDir string
	err           error // Last start failure, shown instead of the help line
	quitting      bool
}

// NewModel creates a model for the session. The screen size comes from
// rc and is kept in sync with window resizes.
func NewModel(session *flappy.Session, rc core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		session:       session,
		cfg:           session.Config(),
		screen:        core.NewScreen(0, 0),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		tickRate:      rc.TickRate,
		epoch:         time.Now(),
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
	m.resize(rc.ScreenW, rc.ScreenH)
	return m
}

// Init starts the first run.
func (m Model) Init() tea.Cmd {
	return startCmd
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.inPlayArea(msg.X, msg.Y) {
			m.session.Jump()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case startMsg:
		return m.start(time.Now())

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.session.Jump()
	case core.ActionStart:
		if m.session.State() != flappy.StateRunning {
			return m.start(time.Now())
		}
	}
	return m, nil
}

// start begins a new run and schedules its first tick.
func (m Model) start(now time.Time) (tea.Model, tea.Cmd) {
	run, err := m.session.Start(now.Sub(m.epoch))
	if err != nil {
		m.err = err
		m.logger.Error("start failed", "error", err)
		return m, nil
	}
	m.err = nil
	return m, tickCmd(run, m.tickRate)
}

// handleTick advances the session. Ticks scheduled for an earlier run are
// dropped, and the tick chain ends with the run.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Run != m.session.Run() || m.session.State() != flappy.StateRunning {
		return m, nil
	}

	st := m.session.Tick(msg.Time.Sub(m.epoch))
	if st.GameOver {
		return m, nil
	}
	return m, tickCmd(msg.Run, m.tickRate)
}

// resize maps the terminal grid onto play-area units. The bottom rows are
// left for the help line.
func (m *Model) resize(cols, rows int) {
	rows = max(rows-helpRows, 0)
	cols = max(cols, 0)

	m.screen.Resize(cols, rows)
	m.session.Resize(
		float64(cols)*m.cfg.Terminal.CellWidth,
		float64(rows)*m.cfg.Terminal.CellHeight,
	)
}

// inPlayArea reports whether a cell lies on the game screen rather than the
// help line.
func (m Model) inPlayArea(col, row int) bool {
	area := core.NewRect(0, 0, float64(m.screen.Width()), float64(m.screen.Height()))
	return area.Contains(float64(col), float64(row))
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".flappy", "screenshots")
	}
	return filepath.Join(home, ".flappy", "screenshots")
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	m.session.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.err != nil {
		footer = errorStyle.Render(fmt.Sprintf("cannot start: %v (resize the terminal and press enter)", m.err))
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the session and blocks until the
// player quits.
func Run(session *flappy.Session, rc core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(session, rc, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
