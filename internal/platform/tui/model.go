package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tflap/internal/core"
	"github.com/vovakirdan/tflap/internal/flappy"
	"github.com/vovakirdan/tflap/internal/logging"
)

// helpRows is the number of terminal rows used by the key help line.
const helpRows = 1

// Model is the Bubble Tea model running one game.
//
// Key presses only enqueue inputs. Each TickMsg asks the ticker how many
// fixed steps are due, feeds the queued input to the first of them and
// draws the final snapshot once.
type Model struct {
	machine       *flappy.Machine
	renderer      *flappy.ScreenRenderer
	ticker        *core.Ticker
	queue         *core.InputQueue
	palette       Palette
	keys          KeyMap
	help          help.Model
	helpStyle     lipgloss.Style
	logger        *log.Logger
	snap          flappy.Snapshot
	screenshotDir string
	quitting      bool
}

// NewModel creates a model for a terminal of cfg.ScreenW x cfg.ScreenH.
// gw may be nil, in which case nothing is persisted.
func NewModel(cfg core.RuntimeConfig, gw flappy.Gateway, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH -= helpRows

	machine := flappy.NewMachine(cfg, gw, logger)
	snap := machine.Snapshot()

	m := Model{
		machine:       machine,
		renderer:      flappy.NewScreenRenderer(core.NewScreen(snap.FieldW, snap.FieldH+flappy.HUDRows)),
		ticker:        core.NewTicker(cfg.TickRate),
		queue:         core.NewInputQueue(core.DefaultInputQueueSize),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
	m.SetPalette(NewPalette(nil))
	m.draw(snap)
	return m
}

// SetPalette replaces the color styles, e.g. with one bound to an SSH
// session's renderer.
func (m *Model) SetPalette(p Palette) {
	m.palette = p
	m.helpStyle = p[core.ColorGray]
}

// SetScreenshotDir changes where Ctrl+S writes frames.
func (m *Model) SetScreenshotDir(dir string) {
	m.screenshotDir = dir
}

// Machine returns the game state machine.
func (m Model) Machine() *flappy.Machine {
	return m.machine
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.ticker.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.machine.Resize(msg.Width, msg.Height-helpRows)
		m.help.Width = msg.Width
		if m.machine.State() == flappy.StateMenu {
			m.draw(m.machine.Snapshot())
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the game input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.queue.Push(m.keys.Map(msg))
	return m, nil
}

// handleTick runs every step that is due and renders the result once.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dropped := m.ticker.Dropped()
	steps := m.ticker.Due(now)
	if d := m.ticker.Dropped() - dropped; d > 0 {
		m.logger.Debug("skipped steps after a stall", "steps", d)
	}

	for i := 0; i < steps; i++ {
		m.snap = m.machine.Tick(core.Drain(m.queue))
		if m.snap.State == flappy.StateQuit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	if steps > 0 {
		m.draw(m.snap)
	}

	return m, tickCmd(m.ticker.Interval())
}

// draw renders snap into the screen buffer, resizing it to the field.
func (m *Model) draw(snap flappy.Snapshot) {
	m.snap = snap
	m.renderer.Screen().Resize(snap.FieldW, snap.FieldH+flappy.HUDRows)
	m.renderer.Draw(snap)
}

// View renders the current frame and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.palette.RenderScreen(m.renderer.Screen()) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", m.screenshotDir, err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("tflap_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tflap-screenshots")
	}
	return filepath.Join(home, ".tflap", "screenshots")
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg core.RuntimeConfig, gw flappy.Gateway, logger *log.Logger) error {
	model := NewModel(cfg, gw, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	return finish(final, err)
}

// finish ends the game in the model bubbletea returned. A SIGINT or SIGTERM
// stops the program before the machine sees a Quit, so it is sent here and
// a pending record is still flushed. An interrupt is a normal exit.
func finish(final tea.Model, err error) error {
	interrupted := errors.Is(err, tea.ErrInterrupted)
	if err != nil && !interrupted {
		return err
	}

	m, ok := final.(Model)
	if !ok || m.machine.State() == flappy.StateQuit {
		return nil
	}
	m.machine.Tick(core.InputQuit)
	if interrupted {
		m.logger.Info("interrupted")
	}
	return nil
}
