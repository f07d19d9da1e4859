package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// Model is the Bubble Tea model for a Snake game in a terminal.
// Bubble Tea delivers key, resize and tick messages one at a time, so the
// game is never touched concurrently.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig // ViewportW/H hold the terminal size in characters
	keys   *KeyMapper
	logger *log.Logger

	gen      int // Current tick chain
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ViewportW and cfg.ViewportH are the terminal size in characters.
// A nil logger discards log output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	if cfg.Seed != 0 {
		game.Seed(cfg.Seed)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ViewportW, cfg.ViewportH),
		config: cfg,
		keys:   NewKeyMapper(),
		logger: logger,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.grid())
	m.logger.Debug("game started", "game", m.game.ID(), "cols", m.grid().Cols, "rows", m.grid().Rows)
	return tickCmd(m.config.TickInterval, m.gen)
}

// grid maps the terminal size to a board. Cells are one character high,
// so the bounds use a cell size of 1.
func (m Model) grid() core.Grid {
	w, h := snake.TerminalViewport(m.config.ViewportW, m.config.ViewportH)
	bounds := m.config.Bounds
	bounds.CellSize = 1
	return core.ComputeGrid(w, h, bounds)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Debug("quit", "score", m.game.State().Score)
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		if m.game.State().GameOver {
			return m.restart()
		}
	default:
		if d, ok := action.Direction(); ok {
			m.game.SetDirection(d)
		}
	}

	return m, nil
}

// restart begins a new game and a new tick chain.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.game.Reset(m.grid())
	m.gen++
	m.logger.Debug("game restarted")
	return m, tickCmd(m.config.TickInterval, m.gen)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ViewportW = msg.Width
	m.config.ViewportH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	wasOver := m.game.State().GameOver
	m.game.Resize(m.grid())
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	// A resize that started a fresh game needs the tick loop back.
	if wasOver && !m.game.State().GameOver {
		m.gen++
		return m, tickCmd(m.config.TickInterval, m.gen)
	}
	return m, nil
}

// handleTick processes simulation ticks. Ticking stops on game over.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}

	result := m.game.Tick()
	if result.State.GameOver {
		m.logger.Debug("game over", "score", result.State.Score, "collision", result.Collision)
		if d, ok := m.game.(interface{ DebugState() string }); ok {
			m.logger.Debug(d.DebugState())
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickInterval, m.gen)
}

// saveScreenshot writes the current screen to ~/.gridsnake/screenshots.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	dir := filepath.Join(config.Dir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
