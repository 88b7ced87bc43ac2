package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/loop"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Terminals report presses only, so movement releases are synthesized.
const (
	// DefaultRepeatDelay is how long a fresh press stays held. It is above
	// the usual delay before a held key starts repeating.
	DefaultRepeatDelay = 500 * time.Millisecond
	// DefaultReleaseAfter is how long a repeated press stays held.
	DefaultReleaseAfter = 180 * time.Millisecond
)

// Options configure a Model.
type Options struct {
	Width, Height int                // Initial terminal size; defaults to 80x24
	Clock         core.Clock         // Defaults to the system clock
	Renderer      *lipgloss.Renderer // Defaults to the lipgloss default renderer
	RepeatDelay   time.Duration      // Defaults to DefaultRepeatDelay
	ReleaseAfter  time.Duration      // Defaults to DefaultReleaseAfter
	AllowBack     bool               // Esc/b leaves the game, e.g. back to a menu
}

// Model is the Bubble Tea model for playing one game.
type Model struct {
	id      int64
	game    registry.Game
	sched   *loop.Scheduler
	clock   core.Clock
	screen  *core.Screen
	surface *core.CellSurface
	cells   *ScreenRenderer
	keys    KeyMap
	help    help.Model
	hold    *core.KeyHold

	width, height int
	quitting      bool
	back          bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = DefaultRepeatDelay
	}
	if opts.ReleaseAfter <= 0 {
		opts.ReleaseAfter = DefaultReleaseAfter
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)

	w, h := game.Size()
	screen := core.NewScreen(opts.Width, opts.Height)
	m := Model{
		id:      nextModelID(),
		game:    game,
		sched:   loop.NewScheduler(opts.Clock, game.TickPeriod()),
		clock:   opts.Clock,
		screen:  screen,
		surface: core.NewCellSurface(screen, w, h),
		cells:   NewScreenRenderer(opts.Renderer),
		keys:    keys,
		help:    help.New(),
		hold:    core.NewKeyHold(opts.RepeatDelay, opts.ReleaseAfter),
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.sched.Start()
	return tickCmd(m.id, m.sched.NextDelay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	in := m.keys.Intent(msg)
	if in == core.IntentNone {
		return m, nil
	}

	var cmd tea.Cmd
	for _, next := range m.hold.Press(in, m.clock.Now()) {
		m.game.HandleIntent(next)
		if next == core.IntentNewGame {
			// Drop the tick already in flight for the old game
			m.id = nextModelID()
			m.sched.Restart()
			cmd = tickCmd(m.id, m.sched.NextDelay())
		}
	}
	return m, cmd
}

// handleTick runs one simulation step and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.sched.Running() {
		return m, nil
	}

	if in, ok := m.hold.Expire(m.clock.Now()); ok {
		m.game.HandleIntent(in)
	}

	res := m.game.Step()
	m.sched.Tick()
	if !res.Continue {
		m.sched.Stop()
		return m, nil
	}
	return m, tickCmd(m.id, m.sched.NextDelay())
}

// resize fits the playfield into the terminal above the help line.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	rows := max(1, height-lipgloss.Height(m.help.View(m.keys)))
	m.screen.Resize(max(1, width), rows)
	m.surface.Resize()
	m.game.InvalidateAll()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.surface)
	m.surface.Flush()

	return m.cells.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the game being played.
func (m Model) Game() registry.Game {
	return m.game
}

// Running reports whether ticks are being scheduled.
func (m Model) Running() bool {
	return m.sched.Running()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to leave the game.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
