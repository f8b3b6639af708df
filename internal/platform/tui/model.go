package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/session"
)

// Options configures a play model.
type Options struct {
	Width    int // grid cells
	Height   int
	Seed     int64 // first game only; restarts pick a fresh seed
	Interval time.Duration
	Theme    Theme
	Player   string
	Logger   *log.Logger
	Recorder session.Recorder // may be nil

	ScreenW int // terminal size, 0 if unknown
	ScreenH int

	AllowBack bool // esc/b leaves the game instead of being ignored
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one snake game. It is the scheduler and
// input adapter: key presses become intents, TickMsg becomes Tick.
type Model struct {
	id     int64
	opts   Options
	sess   *session.Session
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	width  int
	height int

	paused     bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a play model with a fresh session.
func NewModel(opts Options) (Model, error) {
	if opts.Interval <= 0 {
		opts.Interval = 200 * time.Millisecond
	}

	sess, err := newSession(opts)
	if err != nil {
		return Model{}, err
	}

	cols, rows := BoardSize(opts.Width, opts.Height)
	h := help.New()
	h.Width = opts.ScreenW

	return Model{
		id:     nextModelID(),
		opts:   opts,
		sess:   sess,
		screen: core.NewScreen(cols, rows),
		keys:   DefaultKeyMap(),
		help:   h,
		width:  opts.ScreenW,
		height: opts.ScreenH,
	}, nil
}

func newSession(opts Options) (*session.Session, error) {
	return session.New(session.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Seed:   opts.Seed,
		Player: opts.Player,
		Logger: opts.Logger,
	})
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Interval, m.id)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Model != m.id {
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
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.opts.AllowBack {
			m.finish()
			m.backToMenu = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.sess.Done() {
			m.restart()
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if !m.sess.Done() {
			m.paused = !m.paused
		}
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok && !m.paused {
		m.sess.ChangeDirection(d)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if !m.paused && !m.tooSmall() && !m.sess.Done() {
		m.sess.Tick()
		if m.sess.Done() {
			m.finish()
		}
	}

	return m, tickCmd(m.opts.Interval, m.id)
}

// restart replaces the finished session with a new game on a fresh seed.
func (m *Model) restart() {
	opts := m.opts
	opts.Seed = 0
	sess, err := newSession(opts)
	if err != nil {
		return
	}
	m.sess = sess
	m.paused = false
}

// finish records the current session. Recording is best effort.
func (m *Model) finish() {
	//nolint:errcheck // session logs the failure, play continues regardless
	m.sess.Finish(m.opts.Recorder)
}

// tooSmall reports whether the terminal cannot fit the board and help line.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	cols, rows := BoardSize(m.opts.Width, m.opts.Height)
	return m.width < cols || m.height < rows+1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		cols, rows := BoardSize(m.opts.Width, m.opts.Height)
		msg := lipgloss.JoinVertical(lipgloss.Center,
			"Window too small",
			helpStyle.Render(fmt.Sprintf("need %dx%d, resize to continue", cols, rows+1)),
		)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	DrawBoard(m.screen, m.sess.Snapshot(), m.opts.Theme, m.sess.Ticks())
	if m.paused {
		drawOverlay(m.screen, "Paused", "Press P to continue")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Session returns the session currently being played.
func (m Model) Session() *session.Session {
	return m.sess
}

// Paused reports whether ticking is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

// RunSession starts the grid menu and plays games until the user quits.
func RunSession(opts Options) error {
	opts.AllowBack = true
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
