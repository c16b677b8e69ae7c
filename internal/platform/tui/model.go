package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures a game model.
type Options struct {
	Runtime  core.RuntimeConfig // Screen size, tick rate and seed (0 = time-based per run)
	Recorder RunRecorder        // Optional; finished runs are saved when set
	Logger   *log.Logger        // Optional; defaults to discarding output
}

// Model is the Bubble Tea model that drives a game session.
// Input is collected between ticks and applied at the start of the next frame.
type Model struct {
	session    *flappy.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	recorder   RunRecorder
	logger     *log.Logger
	fixedSeed  bool
	lastRunID  int64
	quitting   bool
}

// NewModel creates a new Bubble Tea model around the given session.
func NewModel(session *flappy.Session, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	fixed := cfg.Seed != 0
	if fixed {
		session.SetSeed(cfg.Seed)
	} else {
		session.SetSeed(time.Now().UnixNano())
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:    session,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		showHelp:   true,
		inputFrame: core.NewInputFrame(),
		recorder:   opts.Recorder,
		logger:     logger,
		fixedSeed:  fixed,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight(cfg.ScreenH))
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := MouseAction(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight(m.config.ScreenH))
		return m, nil
	}

	switch a := m.keys.Action(msg, m.session.State().Phase); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(a)
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in world
// units, so a resize only changes the render target.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies pending input and advances the session by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionStart) && m.session.State().Phase == flappy.PhaseOver && !m.fixedSeed {
		m.session.SetSeed(now.UnixNano())
	}

	m.session.Apply(m.inputFrame)
	m.inputFrame.Clear()

	if res := m.session.Frame(now); res.Ended {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run. Best-effort: the game continues regardless.
func (m *Model) recordRun() {
	if m.recorder == nil {
		return
	}
	id, err := RecordRun(m.recorder, m.session)
	if err != nil {
		m.logger.Warn("could not record run", "err", err)
		return
	}
	m.lastRunID = id
	m.logger.Info("run recorded", "id", id, "score", m.session.State().Score)
}

// playfieldHeight leaves one row for the help line when it is shown.
func (m Model) playfieldHeight(h int) int {
	if m.showHelp && h > 1 {
		return h - 1
	}
	return h
}

// LastRunID returns the ID of the most recently recorded run, or 0.
func (m Model) LastRunID() int64 {
	return m.lastRunID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Run starts the Bubble Tea program for the session and blocks until quit.
func Run(session *flappy.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
