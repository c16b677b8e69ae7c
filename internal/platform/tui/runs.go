package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxListedRuns caps the runs loaded into the browser.
const maxListedRuns = 100

// RunStore is the part of the run storage the browser needs.
type RunStore interface {
	RecentRuns(limit int) ([]storage.Run, error)
	Run(id int64) (*storage.Run, error)
	DeleteRun(id int64) error
}

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Verify key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Verify, k.Delete, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing recorded runs.
type RunsModel struct {
	store    RunStore
	runs     []storage.Run
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	status   string
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a runs browser and loads the most recent runs.
func NewRunsModel(store RunStore, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Frames", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns refreshes the list from the store.
func (m *RunsModel) loadRuns() {
	runs, err := m.store.RecentRuns(maxListedRuns)
	if err != nil {
		m.status = err.Error()
		runs = nil
	}
	m.runs = runs

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.FrameCount),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// selected returns the run under the cursor.
func (m RunsModel) selected() (storage.Run, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.Run{}, false
	}
	return m.runs[i], true
}

// verify replays the selected run and reports whether its score reproduces.
func (m *RunsModel) verify() {
	sel, ok := m.selected()
	if !ok {
		return
	}

	run, err := m.store.Run(sel.ID)
	if err != nil {
		m.status = err.Error()
		return
	}

	res, err := ReplayRun(run)
	if err != nil {
		m.status = err.Error()
		return
	}

	verdict := "reproduced"
	if res.Score != run.Score {
		verdict = "MISMATCH"
	}
	m.status = fmt.Sprintf("run #%d: recorded %d, replayed %d over %d frames (%s)",
		run.ID, run.Score, res.Score, res.Frames, verdict)
}

// remove deletes the selected run.
func (m *RunsModel) remove() {
	sel, ok := m.selected()
	if !ok {
		return
	}

	if err := m.store.DeleteRun(sel.ID); err != nil && !errors.Is(err, storage.ErrRunNotFound) {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("run #%d deleted", sel.ID)
	m.loadRuns()
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Verify):
			m.verify()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.remove()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.loadRuns()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("RECORDED RUNS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay with --record to keep one!")
	}
	return m.table.View()
}

// Status returns the last status line.
func (m RunsModel) Status() string {
	return m.status
}

// RunRunsBrowser runs the interactive runs browser.
func RunRunsBrowser(store RunStore, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
