package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avoskres/tui-keepsake/internal/storage"
)

// Progress view layout constants
const (
	maxRuns         = 100 // Max runs to load
	answersPaneWide = 90  // Minimum width to show the answers pane
)

// ProgressKeyMap defines the key bindings for the progress view.
type ProgressKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous run"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel is the Bubble Tea model for browsing recorded runs.
// Selecting a run shows the survey answers it collected.
type ProgressModel struct {
	store       *storage.Store
	runs        []storage.RunEntry
	answers     []storage.AnswerEntry
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	width       int
	height      int
	quitting    bool
	showAnswers bool
}

// NewProgressModel creates a progress model over the given store.
func NewProgressModel(store *storage.Store, width, height int) ProgressModel {
	keys := DefaultProgressKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showAnswers: width >= answersPaneWide,
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 18},
		{Title: "Recipient", Width: 14},
		{Title: "Reached", Width: 10},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the recent runs and the answers for the selected one.
func (m *ProgressModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	runs, err := m.store.RecentRuns(maxRuns)
	if err != nil {
		m.runs = nil
	} else {
		m.runs = runs
	}
	m.updateTableRows()
	m.loadAnswers()
}

// loadAnswers loads the answers for the currently selected run.
func (m *ProgressModel) loadAnswers() {
	m.answers = nil
	if m.store == nil || len(m.runs) == 0 {
		return
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.runs) {
		return
	}
	answers, err := m.store.Answers(m.runs[idx].ID)
	if err == nil {
		m.answers = answers
	}
}

// updateTableRows updates the table with current runs.
func (m *ProgressModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		status := "left early"
		if r.Completed {
			status = "finished"
		}
		recipient := r.Recipient
		if recipient == "" {
			recipient = "-"
		}
		reached := r.LastScene
		if reached == "" {
			reached = "-"
		}
		rows[i] = table.Row{
			r.StartedAt.Format("Jan 02 15:04"),
			recipient,
			reached,
			status,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress view.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadAnswers()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showAnswers = m.width >= answersPaneWide
		m.table = m.createTable()
		m.updateTableRows()
		m.loadAnswers()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress view.
func (m ProgressModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("218")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("CARD OPENINGS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tablePane := tableStyle.Render(m.renderTableContent())

	if m.showAnswers {
		answersPane := tableStyle.Render(m.renderAnswers())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tablePane, "  ", answersPane))
	} else {
		b.WriteString(tablePane)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ProgressModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No one has opened the card yet.")
	}
	return m.table.View()
}

// renderAnswers renders the survey answers for the selected run.
func (m ProgressModel) renderAnswers() string {
	var b strings.Builder
	b.WriteString("Survey answers\n")
	b.WriteString(strings.Repeat("-", 24))
	b.WriteString("\n")

	if len(m.answers) == 0 {
		b.WriteString("none recorded")
		return b.String()
	}

	for _, a := range m.answers {
		b.WriteString(fmt.Sprintf("%s\n  > %s\n", a.Question, a.Choice))
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsQuitting returns true if user wants to quit.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers a single line within the given width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunProgress runs the progress browser in the local terminal.
func RunProgress(store *storage.Store, width, height int) error {
	model := NewProgressModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
