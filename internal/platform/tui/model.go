package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/scene"
	"github.com/avoskres/tui-keepsake/internal/scenes/survey"
	"github.com/avoskres/tui-keepsake/internal/storage"
)

// resizable is implemented by scenes that can re-layout without losing
// progress. Scenes without it are reset on terminal resize.
type resizable interface {
	Resize(cfg core.RuntimeConfig)
}

// answerSource is implemented by scenes that collect survey answers.
type answerSource interface {
	Answers() []survey.Answer
}

// SessionModel is the Bubble Tea model for one full viewing of a deck.
// It asks for the recipient's name if the deck doesn't set one, then runs
// the deck's scenes in order.
type SessionModel struct {
	deck       *card.Deck
	store      *storage.Store
	config     core.RuntimeConfig
	screen     *core.Screen
	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	order    []string
	sceneIdx int
	scene    scene.Scene

	nameInput textinput.Model
	naming    bool

	runID    int64
	quitting bool
	finished bool
}

// NewSessionModel creates a session model for the given deck.
func NewSessionModel(deck *card.Deck, store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 40
	ti.Width = 30
	ti.Focus()

	return SessionModel{
		deck:       deck,
		store:      store,
		config:     cfg,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		order:      deck.SceneOrder(),
		nameInput:  ti,
		naming:     deck.Recipient == "",
	}
}

// Init initializes the session.
// The first scene is entered on the first tick; mutating the model here
// would be lost to Bubble Tea's value semantics.
func (m SessionModel) Init() tea.Cmd {
	if m.naming {
		return textinput.Blink
	}
	return tickCmd(m.config.TickRate)
}

// startRun records the new viewing. Persistence is best-effort; the card
// still plays without a database.
func (m *SessionModel) startRun() {
	if m.store == nil {
		return
	}
	id, err := m.store.StartRun(m.deck.Title, m.deck.Recipient)
	if err == nil {
		m.runID = id
	}
}

// enterScene creates and resets the scene at the given index.
func (m *SessionModel) enterScene(idx int) {
	m.sceneIdx = idx
	s, err := scene.Create(m.order[idx], m.deck)
	if err != nil {
		// Validate() rejects unknown scene IDs before a session starts,
		// so an error here means a registry bug. Skip forward.
		if idx+1 < len(m.order) {
			m.enterScene(idx + 1)
			return
		}
		m.finished = true
		return
	}
	s.Reset(m.config)
	m.scene = s

	if m.store != nil && m.runID != 0 {
		//nolint:errcheck // Best-effort save, the card continues regardless
		m.store.MarkScene(m.runID, s.ID())
	}
}

// Update handles messages and updates the model state.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.naming && !m.finished {
			m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.naming {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.naming {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			name := m.nameInput.Value()
			if name != "" {
				m.deck.Recipient = name
			}
			m.naming = false
			m.startRun()
			m.enterScene(0)
			return m, tickCmd(m.config.TickRate)
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	if m.finished {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m SessionModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.nameInput.Width = core.Min(40, msg.Width-4)

	if m.scene != nil {
		if r, ok := m.scene.(resizable); ok {
			r.Resize(m.config)
		} else {
			m.scene.Reset(m.config)
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	if m.naming || m.finished {
		return m, nil
	}
	if m.scene == nil {
		m.startRun()
		m.enterScene(0)
		if m.finished {
			return m, nil
		}
	}

	result := m.scene.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.Done {
		m.leaveScene()
		if m.sceneIdx+1 < len(m.order) {
			m.enterScene(m.sceneIdx + 1)
		} else {
			m.finishRun()
			m.finished = true
			return m, nil
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// leaveScene persists whatever the finished scene collected.
func (m *SessionModel) leaveScene() {
	if m.store == nil || m.runID == 0 {
		return
	}
	if src, ok := m.scene.(answerSource); ok {
		for _, a := range src.Answers() {
			//nolint:errcheck // Best-effort save
			m.store.SaveAnswer(m.runID, a.Question, a.Choice)
		}
	}
}

// finishRun marks the run complete.
func (m *SessionModel) finishRun() {
	if m.store != nil && m.runID != 0 {
		//nolint:errcheck // Best-effort save
		m.store.FinishRun(m.runID)
	}
}

// View renders the current state to a string for display.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.naming {
		return m.viewNamePrompt()
	}

	if m.finished {
		return m.viewFinished()
	}

	if m.scene == nil {
		return ""
	}

	m.screen.Clear()
	m.scene.Render(m.screen)
	return RenderScreen(m.screen)
}

// viewNamePrompt renders the recipient name entry screen.
func (m SessionModel) viewNamePrompt() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("218"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Someone made you a card."),
		"",
		"Who is opening it?",
		"",
		m.nameInput.View(),
		"",
		hintStyle.Render("enter to continue  •  esc to leave"),
	)

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, content)
}

// viewFinished renders the closing screen after the last scene.
func (m SessionModel) viewFinished() string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		style.Render("The end. Happy birthday!"),
		"",
		hintStyle.Render("press any key to close"),
	)

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, content)
}

// IsQuitting returns true if the user asked to leave.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(deck *card.Deck, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewSessionModel(deck, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Scratch and quiz scenes need the pointer
	)

	_, err := p.Run()
	return err
}
