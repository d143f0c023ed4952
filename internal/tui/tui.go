package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/klondike/internal/game"
	"github.com/lox/klondike/internal/stats"
)

// Model is the Bubble Tea model for the solitaire table
type Model struct {
	session *game.Session
	tracker *stats.Tracker
	logger  *log.Logger

	input    textinput.Model
	renderer *Renderer
	status   string

	width       int
	height      int
	quitting    bool
	wonRecorded bool
}

// tickMsg refreshes the elapsed-time display once a second
type tickMsg time.Time

// NewModel creates a TUI model around an existing session. tracker may
// be nil when statistics are unavailable.
func NewModel(session *game.Session, tracker *stats.Tracker, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "d = draw, m <src> [card#] <dst>, u = undo, n = new game, q = quit"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true)

	if tracker != nil {
		tracker.GameStarted()
	}

	return &Model{
		session:  session,
		tracker:  tracker,
		logger:   logger.WithPrefix("tui"),
		input:    ti,
		renderer: NewRenderer(),
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			if strings.TrimSpace(line) == "" {
				return m, nil
			}

			cmd, err := ParseCommand(line)
			if err != nil {
				m.status = ErrorStyle.Render(err.Error())
				return m, nil
			}
			if cmd.Kind == CmdQuit {
				m.quitting = true
				return m, tea.Quit
			}

			m.status = cmd.Apply(m.session)
			m.logger.Debug("applied command", "line", line, "status", m.status)
			if cmd.Kind == CmdNewGame {
				m.wonRecorded = false
				if m.tracker != nil {
					m.tracker.GameStarted()
				}
			}
			m.recordWin()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// recordWin writes the win to the statistics file the first time the
// current game reaches a won state.
func (m *Model) recordWin() {
	if m.wonRecorded || !m.session.Game.IsWon() {
		return
	}
	m.wonRecorded = true
	if m.tracker != nil {
		m.tracker.GameWon(m.session.Game.Score, m.session.Elapsed())
	}
}

// View renders the board
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ Klondike Solitaire ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Board(m.session.Game))
	b.WriteString("\n")
	b.WriteString(StatsStyle.Render(fmt.Sprintf(
		"moves %d   score %d   time %s", m.session.Game.Moves, m.session.Game.Score, m.session.FormatElapsed())))
	b.WriteString("\n")

	if m.session.Game.IsWon() {
		b.WriteString(WinStyle.Render("You won!"))
		b.WriteString("\n")
		if m.tracker != nil {
			rec := m.tracker.Snapshot()
			b.WriteString(StatsStyle.Render(fmt.Sprintf(
				"wins %d/%d   best score %d   best time %s",
				rec.GamesWon, rec.GamesStarted, rec.BestScore, game.FormatDuration(rec.BestTime))))
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("piles: s=stock w=waste f1-f4=foundations t1-t7=tableau"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the TUI event loop and blocks until the player quits
func Run(session *game.Session, tracker *stats.Tracker, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(session, tracker, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
