package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-dash/internal/storage"
)

const maxHistoryRows = 100

// ScoreboardKeyMap defines the key bindings for the run history view.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the full run history from the database, which is
// wider than the top-5 board kept in the snapshot.
type ScoreboardModel struct {
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	best    int
	loadErr error
	done    bool
}

// NewScoreboardModel loads the run history and builds the table. A nil
// store or a load failure renders as an empty board with a notice.
func NewScoreboardModel(runs *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "When", Width: 16},
	}

	var rows []table.Row
	if runs != nil {
		entries, err := runs.TopRuns(maxHistoryRows)
		if err != nil {
			m.loadErr = err
		}
		for i, e := range entries {
			when := ""
			if !e.CreatedAt.IsZero() {
				when = e.CreatedAt.Format("2006-01-02 15:04")
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				e.Player,
				fmt.Sprintf("%d", e.Score),
				when,
			})
		}
		if best, err := runs.BestScore(); err == nil {
			m.best = best
		}
	}

	tableHeight := height - 8
	if tableHeight < 3 {
		tableHeight = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("15")).Bold(true)
	t.SetStyles(styles)

	m.table = t
	return m
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("R U N   H I S T O R Y"), m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText("could not load run history", m.width))
		b.WriteString("\n")
	} else if len(m.table.Rows()) == 0 {
		b.WriteString(centerText(menuDimStyle.Render("No runs recorded yet"), m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Best score: %d", m.best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}
