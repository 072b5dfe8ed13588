package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-dash/internal/game"
	"github.com/vovakirdan/dino-dash/internal/save"
)

// MenuChoice identifies what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceResume
	ChoiceSettings
	ChoiceScores
	ChoiceQuit
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type menuItem struct {
	label  string
	choice MenuChoice
}

// MenuModel is the Bubble Tea model for the main menu: name entry, the
// resume option when a valid snapshot exists, settings, scores, quit.
type MenuModel struct {
	nameInput   textinput.Model
	items       []menuItem
	cursor      int
	width       int
	height      int
	snapshot    *save.Snapshot
	leaderboard game.Leaderboard
	choice      MenuChoice
	editingName bool
	quitting    bool
}

// NewMenuModel creates the main menu. The snapshot may be nil; the resume
// entry only appears when the snapshot is resumable.
func NewMenuModel(snapshot *save.Snapshot, width, height int) MenuModel {
	ti := textinput.New()
	ti.Placeholder = "Player"
	ti.CharLimit = 20
	ti.Width = 24
	ti.Prompt = "Name: "

	items := []menuItem{{"New game", ChoiceNewGame}}
	var lb game.Leaderboard
	if snapshot != nil {
		lb = snapshot.Leaderboard
		if snapshot.PlayerName != "" && snapshot.PlayerName != "Player" {
			ti.SetValue(snapshot.PlayerName)
		}
		if snapshot.Resumable {
			items = append(items, menuItem{
				fmt.Sprintf("Resume (%s, score %d)", snapshot.PlayerName, snapshot.Score),
				ChoiceResume,
			})
		}
	}
	items = append(items,
		menuItem{"Keybinds", ChoiceSettings},
		menuItem{"Run history", ChoiceScores},
		menuItem{"Quit", ChoiceQuit},
	)

	return MenuModel{
		nameInput:   ti,
		items:       items,
		width:       width,
		height:      height,
		snapshot:    snapshot,
		leaderboard: lb,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.editingName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingName {
		switch msg.String() {
		case "enter", "esc":
			m.editingName = false
			m.nameInput.Blur()
			return m, nil
		case "ctrl+c":
			m.quitting = true
			m.choice = ChoiceQuit
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.choice = ChoiceQuit
		return m, tea.Quit

	case "n":
		m.editingName = true
		return m, m.nameInput.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "enter", " ":
		m.choice = m.items[m.cursor].choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("D I N O   D A S H"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.nameInput.View(), m.width))
	if !m.editingName {
		b.WriteString("  ")
		b.WriteString(menuDimStyle.Render("(n to edit)"))
	}
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.label
		if i == m.cursor && !m.editingName {
			line = menuSelectedStyle.Render("> " + item.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.leaderboard) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render("Top scores"), m.width))
		b.WriteString("\n")
		for i, e := range m.leaderboard {
			b.WriteString(centerText(fmt.Sprintf("%d. %-12s %6d", i+1, e.Name, e.Score), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate | Enter: Select | N: Name | Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user selected, ChoiceNone while still deciding.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// PlayerName returns the entered player name, which may be empty.
func (m MenuModel) PlayerName() string {
	return strings.TrimSpace(m.nameInput.Value())
}

// centerText centers text within the given width. ANSI sequences from
// styled text throw the math off slightly, which is fine for a menu.
func centerText(text string, width int) string {
	plain := lipgloss.Width(text)
	if plain >= width {
		return text
	}
	padding := (width - plain) / 2
	return strings.Repeat(" ", padding) + text
}
