package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/game"
)

// settingsField indexes the three rebindable actions.
type settingsField int

const (
	fieldJump settingsField = iota
	fieldPause
	fieldBoss
	fieldCount
)

// SettingsModel is the keybind editor. Each action gets a text input;
// Tab cycles focus, Enter applies, Esc discards. Duplicate triggers are
// rejected with an inline error, empty triggers fall back to defaults.
type SettingsModel struct {
	inputs  [fieldCount]textinput.Model
	focus   settingsField
	width   int
	height  int
	initial game.Keybinds
	result  *game.Keybinds
	errMsg  string
	done    bool
}

// NewSettingsModel creates the editor pre-filled with current bindings.
func NewSettingsModel(binds game.Keybinds, width, height int) SettingsModel {
	labels := [fieldCount]string{"Jump:    ", "Pause:   ", "Boss key:"}
	values := [fieldCount]string{binds.Jump, binds.Pause, binds.BossKey}

	m := SettingsModel{width: width, height: height, initial: binds}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = labels[i] + " "
		ti.SetValue(values[i])
		ti.CharLimit = 12
		ti.Width = 14
		m.inputs[i] = ti
	}
	m.inputs[fieldJump].Focus()
	return m
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the editor.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit

		case "tab", "down":
			return m.cycleFocus(1), nil

		case "shift+tab", "up":
			return m.cycleFocus(-1), nil

		case "enter":
			binds, err := m.collect()
			if err != "" {
				m.errMsg = err
				return m, nil
			}
			m.result = &binds
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m SettingsModel) cycleFocus(dir int) SettingsModel {
	m.inputs[m.focus].Blur()
	m.focus = settingsField((int(m.focus) + dir + int(fieldCount)) % int(fieldCount))
	m.inputs[m.focus].Focus()
	m.errMsg = ""
	return m
}

// collect builds sanitized keybinds from the inputs, returning an error
// message when two actions share a trigger.
func (m SettingsModel) collect() (game.Keybinds, string) {
	binds := game.Keybinds{
		Jump:    m.inputs[fieldJump].Value(),
		Pause:   m.inputs[fieldPause].Value(),
		BossKey: m.inputs[fieldBoss].Value(),
	}.Sanitized()

	seen := map[string]string{}
	for _, pair := range []struct{ action, trigger string }{
		{"jump", binds.Jump},
		{"pause", binds.Pause},
		{"boss key", binds.BossKey},
	} {
		if other, ok := seen[pair.trigger]; ok {
			return binds, fmt.Sprintf("%q is bound to both %s and %s", pair.trigger, other, pair.action)
		}
		seen[pair.trigger] = pair.action
	}
	return binds, ""
}

// View renders the editor.
func (m SettingsModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("K E Y B I N D S"), m.width))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(centerText(m.inputs[i].View(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(centerText(m.errMsg, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(menuDimStyle.Render("Tab: Next | Enter: Apply | Esc: Cancel | empty resets to default"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Result returns the applied keybinds, or nil when the editor was
// cancelled.
func (m SettingsModel) Result() *game.Keybinds {
	return m.result
}
