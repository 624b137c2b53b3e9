package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user backs out of a prompt.
var ErrCancelled = errors.New("cancelled")

// promptModel is a one-line text prompt with a default value and an
// optional validator. Invalid input shows the error and reprompts.
type promptModel struct {
	label    string
	input    textinput.Model
	def      string
	validate func(string) error

	errMsg    string
	value     string
	done      bool
	cancelled bool
}

func newPromptModel(label, def string, validate func(string) error) promptModel {
	input := textinput.New()
	input.Width = 40
	input.Placeholder = def
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.Focus()

	return promptModel{label: label, input: input, def: def, validate: validate}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = m.def
			}
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.errMsg = err.Error()
					m.input.SetValue("")
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	line := labelStyle.Render(m.label) + " " + m.input.View()
	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		line += "\n" + errStyle.Render("✗ "+m.errMsg)
	}
	return line + "\n"
}

// PromptValidated asks for a line of text, reprompting until validate
// accepts it. An empty answer yields def before validation.
func PromptValidated(label, def string, validate func(string) error) (string, error) {
	p := tea.NewProgram(newPromptModel(label, def, validate))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m := final.(promptModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.value, nil
}

// PromptString asks for a line of text; an empty answer yields def.
func PromptString(label, def string) (string, error) {
	return PromptValidated(label, def, nil)
}

// PromptInt asks for an integer, reprompting until one parses.
func PromptInt(label string, def int) (int, error) {
	value, err := PromptValidated(label, strconv.Itoa(def), func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

// selectModel is a vertical pick list.
type selectModel struct {
	label   string
	options []string
	cursor  int

	done      bool
	cancelled bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("\n")

	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + option))
		} else {
			b.WriteString("  " + option)
		}
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	b.WriteString(helpStyle.Render("↑/↓ select · enter confirm · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// PromptSelect asks the user to pick one of options, returning its index.
func PromptSelect(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("nothing to select")
	}

	p := tea.NewProgram(selectModel{label: label, options: options})
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.cancelled {
		return 0, ErrCancelled
	}
	return m.cursor, nil
}

// PromptConfirm asks a yes/no question.
func PromptConfirm(label string) (bool, error) {
	idx, err := PromptSelect(label, []string{"Yes", "No"})
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return false, nil
		}
		return false, err
	}
	return idx == 0, nil
}
