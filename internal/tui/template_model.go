package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gorm.io/gorm"

	"urenstaat/internal/db"
	"urenstaat/internal/models"
)

// templateState is the mode of the template management loop.
type templateState int

const (
	templateListing templateState = iota
	templateCreating
	templateEditing
	templateDeleting
)

// TemplateModel is the interactive management loop over weekly templates.
type TemplateModel struct {
	g *gorm.DB

	templates []models.Template
	cursor    int
	state     templateState

	// inputs[0] is the project name, inputs[1..7] the Mon..Sun hours.
	inputs []textinput.Model
	focus  int
	editID uint

	errMsg string
	status string
	err    error
}

// NewTemplateModel loads the templates and starts in the listing state.
func NewTemplateModel(g *gorm.DB) (TemplateModel, error) {
	templates, err := db.ListTemplates(g)
	if err != nil {
		return TemplateModel{}, err
	}

	inputs := make([]textinput.Model, 8)
	labels := []string{"Project", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = fmt.Sprintf("%-8s ", labels[i]+":")
		inputs[i].Width = 24
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	inputs[0].CharLimit = 50
	inputs[0].Placeholder = "project name (required)"
	for i := 1; i < len(inputs); i++ {
		inputs[i].CharLimit = 6
		inputs[i].Placeholder = "0"
	}

	return TemplateModel{g: g, templates: templates, inputs: inputs}, nil
}

// Err reports a storage error that ended the loop, if any.
func (m TemplateModel) Err() error {
	return m.err
}

func (m TemplateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TemplateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case templateListing:
		return m.updateListing(key)
	case templateCreating, templateEditing:
		return m.updateForm(key)
	case templateDeleting:
		return m.updateDeleting(key)
	}
	return m, nil
}

func (m TemplateModel) updateListing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.templates)-1 {
			m.cursor++
		}

	case "n":
		m.state = templateCreating
		m.errMsg, m.status = "", ""
		m.resetForm("", models.DayHours{})
		return m, textinput.Blink

	case "e":
		if len(m.templates) == 0 {
			return m, nil
		}
		tmpl := m.templates[m.cursor]
		m.state = templateEditing
		m.editID = tmpl.ID
		m.errMsg, m.status = "", ""
		m.resetForm(tmpl.Project, tmpl.Days())
		m.setFocus(1) // project name is fixed while editing
		return m, textinput.Blink

	case "d":
		if len(m.templates) == 0 {
			return m, nil
		}
		m.state = templateDeleting
		m.errMsg, m.status = "", ""
	}
	return m, nil
}

func (m TemplateModel) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	first := 0
	if m.state == templateEditing {
		first = 1
	}

	switch key.String() {
	case "esc":
		m.state = templateListing
		m.errMsg = ""
		return m, nil

	case "tab", "down":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
		}
		return m, textinput.Blink

	case "shift+tab", "up":
		if m.focus > first {
			m.setFocus(m.focus - 1)
		}
		return m, textinput.Blink

	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return m, textinput.Blink
		}
		return m.submitForm()
	}

	return m.updateInputs(key)
}

func (m TemplateModel) updateDeleting(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		tmpl := m.templates[m.cursor]
		if err := db.DeleteTemplate(m.g, tmpl.ID); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Deleted template %q", tmpl.Project)
		m.state = templateListing
		return m.reload()

	case "n", "N", "esc":
		m.state = templateListing
	}
	return m, nil
}

// submitForm validates the inputs and persists a create or an edit.
func (m TemplateModel) submitForm() (tea.Model, tea.Cmd) {
	project := strings.TrimSpace(m.inputs[0].Value())
	if m.state == templateCreating && project == "" {
		m.errMsg = "project name is required"
		m.setFocus(0)
		return m, textinput.Blink
	}

	hours, err := m.parseHours()
	if err != nil {
		m.errMsg = err.Error()
		return m, textinput.Blink
	}

	switch m.state {
	case templateCreating:
		if _, err := db.CreateTemplate(m.g, project, hours); err != nil {
			if errors.Is(err, db.ErrDuplicate) || errors.Is(err, models.ErrInvalidValue) {
				m.errMsg = err.Error()
				return m, textinput.Blink
			}
			m.err = err
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Created template %q", project)

	case templateEditing:
		if err := db.UpdateTemplateHours(m.g, m.editID, hours); err != nil {
			if errors.Is(err, models.ErrInvalidValue) {
				m.errMsg = err.Error()
				return m, textinput.Blink
			}
			m.err = err
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Updated template %q", m.inputs[0].Value())
	}

	m.state = templateListing
	m.errMsg = ""
	return m.reload()
}

// parseHours reads the seven day inputs; empty fields count as zero.
func (m TemplateModel) parseHours() (models.DayHours, error) {
	var hours models.DayHours
	for i, day := range models.Weekdays() {
		raw := strings.TrimSpace(m.inputs[i+1].Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return hours, fmt.Errorf("%s: %q is not a number", day, raw)
		}
		if err := models.ValidateHours(v); err != nil {
			return hours, fmt.Errorf("%s: %v", day, err)
		}
		hours[day] = v
	}
	return hours, nil
}

func (m *TemplateModel) resetForm(project string, hours models.DayHours) {
	m.inputs[0].SetValue(project)
	for i, day := range models.Weekdays() {
		m.inputs[i+1].SetValue(FormatHours(hours[day]))
	}
	m.setFocus(0)
}

func (m *TemplateModel) setFocus(idx int) {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m TemplateModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != templateCreating && m.state != templateEditing {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// reload refetches the templates after a mutation.
func (m TemplateModel) reload() (tea.Model, tea.Cmd) {
	templates, err := db.ListTemplates(m.g)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.templates = templates
	if m.cursor >= len(templates) {
		m.cursor = len(templates) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m, nil
}

func (m TemplateModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(title.Render("Template Management (Daily Defaults)"))
	b.WriteString("\n\n")

	if len(m.templates) == 0 {
		b.WriteString(dimStyle.Render("No templates yet. Press n to create one."))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderTemplates(m.templates))
		if m.state == templateListing || m.state == templateDeleting {
			selected := m.templates[m.cursor]
			b.WriteString(dimStyle.Render(fmt.Sprintf("Selected: %s (%d/%d)", selected.Project, m.cursor+1, len(m.templates))))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	switch m.state {
	case templateCreating, templateEditing:
		header := "New template"
		if m.state == templateEditing {
			header = "Edit template " + m.inputs[0].Value()
		}
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")
		start := 0
		if m.state == templateEditing {
			start = 1
		}
		for i := start; i < len(m.inputs); i++ {
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString(helpLine("enter next · tab/↑/↓ move · esc cancel"))

	case templateDeleting:
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true)
		b.WriteString(warn.Render(fmt.Sprintf("Delete template %q? (y/n)", m.templates[m.cursor].Project)))
		b.WriteString("\n")

	default:
		b.WriteString(helpLine("n new · e edit · d delete · ↑/↓ select · q quit"))
	}

	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
		b.WriteString(okStyle.Render("✓ " + m.status))
		b.WriteString("\n")
	}

	return b.String()
}

func helpLine(text string) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	return helpStyle.Render(text) + "\n"
}
