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

// logState is the mode of the weekly log management loop.
type logState int

const (
	logListing logState = iota
	logSeeding
	logPickingDay
	logEditingValue
	logAdding
	logDeleting
)

// LogModel is the interactive management loop over one week's entries.
type LogModel struct {
	g    *gorm.DB
	week string

	entries []models.Entry
	cursor  int
	day     models.Weekday
	state   logState

	input     textinput.Model
	seedOffer bool
	errMsg    string
	status    string
	err       error
}

// NewLogModel loads the chosen week and starts in the listing state. When
// the week has no entries yet, it offers to seed them from the templates.
func NewLogModel(g *gorm.DB, week string) (LogModel, error) {
	entries, err := db.ListEntries(g, week)
	if err != nil {
		return LogModel{}, err
	}

	input := textinput.New()
	input.Width = 24
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	m := LogModel{g: g, week: week, entries: entries, input: input}
	if len(entries) == 0 {
		m.state = logSeeding
		m.seedOffer = true
	}
	return m, nil
}

// Err reports a storage error that ended the loop, if any.
func (m LogModel) Err() error {
	return m.err
}

func (m LogModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case logListing:
		return m.updateListing(key)
	case logSeeding:
		return m.updateSeeding(key)
	case logPickingDay:
		return m.updatePickingDay(key)
	case logEditingValue, logAdding:
		return m.updateInputState(key)
	case logDeleting:
		return m.updateDeleting(key)
	}
	return m, nil
}

func (m LogModel) updateListing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "e":
		if len(m.entries) == 0 {
			return m, nil
		}
		m.state = logPickingDay
		m.day = models.Monday
		m.errMsg, m.status = "", ""

	case "a":
		m.state = logAdding
		m.errMsg, m.status = "", ""
		m.input.Placeholder = "project name"
		m.input.CharLimit = 50
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "r":
		if len(m.entries) == 0 {
			return m, nil
		}
		m.state = logDeleting
		m.errMsg, m.status = "", ""

	case "s":
		m.state = logSeeding
	}
	return m, nil
}

func (m LogModel) updateSeeding(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		created, skipped, err := db.SeedWeek(m.g, m.week)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Seeded %d entries from templates", created)
		if skipped > 0 {
			m.status += fmt.Sprintf(" (%d already present)", skipped)
		}
		m.state = logListing
		return m.reload()

	case "n", "N", "esc", "q":
		if m.seedOffer && len(m.entries) == 0 {
			// Declining the initial offer on an empty week leaves an
			// empty listing; a is still available to add projects.
			m.seedOffer = false
		}
		m.state = logListing
	}
	return m, nil
}

func (m LogModel) updatePickingDay(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.state = logListing

	case "left", "h":
		if m.day > models.Monday {
			m.day--
		}

	case "right", "l":
		if m.day < models.Sunday {
			m.day++
		}

	case "enter":
		entry := m.entries[m.cursor]
		m.state = logEditingValue
		m.input.Placeholder = "hours"
		m.input.CharLimit = 6
		m.input.SetValue(FormatHours(entry.Days()[m.day]))
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m LogModel) updateInputState(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.state = logListing
		m.errMsg = ""
		return m, nil

	case "enter":
		if m.state == logAdding {
			return m.submitAdd()
		}
		return m.submitDayEdit()
	}
	return m.updateInput(key)
}

func (m LogModel) updateDeleting(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		entry := m.entries[m.cursor]
		if err := db.DeleteEntry(m.g, entry.ID); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Removed %q from %s", entry.Project, m.week)
		m.state = logListing
		return m.reload()

	case "n", "N", "esc":
		m.state = logListing
	}
	return m, nil
}

func (m LogModel) submitAdd() (tea.Model, tea.Cmd) {
	project := strings.TrimSpace(m.input.Value())
	if project == "" {
		m.errMsg = "project name is required"
		return m, textinput.Blink
	}

	if _, err := db.CreateEntry(m.g, m.week, project, models.DayHours{}); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			m.errMsg = err.Error()
			return m, textinput.Blink
		}
		m.err = err
		return m, tea.Quit
	}

	m.status = fmt.Sprintf("Added %q to %s", project, m.week)
	m.state = logListing
	m.errMsg = ""
	return m.reload()
}

func (m LogModel) submitDayEdit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		raw = "0"
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.errMsg = fmt.Sprintf("%q is not a number", raw)
		m.input.SetValue("")
		return m, textinput.Blink
	}

	entry := m.entries[m.cursor]
	if err := db.UpdateEntryDay(m.g, entry.ID, m.day, value); err != nil {
		if errors.Is(err, models.ErrInvalidValue) {
			m.errMsg = err.Error()
			m.input.SetValue("")
			return m, textinput.Blink
		}
		m.err = err
		return m, tea.Quit
	}

	m.status = fmt.Sprintf("Set %s %s for %q to %s", m.day, m.week, entry.Project, FormatHours(value))
	m.state = logListing
	m.errMsg = ""
	return m.reload()
}

func (m LogModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != logEditingValue && m.state != logAdding {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m LogModel) reload() (tea.Model, tea.Cmd) {
	entries, err := db.ListEntries(m.g, m.week)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m, nil
}

func (m LogModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(title.Render("Timesheet: " + m.week))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("No entries found for %s.", m.week)))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderEntries(m.entries))
		if m.state == logListing || m.state == logDeleting || m.state == logPickingDay {
			selected := m.entries[m.cursor]
			b.WriteString(dimStyle.Render(fmt.Sprintf("Selected: %s (%d/%d)", selected.Project, m.cursor+1, len(m.entries))))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	switch m.state {
	case logSeeding:
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true)
		b.WriteString(warn.Render("Load defaults from templates? (y/n)"))
		b.WriteString("\n")

	case logPickingDay:
		b.WriteString(m.renderDayPicker())
		b.WriteString(helpLine("←/→ pick day · enter edit · esc cancel"))

	case logEditingValue:
		entry := m.entries[m.cursor]
		b.WriteString(headerStyle.Render(fmt.Sprintf("Hours for %s, %s:", entry.Project, m.day)))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpLine("enter save · esc cancel"))

	case logAdding:
		b.WriteString(headerStyle.Render("Add project to " + m.week))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpLine("enter save · esc cancel"))

	case logDeleting:
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true)
		b.WriteString(warn.Render(fmt.Sprintf("Remove %q from %s? (y/n)", m.entries[m.cursor].Project, m.week)))
		b.WriteString("\n")

	default:
		b.WriteString(helpLine("e edit day · a add project · r remove · s seed from templates · ↑/↓ select · q quit"))
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

// renderDayPicker highlights the weekday being edited.
func (m LogModel) renderDayPicker() string {
	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	var parts []string
	for _, day := range models.Weekdays() {
		label := day.String()
		if day == m.day {
			label = selected.Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ") + "\n"
}
