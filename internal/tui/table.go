package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"urenstaat/internal/models"
	"urenstaat/internal/report"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	totalStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
)

// FormatHours renders an hour value, hiding zeroes to keep tables readable.
func FormatHours(h float64) string {
	if h == 0 {
		return ""
	}
	return strconv.FormatFloat(h, 'f', -1, 64)
}

type weekRow struct {
	Project string
	Hours   models.DayHours
}

// weekTable renders rows of (project, DayHours) with a per-day totals line.
func weekTable(rows []weekRow) string {
	var b strings.Builder

	header := fmt.Sprintf("%-20s %5s %5s %5s %5s %5s %5s %5s %7s",
		"PROJECT", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "TOTAL")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("-", len(header))))
	b.WriteString("\n")

	var daySums models.DayHours
	for _, row := range rows {
		line := fmt.Sprintf("%-20s", truncate(row.Project, 20))
		for _, day := range models.Weekdays() {
			line += fmt.Sprintf(" %5s", FormatHours(row.Hours[day]))
			daySums[day] += row.Hours[day]
		}
		line += " " + totalStyle.Render(fmt.Sprintf("%7s", FormatHours(row.Hours.Total())))
		b.WriteString(line)
		b.WriteString("\n")
	}

	totals := fmt.Sprintf("%-20s", "TOTAL")
	for _, day := range models.Weekdays() {
		totals += fmt.Sprintf(" %5s", FormatHours(daySums[day]))
	}
	totals += fmt.Sprintf(" %7s", FormatHours(daySums.Total()))
	b.WriteString(totalStyle.Render(totals))
	b.WriteString("\n")

	return b.String()
}

// RenderTemplates renders the template overview table.
func RenderTemplates(templates []models.Template) string {
	rows := make([]weekRow, len(templates))
	for i, t := range templates {
		rows[i] = weekRow{Project: t.Project, Hours: t.Days()}
	}
	return weekTable(rows)
}

// RenderEntries renders one week's log table.
func RenderEntries(entries []models.Entry) string {
	rows := make([]weekRow, len(entries))
	for i, e := range entries {
		rows[i] = weekRow{Project: e.Project, Hours: e.Days()}
	}
	return weekTable(rows)
}

// Short day names for the terminal matrix header.
var matrixDays = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// RenderMatrix renders the monthly project/day matrix with column totals.
func RenderMatrix(m report.Matrix) string {
	var b strings.Builder
	days := m.Month.Days()

	// Two header lines: weekday abbreviation over day number.
	nameLine := fmt.Sprintf("%-16s", "")
	numLine := fmt.Sprintf("%-16s", "PROJECT")
	for d := 1; d <= days; d++ {
		date, _ := m.Month.Date(d)
		weekday := (int(date.Weekday()) + 6) % 7
		nameLine += fmt.Sprintf(" %4s", matrixDays[weekday])
		numLine += fmt.Sprintf(" %4s", fmt.Sprintf("%02d", d))
	}
	numLine += fmt.Sprintf(" %6s", "TOT")
	b.WriteString(headerStyle.Render(nameLine))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(numLine))
	b.WriteString("\n")

	for _, project := range m.Projects() {
		line := fmt.Sprintf("%-16s", truncate(project, 16))
		for d := 1; d <= days; d++ {
			line += fmt.Sprintf(" %4s", FormatHours(m.Cells[project][d]))
		}
		line += " " + totalStyle.Render(fmt.Sprintf("%6s", FormatHours(m.RowTotal(project))))
		b.WriteString(line)
		b.WriteString("\n")
	}

	totals := fmt.Sprintf("%-16s", "TOTAL")
	for d := 1; d <= days; d++ {
		totals += fmt.Sprintf(" %4s", FormatHours(m.ColTotals[d]))
	}
	totals += fmt.Sprintf(" %6s", FormatHours(m.GrandTotal))
	b.WriteString(totalStyle.Render(totals))
	b.WriteString("\n")

	return b.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width > 3 {
		return s[:width-3] + "..."
	}
	return s[:width]
}
