// Package report buckets weekly hour entries into calendar-month matrices.
package report

import (
	"sort"

	"urenstaat/internal/models"
	"urenstaat/internal/week"
)

// Row is one stored timesheet row, as handed over by the store.
type Row struct {
	Week    string
	Project string
	Hours   models.DayHours
}

// Matrix is the per-project per-day rollup of one calendar month. Cells
// holds only non-zero accumulations: an absent day means no hours landed
// there. Skipped counts rows whose week string could not be parsed.
type Matrix struct {
	Month      Month
	Cells      map[string]map[int]float64
	ColTotals  map[int]float64
	GrandTotal float64
	Skipped    int
}

// Aggregate buckets weekly rows into the target month. Rows with malformed
// week strings are skipped and counted; day slots whose (year, week) pair
// does not exist are skipped individually. The result is independent of the
// input row order.
func Aggregate(rows []Row, target Month) Matrix {
	m := Matrix{
		Month:     target,
		Cells:     make(map[string]map[int]float64),
		ColTotals: make(map[int]float64),
	}

	for _, row := range rows {
		key, err := week.Parse(row.Week)
		if err != nil {
			m.Skipped++
			continue
		}

		for _, day := range models.Weekdays() {
			hours := row.Hours[day]
			if hours == 0 {
				continue
			}

			date, err := key.Date(day)
			if err != nil {
				continue
			}
			if !target.Contains(date) {
				continue
			}

			d := date.Day()
			cells := m.Cells[row.Project]
			if cells == nil {
				cells = make(map[int]float64)
				m.Cells[row.Project] = cells
			}
			cells[d] += hours
			m.ColTotals[d] += hours
			m.GrandTotal += hours
		}
	}

	return m
}

// Projects returns the project names in sorted order for stable output.
func (m Matrix) Projects() []string {
	names := make([]string, 0, len(m.Cells))
	for name := range m.Cells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RowTotal sums all day buckets of one project.
func (m Matrix) RowTotal(project string) float64 {
	var total float64
	for _, v := range m.Cells[project] {
		total += v
	}
	return total
}

// Empty reports whether nothing landed in the month.
func (m Matrix) Empty() bool {
	return len(m.Cells) == 0
}
