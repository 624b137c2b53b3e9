package report

import (
	"fmt"
	"time"
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth validates the 1..12 month number from user input.
func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// Previous returns the calendar month before the one containing now, the
// default for monthly reports and exports.
func Previous(now time.Time) Month {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, 0, -1)
	return Month{Year: prev.Year(), Month: prev.Month()}
}

// Days returns the number of days in the month: the first day of the next
// month minus one day.
func (m Month) Days() int {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// Date returns the calendar date of a day number, and whether it exists in
// this month. Day numbers run 1..31; e.g. (February, 30) reports false.
func (m Month) Date(day int) (time.Time, bool) {
	if day < 1 || day > m.Days() {
		return time.Time{}, false
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC), true
}

// Contains reports whether a date falls inside this month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%d/%d", int(m.Month), m.Year)
}

var dutchMonths = [13]string{
	"Onbekend",
	"Januari", "Februari", "Maart", "April", "Mei", "Juni",
	"Juli", "Augustus", "September", "Oktober", "November", "December",
}

// Name returns the Dutch month name used on the exported timesheet.
func (m Month) Name() string {
	if m.Month < time.January || m.Month > time.December {
		return dutchMonths[0]
	}
	return dutchMonths[m.Month]
}
