// Package week parses the canonical "YYYY-Www" week identifier and converts
// between ISO 8601 week dates and calendar dates.
package week

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"urenstaat/internal/models"
)

var (
	// ErrFormat is returned when a week string does not match "YYYY-Www".
	ErrFormat = errors.New("week must look like 2024-W05")
	// ErrInvalidDate is returned when an (ISO year, ISO week) pair does not
	// exist, e.g. week 53 in a 52-week year.
	ErrInvalidDate = errors.New("no such ISO week")
)

// Key identifies one ISO week. Week numbering follows ISO 8601: weeks start
// on Monday and week 1 contains the year's first Thursday, so Year may
// differ from the calendar year at year boundaries.
type Key struct {
	Year int
	Week int
}

var weekRegex = regexp.MustCompile(`^(\d+)-W(\d{2,})$`)

// Parse parses the canonical week string form.
func Parse(s string) (Key, error) {
	matches := weekRegex.FindStringSubmatch(s)
	if len(matches) != 3 {
		return Key{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	year, err := strconv.Atoi(matches[1])
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	num, err := strconv.Atoi(matches[2])
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	if num < 1 || num > 53 {
		return Key{}, fmt.Errorf("%w: week %d out of range", ErrFormat, num)
	}

	return Key{Year: year, Week: num}, nil
}

// String renders the canonical "YYYY-Www" form.
func (k Key) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}

// Date converts the key plus a weekday to a calendar date. Returns
// ErrInvalidDate when the week number does not exist in the key's year.
func (k Key) Date(day models.Weekday) (time.Time, error) {
	if k.Week < 1 || k.Week > weeksInYear(k.Year) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, k)
	}

	// January 4th is always inside ISO week 1.
	jan4 := time.Date(k.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -isoWeekdayIndex(jan4))
	return monday.AddDate(0, 0, (k.Week-1)*7+int(day)), nil
}

// FromDate derives the ISO week key of a calendar date. The ISO year can
// differ from the calendar year for dates in the first or last week.
func FromDate(t time.Time) Key {
	year, num := t.ISOWeek()
	return Key{Year: year, Week: num}
}

// Next returns the ISO week after the one containing t. Used as the default
// week for logging: hours are typically planned one week ahead.
func Next(t time.Time) Key {
	return FromDate(t.AddDate(0, 0, 7))
}

// isoWeekdayIndex maps time.Weekday to the ISO Monday-first index 0..6.
func isoWeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// weeksInYear reports 52 or 53. December 28th is always in the last week.
func weeksInYear(year int) int {
	dec28 := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC)
	_, num := dec28.ISOWeek()
	return num
}
