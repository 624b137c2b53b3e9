package models

import (
	"errors"
	"math"
)

// ErrInvalidValue is returned when an hour value is negative or not finite.
var ErrInvalidValue = errors.New("hours must be a finite number >= 0")

// Weekday indexes the seven day slots of a week, Monday first (ISO order).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "???"
	}
	return weekdayNames[d]
}

// Weekdays lists all seven weekdays in ISO order, for iteration.
func Weekdays() [7]Weekday {
	return [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// DayHours is an ordered Mon..Sun tuple of hour values.
type DayHours [7]float64

// Total sums the hours of all seven days.
func (h DayHours) Total() float64 {
	var total float64
	for _, v := range h {
		total += v
	}
	return total
}

// ValidateHours checks that a single hour value can be stored.
func ValidateHours(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrInvalidValue
	}
	return nil
}

// Validate checks every day slot of the tuple.
func (h DayHours) Validate() error {
	for _, v := range h {
		if err := ValidateHours(v); err != nil {
			return err
		}
	}
	return nil
}

// WeekHours maps the seven day slots onto the mon..sun REAL columns of the
// templates and timesheets tables. All column<->tuple conversion happens
// here so nothing else touches the individual fields.
type WeekHours struct {
	Mon float64 `gorm:"column:mon;default:0" json:"mon"`
	Tue float64 `gorm:"column:tue;default:0" json:"tue"`
	Wed float64 `gorm:"column:wed;default:0" json:"wed"`
	Thu float64 `gorm:"column:thu;default:0" json:"thu"`
	Fri float64 `gorm:"column:fri;default:0" json:"fri"`
	Sat float64 `gorm:"column:sat;default:0" json:"sat"`
	Sun float64 `gorm:"column:sun;default:0" json:"sun"`
}

// Days returns the stored columns as an ordered tuple.
func (w WeekHours) Days() DayHours {
	return DayHours{w.Mon, w.Tue, w.Wed, w.Thu, w.Fri, w.Sat, w.Sun}
}

// SetDays overwrites all seven columns from a tuple.
func (w *WeekHours) SetDays(h DayHours) {
	w.Mon, w.Tue, w.Wed, w.Thu, w.Fri, w.Sat, w.Sun = h[0], h[1], h[2], h[3], h[4], h[5], h[6]
}

// Total sums the seven columns.
func (w WeekHours) Total() float64 {
	return w.Days().Total()
}
