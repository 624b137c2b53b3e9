package models

import (
	"errors"
	"math"
	"testing"
)

func TestDayHoursTotal(t *testing.T) {
	tests := []struct {
		name  string
		hours DayHours
		want  float64
	}{
		{name: "empty", hours: DayHours{}, want: 0},
		{name: "full week", hours: DayHours{8, 8, 8, 8, 8, 0, 0}, want: 40},
		{name: "fractional", hours: DayHours{7.5, 0, 0, 0, 0, 0, 0.5}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hours.Total(); got != tt.want {
				t.Errorf("Total() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateHours(t *testing.T) {
	for _, v := range []float64{0, 0.5, 8, 24} {
		if err := ValidateHours(v); err != nil {
			t.Errorf("ValidateHours(%v) = %v, want nil", v, err)
		}
	}
	for _, v := range []float64{-1, -0.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := ValidateHours(v); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ValidateHours(%v) = %v, want ErrInvalidValue", v, err)
		}
	}
}

func TestWeekHoursRoundTrip(t *testing.T) {
	in := DayHours{1, 2, 3, 4, 5, 6, 7}
	var w WeekHours
	w.SetDays(in)
	if got := w.Days(); got != in {
		t.Errorf("Days() = %v, want %v", got, in)
	}
	if got := w.Total(); got != 28 {
		t.Errorf("Total() = %v, want 28", got)
	}
}
