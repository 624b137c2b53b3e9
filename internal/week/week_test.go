package week

import (
	"errors"
	"testing"
	"time"

	"urenstaat/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{name: "plain week", input: "2024-W05", want: Key{2024, 5}},
		{name: "double digit week", input: "2023-W52", want: Key{2023, 52}},
		{name: "week 53", input: "2020-W53", want: Key{2020, 53}},
		{name: "missing W", input: "2024-05", wantErr: true},
		{name: "single digit week", input: "2024-W5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "next week", wantErr: true},
		{name: "week zero", input: "2024-W00", wantErr: true},
		{name: "week 54", input: "2024-W54", wantErr: true},
		{name: "trailing text", input: "2024-W05x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrFormat) {
					t.Errorf("Parse(%q) error = %v, want ErrFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if got := (Key{2024, 5}).String(); got != "2024-W05" {
		t.Errorf("String() = %q, want %q", got, "2024-W05")
	}
	if got := (Key{2023, 52}).String(); got != "2023-W52" {
		t.Errorf("String() = %q, want %q", got, "2023-W52")
	}
}

func TestKeyDate(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		day  models.Weekday
		want string // yyyy-mm-dd
	}{
		{name: "2024 week 1 monday", key: Key{2024, 1}, day: models.Monday, want: "2024-01-01"},
		{name: "2024 week 5 monday", key: Key{2024, 5}, day: models.Monday, want: "2024-01-29"},
		{name: "2024 week 5 wednesday", key: Key{2024, 5}, day: models.Wednesday, want: "2024-01-31"},
		{name: "2024 week 5 thursday crosses month", key: Key{2024, 5}, day: models.Thursday, want: "2024-02-01"},
		{name: "2020 week 53 sunday", key: Key{2020, 53}, day: models.Sunday, want: "2021-01-03"},
		{name: "2015 week 1 starts in 2014", key: Key{2015, 1}, day: models.Monday, want: "2014-12-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.key.Date(tt.day)
			if err != nil {
				t.Fatalf("Date() error = %v", err)
			}
			if s := got.Format("2006-01-02"); s != tt.want {
				t.Errorf("Date() = %s, want %s", s, tt.want)
			}
		})
	}
}

func TestKeyDateInvalidWeek(t *testing.T) {
	// 2021 has 52 ISO weeks, 2020 has 53.
	if _, err := (Key{2021, 53}).Date(models.Monday); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("2021-W53 error = %v, want ErrInvalidDate", err)
	}
	if _, err := (Key{2020, 53}).Date(models.Monday); err != nil {
		t.Errorf("2020-W53 error = %v, want nil", err)
	}
	if _, err := (Key{2024, 0}).Date(models.Monday); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("2024-W00 error = %v, want ErrInvalidDate", err)
	}
}

func TestRoundTrip(t *testing.T) {
	// Every valid (year, week, weekday) must survive Date -> FromDate.
	for year := 2019; year <= 2026; year++ {
		for num := 1; num <= weeksInYear(year); num++ {
			key := Key{Year: year, Week: num}
			for _, day := range models.Weekdays() {
				date, err := key.Date(day)
				if err != nil {
					t.Fatalf("Date(%v, %v) error = %v", key, day, err)
				}
				if got := FromDate(date); got != key {
					t.Fatalf("FromDate(%s) = %v, want %v", date.Format("2006-01-02"), got, key)
				}
			}
		}
	}
}

func TestFromDateYearCrossover(t *testing.T) {
	tests := []struct {
		date string
		want Key
	}{
		{date: "2024-12-30", want: Key{2025, 1}}, // Monday of week 1 of 2025
		{date: "2021-01-01", want: Key{2020, 53}},
		{date: "2016-01-01", want: Key{2015, 53}},
		{date: "2024-06-15", want: Key{2024, 24}},
	}

	for _, tt := range tests {
		date, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := FromDate(date); got != tt.want {
			t.Errorf("FromDate(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestNext(t *testing.T) {
	// Next from a Wednesday lands in the following ISO week.
	wed := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)
	if got := Next(wed); got != (Key{2024, 6}) {
		t.Errorf("Next() = %v, want 2024-W06", got)
	}
	// Crossing a year boundary.
	dec := time.Date(2024, time.December, 27, 0, 0, 0, 0, time.UTC)
	if got := Next(dec); got != (Key{2025, 1}) {
		t.Errorf("Next() = %v, want 2025-W01", got)
	}
}
