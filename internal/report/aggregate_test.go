package report

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"urenstaat/internal/models"
)

func TestMonthDays(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		m := Month{Year: tt.year, Month: tt.month}
		if got := m.Days(); got != tt.want {
			t.Errorf("%s Days() = %d, want %d", m, got, tt.want)
		}
	}
}

func TestMonthDate(t *testing.T) {
	feb := Month{Year: 2023, Month: time.February}
	if _, ok := feb.Date(28); !ok {
		t.Error("Date(28) should exist in February 2023")
	}
	for _, day := range []int{0, 29, 30, 31, 32} {
		if _, ok := feb.Date(day); ok {
			t.Errorf("Date(%d) should not exist in February 2023", day)
		}
	}
}

func TestPrevious(t *testing.T) {
	tests := []struct {
		now  string
		want Month
	}{
		{now: "2024-03-15", want: Month{2024, time.February}},
		{now: "2024-01-02", want: Month{2023, time.December}},
	}
	for _, tt := range tests {
		now, _ := time.Parse("2006-01-02", tt.now)
		if got := Previous(now); got != tt.want {
			t.Errorf("Previous(%s) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestAggregateMonthBoundary(t *testing.T) {
	// ISO week 5 of 2024 runs Mon 2024-01-29 .. Sun 2024-02-04. A standard
	// Mon-Fri week contributes three days to January and two to February.
	rows := []Row{
		{Week: "2024-W05", Project: "Acme", Hours: models.DayHours{8, 8, 8, 8, 8, 0, 0}},
	}

	jan := Aggregate(rows, Month{2024, time.January})
	if got := jan.Cells["Acme"]; !reflect.DeepEqual(got, map[int]float64{29: 8, 30: 8, 31: 8}) {
		t.Errorf("January cells = %v", got)
	}
	if jan.GrandTotal != 24 {
		t.Errorf("January grand total = %v, want 24", jan.GrandTotal)
	}

	feb := Aggregate(rows, Month{2024, time.February})
	if got := feb.Cells["Acme"]; !reflect.DeepEqual(got, map[int]float64{1: 8, 2: 8}) {
		t.Errorf("February cells = %v", got)
	}
	if feb.GrandTotal != 16 {
		t.Errorf("February grand total = %v, want 16", feb.GrandTotal)
	}
}

func TestAggregateSkipsMalformedWeeks(t *testing.T) {
	rows := []Row{
		{Week: "garbage", Project: "Acme", Hours: models.DayHours{8, 0, 0, 0, 0, 0, 0}},
		{Week: "2024-5", Project: "Acme", Hours: models.DayHours{8, 0, 0, 0, 0, 0, 0}},
		{Week: "2024-W10", Project: "Acme", Hours: models.DayHours{8, 0, 0, 0, 0, 0, 0}},
	}

	m := Aggregate(rows, Month{2024, time.March})
	if m.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", m.Skipped)
	}
	// Week 10 of 2024 starts Monday March 4th.
	if got := m.Cells["Acme"][4]; got != 8 {
		t.Errorf("Cells[Acme][4] = %v, want 8", got)
	}
}

func TestAggregateSkipsInvalidWeekNumber(t *testing.T) {
	// 2021 has no week 53; the row parses but every day slot is dropped.
	rows := []Row{
		{Week: "2021-W53", Project: "Acme", Hours: models.DayHours{8, 8, 8, 8, 8, 8, 8}},
	}
	m := Aggregate(rows, Month{2021, time.December})
	if !m.Empty() {
		t.Errorf("matrix should be empty, got %v", m.Cells)
	}
	if m.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0 (row itself is well-formed)", m.Skipped)
	}
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil, Month{2024, time.January})
	if !m.Empty() || m.GrandTotal != 0 {
		t.Errorf("empty input should yield empty matrix, got %+v", m)
	}

	zero := []Row{{Week: "2024-W03", Project: "Acme", Hours: models.DayHours{}}}
	m = Aggregate(zero, Month{2024, time.January})
	if !m.Empty() {
		t.Errorf("all-zero rows should yield empty matrix, got %v", m.Cells)
	}
}

func TestAggregateOrderIndependence(t *testing.T) {
	rows := []Row{
		{Week: "2024-W05", Project: "Acme", Hours: models.DayHours{8, 8, 8, 8, 8, 0, 0}},
		{Week: "2024-W04", Project: "Acme", Hours: models.DayHours{4, 4, 4, 4, 4, 0, 0}},
		{Week: "2024-W04", Project: "Globex", Hours: models.DayHours{0, 2, 0, 2, 0, 1, 0}},
		{Week: "2024-W01", Project: "Globex", Hours: models.DayHours{6, 6, 6, 0, 0, 0, 0}},
		{Week: "bogus", Project: "Initech", Hours: models.DayHours{1, 1, 1, 1, 1, 1, 1}},
	}

	want := Aggregate(rows, Month{2024, time.January})

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]Row, len(rows))
		copy(shuffled, rows)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Aggregate(shuffled, Month{2024, time.January})
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("aggregation depends on row order:\n got %+v\nwant %+v", got, want)
		}
	}
}

func TestAggregateGrandTotalMatchesCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var rows []Row
	projects := []string{"Acme", "Globex", "Initech"}
	for w := 1; w <= 52; w++ {
		for _, p := range projects {
			var h models.DayHours
			for d := range h {
				if rng.Intn(3) == 0 {
					h[d] = float64(rng.Intn(16)) / 2
				}
			}
			rows = append(rows, Row{Week: fmt.Sprintf("2024-W%02d", w), Project: p, Hours: h})
		}
	}

	m := Aggregate(rows, Month{2024, time.June})

	var cellSum float64
	for _, p := range m.Projects() {
		cellSum += m.RowTotal(p)
	}
	if diff := cellSum - m.GrandTotal; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("sum of cells = %v, grand total = %v", cellSum, m.GrandTotal)
	}

	var colSum float64
	for _, v := range m.ColTotals {
		colSum += v
	}
	if diff := colSum - m.GrandTotal; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("sum of column totals = %v, grand total = %v", colSum, m.GrandTotal)
	}
}
