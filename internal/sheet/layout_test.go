package sheet

import (
	"reflect"
	"testing"
	"time"

	"urenstaat/internal/report"
)

var testEmployee = Employee{Name: "John Doe", Title: "Enterprise Architect", Phone: "000000000"}

func testOptions() Options {
	return Options{
		LogoPath:      "logo.jpg",
		SignaturePath: "signature.png",
		Address1:      "Hoofdstraat 1",
		Address2:      "1234 AB Amsterdam",
		FillDate:      time.Date(2024, time.March, 4, 10, 30, 0, 0, time.UTC),
	}
}

func noHours(time.Time) (float64, bool) { return 0, false }

func opAt(p Plan, kind OpKind, row, col int) (Op, bool) {
	for _, op := range p.Ops {
		if op.Kind == kind && op.Row == row && op.Col == col {
			return op, true
		}
	}
	return Op{}, false
}

func TestBuildDeterministic(t *testing.T) {
	month := report.Month{Year: 2024, Month: time.January}
	hours := func(d time.Time) (float64, bool) {
		if d.Day()%3 == 0 {
			return 7.5, true
		}
		return 0, false
	}

	a := Build("Acme", month, testEmployee, hours, testOptions())
	b := Build("Acme", month, testEmployee, hours, testOptions())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs must produce identical plans")
	}
}

func TestBuildReservesAllDayColumns(t *testing.T) {
	// February 2023 has 28 days, but the grid always carries 31 columns:
	// days 29-31 appear as styled blanks with no numbers or labels.
	month := report.Month{Year: 2023, Month: time.February}
	p := Build("Acme", month, testEmployee, noHours, testOptions())

	for day := 29; day <= 31; day++ {
		col := firstDayCol + day - 1
		for _, row := range []int{calHeaderRow, calHeaderRow + 1, hoursRow} {
			if _, ok := opAt(p, OpBlank, row, col); !ok {
				t.Errorf("day %d row %d: want styled blank placeholder", day, row)
			}
			if op, ok := opAt(p, OpLabel, row, col); ok {
				t.Errorf("day %d row %d: unexpected label %q", day, row, op.Text)
			}
			if _, ok := opAt(p, OpNumber, row, col); ok {
				t.Errorf("day %d row %d: unexpected number", day, row)
			}
		}
	}

	// Valid day 28 gets its weekday abbreviation and day number.
	col := firstDayCol + 27
	head, ok := opAt(p, OpLabel, calHeaderRow, col)
	if !ok || head.Text != "Di" { // 2023-02-28 is a Tuesday
		t.Errorf("day 28 header = %+v, want Di label", head)
	}
	num, ok := opAt(p, OpNumber, calHeaderRow+1, col)
	if !ok || num.Number != 28 {
		t.Errorf("day 28 number = %+v", num)
	}
}

func TestBuildZeroDataStillHasFormulas(t *testing.T) {
	month := report.Month{Year: 2024, Month: time.January}
	p := Build("Acme", month, testEmployee, noHours, testOptions())

	// Every hours cell is blank.
	for day := 1; day <= 31; day++ {
		col := firstDayCol + day - 1
		if _, ok := opAt(p, OpNumber, hoursRow, col); ok {
			t.Errorf("day %d: hours cell should be blank when nothing is logged", day)
		}
		if _, ok := opAt(p, OpBlank, hoursRow, col); !ok {
			t.Errorf("day %d: missing styled blank hours cell", day)
		}
	}

	// All five row totals are present.
	for r := 0; r < dataRows; r++ {
		if _, ok := opAt(p, OpFormula, hoursRow+r, totalCol); !ok {
			t.Errorf("missing row-total formula for data row %d", r)
		}
	}

	// All 31 column totals plus the grand total are present.
	totalRow := hoursRow + dataRows
	for day := 1; day <= 31; day++ {
		if _, ok := opAt(p, OpFormula, totalRow, firstDayCol+day-1); !ok {
			t.Errorf("missing column-total formula for day %d", day)
		}
	}
	if _, ok := opAt(p, OpFormula, totalRow, totalCol); !ok {
		t.Error("missing grand-total formula")
	}
}

func TestBuildFormulaText(t *testing.T) {
	month := report.Month{Year: 2024, Month: time.January}
	p := Build("Acme", month, testEmployee, noHours, testOptions())

	rowTotal, _ := opAt(p, OpFormula, hoursRow, totalCol)
	if rowTotal.Formula != "=SUM(C17:AG17)" {
		t.Errorf("hours row total = %q, want =SUM(C17:AG17)", rowTotal.Formula)
	}

	totalRow := hoursRow + dataRows
	dayTotal, _ := opAt(p, OpFormula, totalRow, firstDayCol)
	if dayTotal.Formula != "=SUM(C17:C21)" {
		t.Errorf("day 1 column total = %q, want =SUM(C17:C21)", dayTotal.Formula)
	}

	grand, _ := opAt(p, OpFormula, totalRow, totalCol)
	if grand.Formula != "=SUM(AH17:AH21)" {
		t.Errorf("grand total = %q, want =SUM(AH17:AH21)", grand.Formula)
	}

	// Expense tax back-calculation at the fixed 21% inclusive rate.
	expHeaderRow := totalRow + 4
	firstLine := expHeaderRow + 1
	excl, ok := opAt(p, OpFormula, firstLine, 23)
	if !ok || excl.Formula != "=AE27/121*100" {
		t.Errorf("expense excl formula = %+v, want =AE27/121*100", excl)
	}
	tax, ok := opAt(p, OpFormula, firstLine, 27)
	if !ok || tax.Formula != "=AE27/121*21" {
		t.Errorf("expense tax formula = %+v, want =AE27/121*21", tax)
	}
}

func TestBuildHoursPlacement(t *testing.T) {
	month := report.Month{Year: 2024, Month: time.January}
	hours := func(d time.Time) (float64, bool) {
		switch d.Day() {
		case 29, 30, 31:
			return 8, true
		case 5:
			return 0, true // logged zero stays visually blank
		}
		return 0, false
	}

	p := Build("Acme", month, testEmployee, hours, testOptions())

	for _, day := range []int{29, 30, 31} {
		op, ok := opAt(p, OpNumber, hoursRow, firstDayCol+day-1)
		if !ok || op.Number != 8 {
			t.Errorf("day %d hours = %+v, want 8", day, op)
		}
	}
	if _, ok := opAt(p, OpNumber, hoursRow, firstDayCol+4); ok {
		t.Error("day 5: zero hours must not be written as a number")
	}
	if _, ok := opAt(p, OpBlank, hoursRow, firstDayCol+4); !ok {
		t.Error("day 5: want styled blank")
	}
}

func TestBuildIdentityBlock(t *testing.T) {
	month := report.Month{Year: 2024, Month: time.February}
	p := Build("Globex", month, testEmployee, noHours, testOptions())

	title, ok := opAt(p, OpLabel, titleRow, identityCol)
	if !ok || title.Text != "TIJDVERANTWOORDINGSFORMULIER" {
		t.Errorf("title = %+v", title)
	}

	name, ok := opAt(p, OpMergedLabel, 3, identityValueCol)
	if !ok || name.Text != "John Doe" {
		t.Errorf("employee name = %+v", name)
	}

	client, ok := opAt(p, OpMergedLabel, 7, identityValueCol)
	if !ok || client.Text != "Globex" {
		t.Errorf("client = %+v", client)
	}

	monthVal, ok := opAt(p, OpMergedLabel, 3, monthValueCol)
	if !ok || monthVal.Text != "Februari" {
		t.Errorf("month = %+v, want Februari", monthVal)
	}

	fill, ok := opAt(p, OpMergedLabel, 5, monthValueCol)
	if !ok || fill.Text != "04-03-2024" {
		t.Errorf("fill date = %+v, want 04-03-2024", fill)
	}
}

func TestColName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"}, {1, "B"}, {2, "C"}, {25, "Z"}, {26, "AA"},
		{30, "AE"}, {31, "AF"}, {32, "AG"}, {33, "AH"},
	}
	for _, tt := range tests {
		if got := colName(tt.col); got != tt.want {
			t.Errorf("colName(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}
