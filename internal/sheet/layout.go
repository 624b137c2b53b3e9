package sheet

import (
	"fmt"
	"time"

	"urenstaat/internal/models"
	"urenstaat/internal/report"
)

// Employee is the identity block printed on top of the timesheet.
type Employee struct {
	Name  string
	Title string
	Phone string
}

// Options carries the variable non-core content of the layout: image paths,
// the company address lines and the fill date stamped on the form.
type Options struct {
	LogoPath      string
	SignaturePath string
	Address1      string
	Address2      string
	FillDate      time.Time
}

// HoursFunc reports the logged hours for a calendar date. The second return
// is false when nothing was logged for that date.
type HoursFunc func(time.Time) (float64, bool)

// Fixed grid offsets, 0-indexed. The layout is a static template: only the
// content varies, never the positions.
const (
	titleRow = 1

	identityCol      = 1
	identityValueCol = 2
	identityValueEnd = 9

	monthLabelCol = 12
	monthLabelEnd = 15
	monthValueCol = 16
	monthValueEnd = 20

	logoRow    = 2
	addressCol = 23

	calHeaderRow = 14 // weekday abbreviations; day numbers one row below
	hoursRow     = 16 // first of the five data rows
	dataRows     = 5  // hours row plus four manual category rows

	firstDayCol = 2  // day 1 lands here; 31 columns are always reserved
	dayColumns  = 31
	totalCol    = 33

	expenseLines = 4

	signatureHeight = 120
)

// Dutch two-letter weekday abbreviations, Monday first.
var dutchDays = [7]string{"Ma", "Di", "Wo", "Do", "Vr", "Za", "Zo"}

// Build lays out the complete timesheet for one project and month. The
// result is deterministic: equal inputs yield equal plans.
func Build(project string, m report.Month, emp Employee, hours HoursFunc, opts Options) Plan {
	p := Plan{
		Sheet: Settings{
			Landscape:   true,
			PaperA4:     true,
			FitToPage:   true,
			Protect:     true,
			HideGrid:    true,
			MarginLeft:  0.25,
			MarginRight: 0.25,
			MarginTop:   0.5,
			MarginBot:   0.5,
		},
	}

	fillDate := opts.FillDate.Format("02-01-2006")

	// Narrow day columns, a wide description column, a total column.
	for col := 0; col <= totalCol-1; col++ {
		p.colWidth(col, 6)
	}
	p.colWidth(identityCol, 20)
	p.colWidth(totalCol, 10)

	p.label(titleRow, identityCol, "TIJDVERANTWOORDINGSFORMULIER", StyleTitle)

	// Employee identity block.
	p.label(3, identityCol, "Naam medewerker", StyleHeader)
	p.merged(3, identityValueCol, identityValueEnd-identityValueCol+1, emp.Name, StyleHeader)
	p.label(4, identityCol, "Functie in opdracht", StyleHeader)
	p.merged(4, identityValueCol, identityValueEnd-identityValueCol+1, emp.Title, StyleHeaderUnlocked)
	p.label(5, identityCol, "Telefoonnummer", StyleHeader)
	p.merged(5, identityValueCol, identityValueEnd-identityValueCol+1, emp.Phone, StyleHeaderUnlocked)

	// Client and project block.
	p.label(7, identityCol, "Opdrachtgever", StyleHeader)
	p.merged(7, identityValueCol, identityValueEnd-identityValueCol+1, project, StyleHeaderUnlocked)
	p.label(8, identityCol, "Functie", StyleHeader)
	p.merged(8, identityValueCol, identityValueEnd-identityValueCol+1, "", StyleHeaderUnlocked)
	p.label(9, identityCol, "Projectnaam", StyleHeader)
	p.merged(9, identityValueCol, identityValueEnd-identityValueCol+1, "", StyleHeaderUnlocked)
	p.label(10, identityCol, "Projectnummer", StyleHeader)
	p.merged(10, identityValueCol, identityValueEnd-identityValueCol+1, "", StyleHeaderUnlocked)

	// Month, year and fill date, at their own column offset.
	p.merged(3, monthLabelCol, monthLabelEnd-monthLabelCol+1, "Maand", StyleHeader)
	p.merged(4, monthLabelCol, monthLabelEnd-monthLabelCol+1, "Jaar", StyleHeader)
	p.merged(5, monthLabelCol, monthLabelEnd-monthLabelCol+1, "Invuldatum", StyleHeader)
	p.merged(3, monthValueCol, monthValueEnd-monthValueCol+1, m.Name(), StyleHeader)
	p.merged(4, monthValueCol, monthValueEnd-monthValueCol+1, fmt.Sprintf("%d", m.Year), StyleHeader)
	p.merged(5, monthValueCol, monthValueEnd-monthValueCol+1, fillDate, StyleHeaderUnlocked)

	if opts.LogoPath != "" {
		p.image(logoRow, addressCol, opts.LogoPath)
	}
	if opts.Address1 != "" {
		p.label(7, addressCol, opts.Address1, StyleAddress)
	}
	if opts.Address2 != "" {
		p.label(8, addressCol, opts.Address2, StyleAddress)
	}

	// Calendar header and hours row. The grid always reserves 31 day
	// columns; days beyond the month length become styled blanks.
	p.label(hoursRow, identityCol, "Gewerkte uren", StyleDescription)

	for day := 1; day <= dayColumns; day++ {
		col := firstDayCol + day - 1
		date, ok := m.Date(day)
		if !ok {
			p.blank(calHeaderRow, col, StyleCalHeader)
			p.blank(calHeaderRow+1, col, StyleCalHeader)
			p.blank(hoursRow, col, StyleHours)
			continue
		}

		weekday := models.Weekday((int(date.Weekday()) + 6) % 7)
		p.label(calHeaderRow, col, dutchDays[weekday], StyleCalHeader)
		p.number(calHeaderRow+1, col, float64(day), StyleCalHeader)

		// Zero is never written as a number: blank cells keep the form
		// readable and still sum to zero in the total formulas.
		if v, logged := hours(date); logged && v > 0 {
			p.number(hoursRow, col, v, StyleHours)
		} else {
			p.blank(hoursRow, col, StyleHours)
		}
	}

	// Four editable rows for manual categories beneath the hours row.
	for r := 1; r < dataRows; r++ {
		p.blank(hoursRow+r, identityCol, StyleDescriptionUnlocked)
		for day := 1; day <= dayColumns; day++ {
			p.blank(hoursRow+r, firstDayCol+day-1, StyleHoursUnlocked)
		}
	}

	// Row totals over the fixed day-column range.
	p.label(calHeaderRow+1, totalCol, "Totaal", StyleRowTotal)
	firstDayName := colName(firstDayCol)
	lastDayName := colName(firstDayCol + dayColumns - 1)
	for r := 0; r < dataRows; r++ {
		row := hoursRow + r
		p.formula(row, totalCol, fmt.Sprintf("=SUM(%s%d:%s%d)", firstDayName, row+1, lastDayName, row+1), StyleRowTotal)
	}

	// Per-day column totals plus the grand total.
	totalRow := hoursRow + dataRows
	p.label(totalRow, identityCol, "Totaal facturabel", StyleTotalDescription)
	for day := 1; day <= dayColumns; day++ {
		col := firstDayCol + day - 1
		name := colName(col)
		p.formula(totalRow, col, fmt.Sprintf("=SUM(%s%d:%s%d)", name, hoursRow+1, name, totalRow), StyleDayTotal)
	}
	totalName := colName(totalCol)
	p.formula(totalRow, totalCol, fmt.Sprintf("=SUM(%s%d:%s%d)", totalName, hoursRow+1, totalName, totalRow), StyleRowTotal)

	expenseTotalRow := buildExpenses(&p, totalRow+3)
	buildSignatures(&p, expenseTotalRow+3, project, emp, fillDate, opts)

	return p
}

// buildExpenses lays out the employee expense block and returns the row of
// its totals line.
func buildExpenses(p *Plan, startRow int) int {
	p.label(startRow, identityCol, "Onkostendeclaratie medewerker (bonnen bijvoegen)", StyleFooterHeader)

	headerRow := startRow + 1
	p.merged(headerRow, 1, 2, "Datum", StyleExpenseHeader)
	p.merged(headerRow, 3, 20, "Omschrijving", StyleExpenseHeader)
	p.merged(headerRow, 23, 4, "Bedrag excl. BTW", StyleExpenseHeaderRight)
	p.merged(headerRow, 27, 3, "BTW", StyleExpenseHeaderRight)
	p.merged(headerRow, 30, 4, "Bedrag incl.", StyleExpenseHeaderRight)

	// Four editable lines. Only the inclusive amount is entered by hand;
	// the exclusive amount and the tax are back-calculated from it at the
	// fixed 21% inclusive rate.
	inclName := colName(30)
	for i := 0; i < expenseLines; i++ {
		r := headerRow + 1 + i
		p.merged(r, 1, 2, "", StyleExpenseDate)
		p.merged(r, 3, 20, "", StyleExpenseDescription)
		p.merged(r, 23, 4, "", StyleExpenseAmount)
		p.merged(r, 27, 3, "", StyleExpenseAmount)
		p.merged(r, 30, 4, "", StyleExpenseAmountUnlocked)

		p.formula(r, 23, fmt.Sprintf("=%s%d/121*100", inclName, r+1), StyleExpenseAmount)
		p.formula(r, 27, fmt.Sprintf("=%s%d/121*21", inclName, r+1), StyleExpenseAmount)
	}

	totalRow := headerRow + expenseLines + 1
	firstLine := headerRow + 2 // first expense line, 1-based
	lastLine := totalRow       // last expense line, 1-based
	p.label(totalRow, 3, "Totaal", StyleExpenseTotalLabel)
	p.merged(totalRow, 23, 4, "", StyleExpenseAmount)
	p.merged(totalRow, 27, 3, "", StyleExpenseAmount)
	p.merged(totalRow, 30, 4, "", StyleExpenseAmount)
	p.formula(totalRow, 23, fmt.Sprintf("=SUM(%s%d:%s%d)", colName(23), firstLine, colName(23), lastLine), StyleExpenseAmount)
	p.formula(totalRow, 27, fmt.Sprintf("=SUM(%s%d:%s%d)", colName(27), firstLine, colName(27), lastLine), StyleExpenseAmount)
	p.formula(totalRow, 30, fmt.Sprintf("=SUM(%s%d:%s%d)", colName(30), firstLine, colName(30), lastLine), StyleExpenseAmount)

	return totalRow
}

// buildSignatures lays out the two-column client/employee footer.
func buildSignatures(p *Plan, signRow int, project string, emp Employee, fillDate string, opts Options) {
	p.label(signRow, identityCol, "Opdrachtgever:", StyleFooterHeader)
	p.label(signRow+1, identityCol, project, StyleFooter)
	p.label(signRow+2, identityCol, "Datum:", StyleFooterHeader)
	p.label(signRow+3, identityCol, fillDate, StyleFooterDate)

	p.label(signRow, addressCol, "Medewerker:", StyleFooterHeader)
	p.label(signRow+1, addressCol, emp.Name, StyleFooter)
	p.label(signRow+2, addressCol, "Datum:", StyleFooterHeader)
	p.label(signRow+3, addressCol, fillDate, StyleFooterDate)

	p.label(signRow+4, identityCol, "Handtekening opdrachtgever:", StyleFooterHeader)
	p.label(signRow+4, addressCol, "Handtekening medewerker:", StyleFooterHeader)

	boxRow := signRow + 5
	p.rowHeight(boxRow, signatureHeight)
	p.merged(boxRow, 1, 9, "", StyleSignature)
	p.merged(boxRow, addressCol, 10, "", StyleSignature)

	if opts.SignaturePath != "" {
		p.image(boxRow, addressCol, opts.SignaturePath)
	}
}

// colName converts a 0-indexed column to its spreadsheet letter name.
func colName(col int) string {
	name := ""
	for n := col; n >= 0; n = n/26 - 1 {
		name = string(rune('A'+n%26)) + name
		if n < 26 {
			break
		}
	}
	return name
}
