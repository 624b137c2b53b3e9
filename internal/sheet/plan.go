// Package sheet builds the fixed-format monthly timesheet ("urenstaat") as
// a backend-agnostic placement plan and writes it out as an xlsx workbook.
package sheet

// OpKind discriminates the placement instructions of a Plan.
type OpKind int

const (
	OpLabel OpKind = iota
	OpMergedLabel
	OpNumber
	OpFormula
	OpBlank
	OpImage
	OpColWidth
	OpRowHeight
)

// StyleID names a cell style. The plan only carries names; the mapping to
// fonts, borders and fills lives in the writing backend.
type StyleID int

const (
	StyleNone StyleID = iota
	StyleTitle
	StyleHeader
	StyleHeaderUnlocked
	StyleAddress
	StyleCalHeader
	StyleDescription
	StyleDescriptionUnlocked
	StyleHours
	StyleHoursUnlocked
	StyleRowTotal
	StyleDayTotal
	StyleTotalDescription
	StyleExpenseHeader
	StyleExpenseHeaderRight
	StyleExpenseDate
	StyleExpenseDescription
	StyleExpenseAmount
	StyleExpenseAmountUnlocked
	StyleExpenseTotalLabel
	StyleFooterHeader
	StyleFooter
	StyleFooterDate
	StyleSignature
)

// Op is one placement instruction. Row and Col are 0-indexed; ColSpan is
// only meaningful for merged labels, Size only for widths and heights.
type Op struct {
	Kind    OpKind
	Row     int
	Col     int
	ColSpan int
	Style   StyleID
	Text    string
	Number  float64
	Formula string
	Image   string
	Size    float64
}

// Settings are the sheet-wide page options carried alongside the cells.
type Settings struct {
	Landscape   bool
	PaperA4     bool
	FitToPage   bool
	Protect     bool
	HideGrid    bool
	MarginLeft  float64
	MarginRight float64
	MarginTop   float64
	MarginBot   float64
}

// Plan is the full layout of one timesheet: pure data, consumable by any
// spreadsheet backend. Identical inputs always produce identical plans.
type Plan struct {
	Sheet Settings
	Ops   []Op
}

func (p *Plan) label(row, col int, text string, style StyleID) {
	p.Ops = append(p.Ops, Op{Kind: OpLabel, Row: row, Col: col, Text: text, Style: style})
}

func (p *Plan) merged(row, col, colSpan int, text string, style StyleID) {
	p.Ops = append(p.Ops, Op{Kind: OpMergedLabel, Row: row, Col: col, ColSpan: colSpan, Text: text, Style: style})
}

func (p *Plan) number(row, col int, v float64, style StyleID) {
	p.Ops = append(p.Ops, Op{Kind: OpNumber, Row: row, Col: col, Number: v, Style: style})
}

func (p *Plan) formula(row, col int, f string, style StyleID) {
	p.Ops = append(p.Ops, Op{Kind: OpFormula, Row: row, Col: col, Formula: f, Style: style})
}

func (p *Plan) blank(row, col int, style StyleID) {
	p.Ops = append(p.Ops, Op{Kind: OpBlank, Row: row, Col: col, Style: style})
}

func (p *Plan) image(row, col int, path string) {
	p.Ops = append(p.Ops, Op{Kind: OpImage, Row: row, Col: col, Image: path})
}

func (p *Plan) colWidth(col int, width float64) {
	p.Ops = append(p.Ops, Op{Kind: OpColWidth, Col: col, Size: width})
}

func (p *Plan) rowHeight(row int, height float64) {
	p.Ops = append(p.Ops, Op{Kind: OpRowHeight, Row: row, Size: height})
}
