package sheet

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Blad1"
	fontName  = "Verdana"
)

// WriteXLSX renders a plan into an xlsx workbook at path, overwriting any
// existing file. Missing image files are logged and skipped.
func WriteXLSX(plan Plan, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := applySettings(f, plan.Sheet); err != nil {
		return err
	}

	styles := newStyleSet(f)
	for _, op := range plan.Ops {
		if err := applyOp(f, styles, op); err != nil {
			return err
		}
	}

	if plan.Sheet.Protect {
		if err := f.ProtectSheet(sheetName, &excelize.SheetProtectionOptions{
			SelectLockedCells:   true,
			SelectUnlockedCells: true,
			FormatCells:         false,
		}); err != nil {
			return fmt.Errorf("failed to protect sheet: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func applySettings(f *excelize.File, s Settings) error {
	layout := excelize.PageLayoutOptions{}
	if s.Landscape {
		orientation := "landscape"
		layout.Orientation = &orientation
	}
	if s.PaperA4 {
		a4 := 9
		layout.Size = &a4
	}
	if s.FitToPage {
		one := 1
		layout.FitToWidth = &one
		layout.FitToHeight = &one
	}
	if err := f.SetPageLayout(sheetName, &layout); err != nil {
		return fmt.Errorf("failed to set page layout: %w", err)
	}

	if err := f.SetPageMargins(sheetName, &excelize.PageLayoutMarginsOptions{
		Left:   &s.MarginLeft,
		Right:  &s.MarginRight,
		Top:    &s.MarginTop,
		Bottom: &s.MarginBot,
	}); err != nil {
		return fmt.Errorf("failed to set page margins: %w", err)
	}

	if s.HideGrid {
		show := false
		if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{ShowGridLines: &show}); err != nil {
			return fmt.Errorf("failed to set sheet view: %w", err)
		}
	}
	return nil
}

func applyOp(f *excelize.File, styles *styleSet, op Op) error {
	switch op.Kind {
	case OpColWidth:
		name, err := excelize.ColumnNumberToName(op.Col + 1)
		if err != nil {
			return err
		}
		return f.SetColWidth(sheetName, name, name, op.Size)

	case OpRowHeight:
		return f.SetRowHeight(sheetName, op.Row+1, op.Size)

	case OpImage:
		if _, err := os.Stat(op.Image); err != nil {
			slog.Warn("report image not found, skipping", "path", op.Image)
			return nil
		}
		cell, err := excelize.CoordinatesToCellName(op.Col+1, op.Row+1)
		if err != nil {
			return err
		}
		return f.AddPicture(sheetName, cell, op.Image, &excelize.GraphicOptions{AutoFit: true})
	}

	cell, err := excelize.CoordinatesToCellName(op.Col+1, op.Row+1)
	if err != nil {
		return err
	}
	last := cell
	if op.Kind == OpMergedLabel && op.ColSpan > 1 {
		last, err = excelize.CoordinatesToCellName(op.Col+op.ColSpan, op.Row+1)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheetName, cell, last); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", cell, last, err)
		}
	}

	styleID, err := styles.id(op.Style)
	if err != nil {
		return err
	}
	if styleID != 0 {
		if err := f.SetCellStyle(sheetName, cell, last, styleID); err != nil {
			return fmt.Errorf("failed to style %s: %w", cell, err)
		}
	}

	switch op.Kind {
	case OpLabel, OpMergedLabel:
		if op.Text == "" {
			return nil
		}
		return f.SetCellStr(sheetName, cell, op.Text)
	case OpNumber:
		return f.SetCellFloat(sheetName, cell, op.Number, -1, 64)
	case OpFormula:
		return f.SetCellFormula(sheetName, cell, strings.TrimPrefix(op.Formula, "="))
	case OpBlank:
		return nil
	}
	return nil
}

// styleSet lazily registers excelize styles for the plan's style names.
type styleSet struct {
	f     *excelize.File
	cache map[StyleID]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{f: f, cache: make(map[StyleID]int)}
}

func (s *styleSet) id(id StyleID) (int, error) {
	if id == StyleNone {
		return 0, nil
	}
	if cached, ok := s.cache[id]; ok {
		return cached, nil
	}
	def := styleDef(id)
	created, err := s.f.NewStyle(def)
	if err != nil {
		return 0, fmt.Errorf("failed to create style %d: %w", id, err)
	}
	s.cache[id] = created
	return created, nil
}

const (
	borderThin   = 1
	borderMedium = 2
)

var (
	euroFormat = "€ #,##0.00"
	dateFormat = "dd-mm-yyyy"
)

func borders(style int) []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	out := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		out = append(out, excelize.Border{Type: side, Style: style, Color: "000000"})
	}
	return out
}

func font(size float64, bold bool) *excelize.Font {
	return &excelize.Font{Family: fontName, Size: size, Bold: bold}
}

func unlocked() *excelize.Protection {
	return &excelize.Protection{Locked: false}
}

// styleDef maps a plan style name to its concrete formatting. This is the
// only place fonts, borders and fills are spelled out.
func styleDef(id StyleID) *excelize.Style {
	switch id {
	case StyleTitle:
		return &excelize.Style{
			Font:      &excelize.Font{Family: fontName, Size: 14, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "left"},
		}
	case StyleHeader:
		return &excelize.Style{Font: font(10, false), Border: borders(borderThin)}
	case StyleHeaderUnlocked:
		return &excelize.Style{Font: font(10, false), Border: borders(borderThin), Protection: unlocked()}
	case StyleAddress:
		return &excelize.Style{Font: font(10, false)}
	case StyleCalHeader:
		return &excelize.Style{
			Font:      font(10, false),
			Border:    borders(borderThin),
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F28E00"}},
		}
	case StyleDescription:
		return &excelize.Style{Font: font(10, false), Border: borders(borderThin)}
	case StyleDescriptionUnlocked:
		return &excelize.Style{Font: font(10, false), Border: borders(borderThin), Protection: unlocked()}
	case StyleHours:
		return &excelize.Style{
			Font:      font(10, false),
			Border:    borders(borderThin),
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}
	case StyleHoursUnlocked:
		return &excelize.Style{
			Font:       font(10, false),
			Border:     borders(borderThin),
			Alignment:  &excelize.Alignment{Horizontal: "center"},
			Protection: unlocked(),
		}
	case StyleRowTotal, StyleDayTotal:
		return &excelize.Style{
			Font:      font(10, true),
			Border:    borders(borderMedium),
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}
	case StyleTotalDescription:
		return &excelize.Style{
			Font:      font(10, true),
			Border:    borders(borderMedium),
			Alignment: &excelize.Alignment{Horizontal: "left"},
		}
	case StyleExpenseHeader:
		return &excelize.Style{
			Font:      font(10, true),
			Border:    borders(borderMedium),
			Alignment: &excelize.Alignment{Horizontal: "left"},
		}
	case StyleExpenseHeaderRight:
		return &excelize.Style{
			Font:      font(10, true),
			Border:    borders(borderMedium),
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}
	case StyleExpenseDate:
		return &excelize.Style{
			Font:         font(10, false),
			Border:       borders(borderThin),
			CustomNumFmt: &dateFormat,
			Protection:   unlocked(),
		}
	case StyleExpenseDescription:
		return &excelize.Style{Font: font(10, false), Border: borders(borderThin), Protection: unlocked()}
	case StyleExpenseAmount:
		return &excelize.Style{
			Font:         font(10, false),
			Border:       borders(borderThin),
			CustomNumFmt: &euroFormat,
		}
	case StyleExpenseAmountUnlocked:
		return &excelize.Style{
			Font:         font(10, false),
			Border:       borders(borderThin),
			CustomNumFmt: &euroFormat,
			Protection:   unlocked(),
		}
	case StyleExpenseTotalLabel:
		return &excelize.Style{Font: font(10, false)}
	case StyleFooterHeader:
		return &excelize.Style{
			Font:      font(10, true),
			Alignment: &excelize.Alignment{Horizontal: "left"},
		}
	case StyleFooter:
		return &excelize.Style{
			Font:       font(10, false),
			Alignment:  &excelize.Alignment{Horizontal: "left"},
			Protection: unlocked(),
		}
	case StyleFooterDate:
		return &excelize.Style{
			Font:         font(10, false),
			CustomNumFmt: &dateFormat,
			Protection:   unlocked(),
		}
	case StyleSignature:
		return &excelize.Style{
			Font:      font(10, true),
			Border:    borders(borderMedium),
			Alignment: &excelize.Alignment{Vertical: "top"},
		}
	}
	return &excelize.Style{Font: font(10, false)}
}
