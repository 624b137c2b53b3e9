package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"urenstaat/internal/config"
	"urenstaat/internal/db"
	"urenstaat/internal/sheet"
	"urenstaat/internal/tui"
	"urenstaat/internal/week"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one month of one project as a spreadsheet timesheet",
	Long: `Build the formatted timesheet workbook for one project and month
and write it to the export directory. The project is picked from the logged
projects and the month defaults to the previous one.`,
	RunE: withDB(func(cfg *config.Config, g *gorm.DB, args []string) error {
		projects, err := db.ProjectNames(g)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}
		if len(projects) == 0 {
			fmt.Println("No projects logged yet. Nothing to export.")
			return nil
		}

		choice, err := tui.PromptSelect("Project:", projects)
		if err != nil {
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			return err
		}
		project := projects[choice]

		target, err := promptMonth(time.Now())
		if err != nil {
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			return err
		}

		byWeek, err := db.ProjectHours(g, project)
		if err != nil {
			return err
		}

		hours := func(date time.Time) (float64, bool) {
			days, ok := byWeek[week.FromDate(date).String()]
			if !ok {
				return 0, false
			}
			return days[(int(date.Weekday())+6)%7], true
		}

		emp := sheet.Employee{
			Name:  cfg.EmployeeName,
			Title: cfg.EmployeeTitle,
			Phone: cfg.EmployeePhone,
		}
		opts := sheet.Options{
			LogoPath:      cfg.LogoPath,
			SignaturePath: cfg.SignaturePath,
			Address1:      cfg.CompanyAddress1,
			Address2:      cfg.CompanyAddress2,
			FillDate:      time.Now(),
		}

		plan := sheet.Build(project, target, emp, hours, opts)

		name := fmt.Sprintf("Urenstaat_%d_%d_%s.xlsx", target.Year, int(target.Month), project)
		path := filepath.Join(cfg.ExportDir, name)
		if err := sheet.WriteXLSX(plan, path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("Exported %s\n", path)
		return nil
	}),
}
