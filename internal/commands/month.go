package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"urenstaat/internal/config"
	"urenstaat/internal/db"
	"urenstaat/internal/report"
	"urenstaat/internal/tui"
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show the per-project day matrix of one month",
	Long: `Aggregate all logged weeks into a calendar-month overview, one row
per project and one column per day. Defaults to the previous month, since
that is the one being reported on.`,
	RunE: withDB(func(cfg *config.Config, g *gorm.DB, args []string) error {
		target, err := promptMonth(time.Now())
		if err != nil {
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			return err
		}

		entries, err := db.ListAllEntries(g)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		rows := make([]report.Row, len(entries))
		for i, e := range entries {
			rows[i] = report.Row{Week: e.Week, Project: e.Project, Hours: e.Days()}
		}

		matrix := report.Aggregate(rows, target)
		if matrix.Skipped > 0 {
			slog.Warn("skipped entries with malformed week strings", "count", matrix.Skipped)
		}
		if matrix.Empty() {
			fmt.Printf("No data found for %s.\n", target)
			return nil
		}

		fmt.Println(tui.RenderMatrix(matrix))
		return nil
	}),
}

// promptMonth asks for a year and month, defaulting to the month before now.
func promptMonth(now time.Time) (report.Month, error) {
	def := report.Previous(now)

	year, err := tui.PromptInt("Year:", def.Year)
	if err != nil {
		return report.Month{}, err
	}
	month, err := tui.PromptInt("Month (1-12):", int(def.Month))
	if err != nil {
		return report.Month{}, err
	}

	target, err := report.NewMonth(year, month)
	if err != nil {
		return report.Month{}, err
	}
	return target, nil
}
