package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"urenstaat/internal/config"
	"urenstaat/internal/tui"
	"urenstaat/internal/week"
)

var logCmd = &cobra.Command{
	Use:   "log [week]",
	Short: "Log hours for one ISO week",
	Long: `Open the interactive log for one week of entries. The week is given
as YYYY-Www and defaults to the next ISO week, since hours are usually
planned ahead.

Examples:
  urenstaat log            # prompts, defaulting to next week
  urenstaat log 2024-W05   # open a specific week`,
	Args: cobra.MaximumNArgs(1),
	RunE: withDB(func(cfg *config.Config, g *gorm.DB, args []string) error {
		if len(args) > 0 {
			key, err := week.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid week: %w", err)
			}
			return tui.RunLogManager(g, key.String())
		}

		def := week.Next(time.Now()).String()
		value, err := tui.PromptValidated("Week (YYYY-Www):", def, func(s string) error {
			_, err := week.Parse(s)
			return err
		})
		if err != nil {
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			return err
		}

		key, _ := week.Parse(value)
		return tui.RunLogManager(g, key.String())
	}),
}
