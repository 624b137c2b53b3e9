package commands

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"urenstaat/internal/config"
	"urenstaat/internal/tui"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage weekly hour templates per project",
	Long: `Open the interactive template manager. Templates hold the default
hour allocation per weekday for one project and can be copied into any
week from the log command.`,
	RunE: withDB(func(cfg *config.Config, g *gorm.DB, args []string) error {
		return tui.RunTemplateManager(g)
	}),
}
