package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"urenstaat/internal/config"
	"urenstaat/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "urenstaat",
	Short: "Track your daily hours per project per week",
	Long: `urenstaat is a command-line timesheet tool. Define weekly hour
templates per project, log actual hours per ISO week, review monthly
rollups and export a formatted spreadsheet timesheet.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("urenstaat %s (commit %s, built %s)\n", version, commit, date)
	},
}

// withDB loads the configuration, opens the database and hands both to fn.
// The connection handle is passed explicitly, never stored globally.
func withDB(fn func(cfg *config.Config, g *gorm.DB, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		g, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close(g)
		return fn(cfg, g, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
