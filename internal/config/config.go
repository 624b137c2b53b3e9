// Package config loads the environment configuration, optionally seeded
// from a .env file in the working directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// Employee identity printed on exported timesheets
	EmployeeName  string
	EmployeeTitle string
	EmployeePhone string

	// Company header of the exported timesheet
	CompanyAddress1 string
	CompanyAddress2 string

	// Paths
	DBPath        string
	ExportDir     string
	LogoPath      string
	SignaturePath string
}

// Load reads the configuration from the environment. A missing .env file
// is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		EmployeeName:  getEnv("EMPLOYEE_NAME", "John Doe"),
		EmployeeTitle: getEnv("EMPLOYEE_TITLE", "Enterprise Architect"),
		EmployeePhone: getEnv("EMPLOYEE_PHONE", "000000000"),

		CompanyAddress1: getEnv("COMPANY_ADDRESS1", ""),
		CompanyAddress2: getEnv("COMPANY_ADDRESS2", ""),

		DBPath:        getEnv("URENSTAAT_DB", defaultDBPath()),
		ExportDir:     getEnv("EXPORT_DIR", "."),
		LogoPath:      getEnv("LOGO_PATH", "logo.jpg"),
		SignaturePath: getEnv("SIGNATURE_PATH", "signature.png"),
	}
}

func defaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "urenstaat.db"
	}
	return filepath.Join(homeDir, ".urenstaat", "urenstaat.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
