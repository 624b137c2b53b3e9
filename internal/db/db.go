package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"urenstaat/internal/models"
)

var (
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (project name, or week+project).
	ErrDuplicate = errors.New("already exists")
	// ErrNotFound is returned when an id matches no row.
	ErrNotFound = errors.New("not found")
)

// Open sets up the sqlite connection and runs migrations. The returned
// handle is passed explicitly to every store call.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	g, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := g.AutoMigrate(&models.Template{}, &models.Entry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return g, nil
}

// Close closes the underlying connection.
func Close(g *gorm.DB) error {
	sqlDB, err := g.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// isUniqueViolation matches the sqlite error text for unique constraints.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
