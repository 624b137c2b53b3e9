package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"urenstaat/internal/models"
)

// dayColumns maps a weekday to its table column for single-field updates.
var dayColumns = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// ListEntries retrieves the entries of one week ordered by project name.
func ListEntries(g *gorm.DB, week string) ([]models.Entry, error) {
	var entries []models.Entry
	if err := g.Where("week = ?", week).Order("project").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load entries for %s: %w", week, err)
	}
	return entries, nil
}

// ListAllEntries retrieves every stored entry, for monthly aggregation.
func ListAllEntries(g *gorm.DB) ([]models.Entry, error) {
	var entries []models.Entry
	if err := g.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// CreateEntry creates an entry for (week, project). Returns ErrDuplicate
// when that pair already exists.
func CreateEntry(g *gorm.DB, week, project string, hours models.DayHours) (*models.Entry, error) {
	if err := hours.Validate(); err != nil {
		return nil, err
	}

	entry := models.Entry{Week: week, Project: project}
	entry.SetDays(hours)

	if err := g.Create(&entry).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("entry for %q in %s %w", project, week, ErrDuplicate)
		}
		return nil, err
	}
	return &entry, nil
}

// UpdateEntryDay updates exactly one day column of one entry.
func UpdateEntryDay(g *gorm.DB, id uint, day models.Weekday, value float64) error {
	if err := models.ValidateHours(value); err != nil {
		return err
	}
	if day < models.Monday || day > models.Sunday {
		return fmt.Errorf("invalid weekday %d", day)
	}

	res := g.Model(&models.Entry{}).Where("id = ?", id).Update(dayColumns[day], value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("entry #%d %w", id, ErrNotFound)
	}
	return nil
}

// DeleteEntry removes an entry by id.
func DeleteEntry(g *gorm.DB, id uint) error {
	res := g.Delete(&models.Entry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("entry #%d %w", id, ErrNotFound)
	}
	return nil
}

// SeedWeek copies every template's hours into new entries for the target
// week. Projects that already have an entry for that week are skipped
// rather than aborting the whole seed.
func SeedWeek(g *gorm.DB, week string) (created, skipped int, err error) {
	templates, err := ListTemplates(g)
	if err != nil {
		return 0, 0, err
	}

	for _, tmpl := range templates {
		if _, err := CreateEntry(g, week, tmpl.Project, tmpl.Days()); err != nil {
			if errors.Is(err, ErrDuplicate) {
				skipped++
				continue
			}
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}

// ProjectNames returns the distinct project names appearing in the log,
// sorted, for the export selection.
func ProjectNames(g *gorm.DB) ([]string, error) {
	var names []string
	err := g.Model(&models.Entry{}).
		Distinct("project").
		Order("project").
		Pluck("project", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load project names: %w", err)
	}
	return names, nil
}

// ProjectHours collects every entry of one project keyed by week string,
// the lookup the timesheet export reads from.
func ProjectHours(g *gorm.DB, project string) (map[string]models.DayHours, error) {
	var entries []models.Entry
	if err := g.Where("project = ?", project).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load entries for %q: %w", project, err)
	}

	byWeek := make(map[string]models.DayHours, len(entries))
	for _, e := range entries {
		byWeek[e.Week] = e.Days()
	}
	return byWeek, nil
}
