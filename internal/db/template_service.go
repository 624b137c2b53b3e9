package db

import (
	"fmt"

	"gorm.io/gorm"

	"urenstaat/internal/models"
)

// ListTemplates retrieves all templates ordered by project name.
func ListTemplates(g *gorm.DB) ([]models.Template, error) {
	var templates []models.Template
	if err := g.Order("project").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return templates, nil
}

// CreateTemplate creates a template for a project. Returns ErrDuplicate
// when the project already has one.
func CreateTemplate(g *gorm.DB, project string, hours models.DayHours) (*models.Template, error) {
	if err := hours.Validate(); err != nil {
		return nil, err
	}

	tmpl := models.Template{Project: project}
	tmpl.SetDays(hours)

	if err := g.Create(&tmpl).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("template for %q %w", project, ErrDuplicate)
		}
		return nil, err
	}
	return &tmpl, nil
}

// UpdateTemplateHours overwrites the seven day columns of one template.
func UpdateTemplateHours(g *gorm.DB, id uint, hours models.DayHours) error {
	if err := hours.Validate(); err != nil {
		return err
	}

	var tmpl models.Template
	if err := g.First(&tmpl, id).Error; err != nil {
		return fmt.Errorf("template #%d %w", id, ErrNotFound)
	}

	tmpl.SetDays(hours)
	return g.Save(&tmpl).Error
}

// DeleteTemplate removes a template by id. Entries seeded from it are
// untouched; the two tables are independent.
func DeleteTemplate(g *gorm.DB, id uint) error {
	res := g.Delete(&models.Template{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("template #%d %w", id, ErrNotFound)
	}
	return nil
}
