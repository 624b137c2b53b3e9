package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"gorm.io/gorm"
)

// RunTemplateManager starts the interactive template management loop.
func RunTemplateManager(g *gorm.DB) error {
	model, err := NewTemplateModel(g)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(TemplateModel); ok {
		return m.Err()
	}
	return nil
}

// RunLogManager starts the interactive log loop for one week.
func RunLogManager(g *gorm.DB, week string) error {
	model, err := NewLogModel(g, week)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(LogModel); ok {
		return m.Err()
	}
	return nil
}
