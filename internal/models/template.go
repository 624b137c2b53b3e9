package models

import (
	"time"
)

// Template holds the default weekly hour allocation for one project.
type Template struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Project string `gorm:"not null;unique" json:"project"`

	WeekHours `gorm:"embedded"`
}

func (t Template) String() string {
	return t.Project
}
