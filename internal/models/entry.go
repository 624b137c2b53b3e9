package models

import (
	"time"
)

// Entry is the logged hours of one project for one ISO week.
// The week string is the canonical "YYYY-Www" form.
type Entry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Week    string `gorm:"not null;uniqueIndex:idx_week_project" json:"week"`
	Project string `gorm:"not null;uniqueIndex:idx_week_project" json:"project"`

	WeekHours `gorm:"embedded"`
}

// TableName keeps the historical table name of the sqlite schema.
func (Entry) TableName() string {
	return "timesheets"
}

func (e Entry) String() string {
	return e.Project
}
