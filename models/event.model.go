package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is an announced group meeting or public talk.
type Event struct {
	gorm.Model
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Place       string    `gorm:"default:''" json:"place"`
	ImageURL    string    `gorm:"default:''" json:"imageUrl"`
	IsPublished bool      `gorm:"default:true" json:"isPublished"`
}

func (Event) TableName() string {
	return "events"
}
