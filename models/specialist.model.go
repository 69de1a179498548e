package models

import "gorm.io/gorm"

// Specialist is a published team member card (psychologist, coordinator, ...)
type Specialist struct {
	gorm.Model
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"not null" json:"name"`
	Role        string `gorm:"default:''" json:"role"`
	Badge       string `gorm:"default:''" json:"badge"`
	BadgeTone   string `gorm:"default:''" json:"badgeTone"`
	Excerpt     string `gorm:"type:text;default:''" json:"excerpt"`
	Bio         string `gorm:"type:text;default:''" json:"bio"`
	PhotoURL    string `gorm:"default:''" json:"photoUrl"`
	IsPublished bool   `gorm:"default:false" json:"isPublished"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

func (Specialist) TableName() string {
	return "specialists"
}
