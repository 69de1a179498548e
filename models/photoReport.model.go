package models

import "gorm.io/gorm"

// PhotoReport is one gallery photo from a past event.
type PhotoReport struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	ImageURL    string `gorm:"not null" json:"imageUrl"`
	IsPublished bool   `gorm:"default:true" json:"isPublished"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

func (PhotoReport) TableName() string {
	return "photo_reports"
}
