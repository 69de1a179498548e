package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceBlock is one titled text section inside a service description page.
type ServiceBlock struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Service is an offered support service (consultations, support groups, ...)
type Service struct {
	gorm.Model
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string         `gorm:"not null" json:"title"`
	Intro       string         `gorm:"type:text;default:''" json:"intro"`
	Blocks      datatypes.JSON `json:"blocks"` // ordered []ServiceBlock
	IsPublished bool           `gorm:"default:false" json:"isPublished"`
	SortOrder   int            `gorm:"default:0" json:"sortOrder"`
}

func (Service) TableName() string {
	return "services"
}
