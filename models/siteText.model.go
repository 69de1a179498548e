package models

import "gorm.io/gorm"

// SiteText is a stored override for one built-in text-content key.
// Absence of a row means the built-in default is used.
type SiteText struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

func (SiteText) TableName() string {
	return "site_texts"
}
