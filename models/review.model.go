package models

import (
	"time"

	"gorm.io/gorm"
)

// Review moderation status values
const (
	ReviewStatusPending  = "PENDING"
	ReviewStatusApproved = "APPROVED"
	ReviewStatusRejected = "REJECTED"
)

// Review is a visitor-submitted testimonial that goes through moderation
// before it appears on the public site.
type Review struct {
	gorm.Model
	Text        string     `gorm:"type:text;not null" json:"text"`
	AuthorName  string     `gorm:"default:''" json:"authorName"`
	Rating      *int       `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"` // optional 1–5
	IsAnonymous bool       `gorm:"default:false" json:"isAnonymous"`
	Status      string     `gorm:"type:varchar(16);default:'PENDING';index" json:"status"`
	IPHash      string     `gorm:"type:varchar(64);index;default:''" json:"-"` // salted digest, never the raw address
	ApprovedAt  *time.Time `json:"approvedAt"`
}

func (Review) TableName() string {
	return "reviews"
}
