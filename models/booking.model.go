package models

import "gorm.io/gorm"

// BookingRequest is a contact-form request for a consultation.
type BookingRequest struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Phone   string `gorm:"not null" json:"phone"`
	Email   string `gorm:"default:''" json:"email"`
	Message string `gorm:"type:text;default:''" json:"message"`
}

func (BookingRequest) TableName() string {
	return "booking_requests"
}
