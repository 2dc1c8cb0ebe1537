package models

import (
	"time"
)

// Booking represents a single customer inquiry submitted through the booking form.
type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone       string    `gorm:"type:varchar(30);not null" json:"phone"`
	LineID      string    `gorm:"type:varchar(100)" json:"line_id"`
	ContactTime string    `gorm:"type:varchar(100);not null" json:"contact_time"`
	Goal        string    `gorm:"type:text;not null" json:"goal"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
