package models

import "time"

// HotelSetting is a general-purpose settings record. Multiple rows may exist;
// nothing enforces a singleton.
type HotelSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HotelName string    `gorm:"size:255" json:"hotelName"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Logo      *string   `gorm:"size:512" json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
