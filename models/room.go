package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoomTypeSingle = "SINGLE"
	RoomTypeDouble = "DOUBLE"
	RoomTypeSuite  = "SUITE"
	RoomTypeDeluxe = "DELUXE"

	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusBooked      = "BOOKED"
	RoomStatusMaintenance = "MAINTENANCE"
)

var (
	ValidRoomTypes    = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe}
	ValidRoomStatuses = []string{RoomStatusAvailable, RoomStatusBooked, RoomStatusMaintenance}
)

// Room status is mutated by staff action or by the booking caller convention,
// never derived automatically from bookings.
type Room struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RoomNumber  string         `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	Type        string         `gorm:"size:32" json:"type"`
	Price       float64        `json:"price"`
	Status      string         `gorm:"size:32" json:"status"`
	Description *string        `gorm:"type:text" json:"description"`
	Amenities   datatypes.JSON `json:"amenities"`
	Image       *string        `gorm:"size:512" json:"image"`
	Occupancy   int            `json:"occupancy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func IsValidRoomType(t string) bool {
	for _, v := range ValidRoomTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidRoomStatus(s string) bool {
	for _, v := range ValidRoomStatuses {
		if v == s {
			return true
		}
	}
	return false
}
