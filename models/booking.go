package models

import "time"

// Booking statuses. A modeled value set, not an enforced state machine:
// updates may move a booking from any status to any other, including back
// out of CANCELLED.
const (
	BookingStatusPending    = "PENDING"
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
)

var ValidBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
	BookingStatusCheckedOut,
	BookingStatusCancelled,
}

type Booking struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BookingID      string    `gorm:"column:booking_id;uniqueIndex;size:64" json:"bookingId"`
	UserID         *uint     `gorm:"column:user_id;index" json:"userId"`
	RoomID         uint      `gorm:"column:room_id;index" json:"roomId"`
	GuestName      string    `gorm:"size:255" json:"guestName"`
	GuestEmail     string    `gorm:"size:255" json:"guestEmail"`
	GuestPhone     string    `gorm:"size:50" json:"guestPhone"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	NumberOfGuests int       `json:"numberOfGuests"`
	TotalAmount    float64   `json:"totalAmount"`
	Status         string    `gorm:"size:32" json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func IsValidBookingStatus(s string) bool {
	for _, v := range ValidBookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}
