package dto

import "time"

type BookingCreate struct {
	GuestName      *string  `json:"guestName"`
	GuestEmail     *string  `json:"guestEmail"`
	GuestPhone     *string  `json:"guestPhone"`
	CheckIn        *string  `json:"checkIn"`
	CheckOut       *string  `json:"checkOut"`
	NumberOfGuests *int     `json:"numberOfGuests"`
	TotalAmount    *float64 `json:"totalAmount"`
	RoomID         *uint    `json:"roomId"`
	UserID         NullUint `json:"userId"`
	Status         *string  `json:"status"`
}

type BookingUpdate struct {
	GuestName      *string  `json:"guestName"`
	GuestEmail     *string  `json:"guestEmail"`
	GuestPhone     *string  `json:"guestPhone"`
	CheckIn        *string  `json:"checkIn"`
	CheckOut       *string  `json:"checkOut"`
	NumberOfGuests *int     `json:"numberOfGuests"`
	TotalAmount    *float64 `json:"totalAmount"`
	RoomID         *uint    `json:"roomId"`
	UserID         NullUint `json:"userId"`
	Status         *string  `json:"status"`
}

type BookingFilter struct {
	Search   string
	Status   string
	UserID   *uint
	RoomID   *uint
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
	Offset   int
}
