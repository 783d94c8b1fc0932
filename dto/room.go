package dto

import "encoding/json"

type RoomCreate struct {
	RoomNumber  *string         `json:"roomNumber"`
	Type        *string         `json:"type"`
	Price       *float64        `json:"price"`
	Status      *string         `json:"status"`
	Description NullString      `json:"description"`
	Amenities   json.RawMessage `json:"amenities"`
	Image       NullString      `json:"image"`
	Occupancy   *int            `json:"occupancy"`
}

type RoomUpdate struct {
	RoomNumber  NullString      `json:"roomNumber"`
	Type        *string         `json:"type"`
	Price       *float64        `json:"price"`
	Status      *string         `json:"status"`
	Description NullString      `json:"description"`
	Amenities   json.RawMessage `json:"amenities"`
	Image       NullString      `json:"image"`
	Occupancy   *int            `json:"occupancy"`
}

type RoomFilter struct {
	Search   string
	Type     string
	Status   string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}
