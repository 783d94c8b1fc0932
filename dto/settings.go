package dto

type HotelSettingCreate struct {
	HotelName *string    `json:"hotelName"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email"`
	Logo      NullString `json:"logo"`
}

type HotelSettingUpdate struct {
	HotelName *string    `json:"hotelName"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email"`
	Logo      NullString `json:"logo"`
}
