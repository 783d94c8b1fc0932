package dto

import "time"

type PaymentCreate struct {
	Amount        *float64   `json:"amount"`
	Method        *string    `json:"method"`
	BookingID     *uint      `json:"bookingId"`
	TransactionID NullString `json:"transactionId"`
}

type PaymentUpdate struct {
	Amount        *float64   `json:"amount"`
	Method        *string    `json:"method"`
	BookingID     *uint      `json:"bookingId"`
	TransactionID NullString `json:"transactionId"`
}

type PaymentFilter struct {
	Method    string
	BookingID *uint
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
	Offset    int
}
