package models

import "time"

const (
	PaymentMethodCash   = "CASH"
	PaymentMethodCard   = "CARD"
	PaymentMethodUPI    = "UPI"
	PaymentMethodOnline = "ONLINE"
)

var ValidPaymentMethods = []string{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodUPI,
	PaymentMethodOnline,
}

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     uint      `gorm:"column:booking_id;index" json:"bookingId"`
	Amount        float64   `json:"amount"`
	Method        string    `gorm:"size:32" json:"method"`
	TransactionID *string   `gorm:"column:transaction_id;size:128" json:"transactionId"`
	PaymentDate   time.Time `json:"paymentDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func IsValidPaymentMethod(m string) bool {
	for _, v := range ValidPaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}
