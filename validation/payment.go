package validation

import (
	"strings"
	"time"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
)

// PaymentCreate validates a payment request. The referenced booking's
// existence is checked by the caller against storage before the write.
func PaymentCreate(req *dto.PaymentCreate) (*models.Payment, *apperrors.APIError) {
	if req.Amount == nil || *req.Amount == 0 {
		return nil, apperrors.BadRequest("MISSING_AMOUNT", "Amount is required")
	}
	if isEmpty(req.Method) {
		return nil, apperrors.BadRequest("MISSING_METHOD", "Payment method is required")
	}
	if req.BookingID == nil || *req.BookingID == 0 {
		return nil, apperrors.BadRequest("MISSING_BOOKING_ID", "Booking ID is required")
	}
	if *req.Amount <= 0 {
		return nil, apperrors.BadRequest("INVALID_AMOUNT", "Amount must be a positive number")
	}
	if !models.IsValidPaymentMethod(*req.Method) {
		return nil, apperrors.BadRequest("INVALID_METHOD",
			"Invalid payment method. Must be one of: "+strings.Join(models.ValidPaymentMethods, ", "))
	}

	payment := &models.Payment{
		Amount:      *req.Amount,
		Method:      *req.Method,
		BookingID:   *req.BookingID,
		PaymentDate: time.Now(),
	}
	if req.TransactionID.Valid && req.TransactionID.Value != "" {
		txn := req.TransactionID.Value
		payment.TransactionID = &txn
	}
	return payment, nil
}

func PaymentUpdate(req *dto.PaymentUpdate) (map[string]interface{}, *apperrors.APIError) {
	updates := map[string]interface{}{}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, apperrors.BadRequest("INVALID_AMOUNT", "Amount must be a positive number")
		}
		updates["amount"] = *req.Amount
	}
	if req.Method != nil {
		if !models.IsValidPaymentMethod(*req.Method) {
			return nil, apperrors.BadRequest("INVALID_METHOD",
				"Invalid payment method. Must be one of: "+strings.Join(models.ValidPaymentMethods, ", "))
		}
		updates["method"] = *req.Method
	}
	if req.BookingID != nil {
		if *req.BookingID == 0 {
			return nil, apperrors.BadRequest("INVALID_BOOKING_ID", "Valid booking ID is required")
		}
		updates["booking_id"] = *req.BookingID
	}
	if req.TransactionID.Present {
		if req.TransactionID.Valid && req.TransactionID.Value != "" {
			updates["transaction_id"] = req.TransactionID.Value
		} else {
			updates["transaction_id"] = nil
		}
	}
	return updates, nil
}
