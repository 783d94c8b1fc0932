package validation

import (
	"strings"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/utils"
)

func invalidDateRange() *apperrors.APIError {
	return apperrors.BadRequest("INVALID_DATE_RANGE", "Check-out date must be after check-in date")
}

// BookingCreate validates a booking request and returns the row to insert,
// minus the generated reference (the caller assigns it right before the write).
// totalAmount is taken on trust from the caller; the server does not re-derive
// it from the room price.
func BookingCreate(req *dto.BookingCreate) (*models.Booking, *apperrors.APIError) {
	if isEmpty(req.GuestName) || isEmpty(req.GuestEmail) || isEmpty(req.GuestPhone) {
		return nil, apperrors.BadRequest("MISSING_GUEST_INFO", "Guest name, email, and phone are required")
	}
	if isEmpty(req.CheckIn) || isEmpty(req.CheckOut) {
		return nil, apperrors.BadRequest("MISSING_DATES", "Check-in and check-out dates are required")
	}
	if req.NumberOfGuests == nil || *req.NumberOfGuests == 0 ||
		req.TotalAmount == nil || *req.TotalAmount == 0 ||
		req.RoomID == nil || *req.RoomID == 0 {
		return nil, apperrors.BadRequest("MISSING_REQUIRED_FIELDS",
			"Number of guests, total amount, and room ID are required")
	}

	checkIn, okIn := utils.ParseDate(*req.CheckIn)
	checkOut, okOut := utils.ParseDate(*req.CheckOut)
	if !okIn || !okOut || !checkOut.After(checkIn) {
		return nil, invalidDateRange()
	}

	if *req.NumberOfGuests <= 0 {
		return nil, apperrors.BadRequest("INVALID_NUMBER_OF_GUESTS", "Number of guests must be positive")
	}
	if *req.TotalAmount <= 0 {
		return nil, apperrors.BadRequest("INVALID_TOTAL_AMOUNT", "Total amount must be positive")
	}

	status := models.BookingStatusPending
	if req.Status != nil && *req.Status != "" {
		if !models.IsValidBookingStatus(*req.Status) {
			return nil, apperrors.BadRequest("INVALID_STATUS", "Invalid status value")
		}
		status = strings.ToUpper(strings.TrimSpace(*req.Status))
	}

	booking := &models.Booking{
		GuestName:      strings.TrimSpace(*req.GuestName),
		GuestEmail:     normalizeEmail(*req.GuestEmail),
		GuestPhone:     strings.TrimSpace(*req.GuestPhone),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: *req.NumberOfGuests,
		TotalAmount:    *req.TotalAmount,
		RoomID:         *req.RoomID,
		Status:         status,
	}
	if req.UserID.Valid && req.UserID.Value != 0 {
		userID := req.UserID.Value
		booking.UserID = &userID
	}
	return booking, nil
}

// BookingUpdate validates a partial update. The date-range rule is only
// re-checked when both dates arrive together; updating one of the pair never
// compares against the stored counterpart.
func BookingUpdate(req *dto.BookingUpdate) (map[string]interface{}, *apperrors.APIError) {
	updates := map[string]interface{}{}

	switch {
	case req.CheckIn != nil && req.CheckOut != nil:
		checkIn, okIn := utils.ParseDate(*req.CheckIn)
		checkOut, okOut := utils.ParseDate(*req.CheckOut)
		if !okIn || !okOut || !checkOut.After(checkIn) {
			return nil, invalidDateRange()
		}
		updates["check_in"] = checkIn
		updates["check_out"] = checkOut
	case req.CheckIn != nil:
		checkIn, ok := utils.ParseDate(*req.CheckIn)
		if !ok {
			return nil, invalidDateRange()
		}
		updates["check_in"] = checkIn
	case req.CheckOut != nil:
		checkOut, ok := utils.ParseDate(*req.CheckOut)
		if !ok {
			return nil, invalidDateRange()
		}
		updates["check_out"] = checkOut
	}

	if req.NumberOfGuests != nil {
		if *req.NumberOfGuests <= 0 {
			return nil, apperrors.BadRequest("INVALID_NUMBER_OF_GUESTS", "Number of guests must be positive")
		}
		updates["number_of_guests"] = *req.NumberOfGuests
	}
	if req.TotalAmount != nil {
		if *req.TotalAmount <= 0 {
			return nil, apperrors.BadRequest("INVALID_TOTAL_AMOUNT", "Total amount must be positive")
		}
		updates["total_amount"] = *req.TotalAmount
	}
	if req.Status != nil && *req.Status != "" {
		if !models.IsValidBookingStatus(*req.Status) {
			return nil, apperrors.BadRequest("INVALID_STATUS", "Invalid status value")
		}
		updates["status"] = strings.ToUpper(strings.TrimSpace(*req.Status))
	}

	if req.GuestName != nil {
		updates["guest_name"] = strings.TrimSpace(*req.GuestName)
	}
	if req.GuestEmail != nil {
		updates["guest_email"] = normalizeEmail(*req.GuestEmail)
	}
	if req.GuestPhone != nil {
		updates["guest_phone"] = strings.TrimSpace(*req.GuestPhone)
	}
	if req.RoomID != nil {
		updates["room_id"] = *req.RoomID
	}
	if req.UserID.Present {
		if req.UserID.Valid && req.UserID.Value != 0 {
			updates["user_id"] = req.UserID.Value
		} else {
			updates["user_id"] = nil
		}
	}
	return updates, nil
}
