package validation

import (
	"strings"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
)

func SettingCreate(req *dto.HotelSettingCreate) (*models.HotelSetting, *apperrors.APIError) {
	if isEmpty(req.HotelName) {
		return nil, apperrors.BadRequest("MISSING_HOTEL_NAME", "Hotel name is required")
	}
	if isEmpty(req.Address) {
		return nil, apperrors.BadRequest("MISSING_ADDRESS", "Address is required")
	}
	if isEmpty(req.Phone) {
		return nil, apperrors.BadRequest("MISSING_PHONE", "Phone is required")
	}
	if isEmpty(req.Email) {
		return nil, apperrors.BadRequest("MISSING_EMAIL", "Email is required")
	}
	email := normalizeEmail(*req.Email)
	if !isValidEmail(email) {
		return nil, apperrors.BadRequest("INVALID_EMAIL_FORMAT", "Invalid email format")
	}

	setting := &models.HotelSetting{
		HotelName: strings.TrimSpace(*req.HotelName),
		Address:   strings.TrimSpace(*req.Address),
		Phone:     strings.TrimSpace(*req.Phone),
		Email:     email,
	}
	if req.Logo.Valid {
		if logo := strings.TrimSpace(req.Logo.Value); logo != "" {
			setting.Logo = &logo
		}
	}
	return setting, nil
}

func SettingUpdate(req *dto.HotelSettingUpdate) (map[string]interface{}, *apperrors.APIError) {
	updates := map[string]interface{}{}

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email := normalizeEmail(*req.Email)
		if !isValidEmail(email) {
			return nil, apperrors.BadRequest("INVALID_EMAIL_FORMAT", "Invalid email format")
		}
		updates["email"] = email
	}
	if req.HotelName != nil {
		updates["hotel_name"] = strings.TrimSpace(*req.HotelName)
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Logo.Present {
		if logo := strings.TrimSpace(req.Logo.Value); req.Logo.Valid && logo != "" {
			updates["logo"] = logo
		} else {
			updates["logo"] = nil
		}
	}
	return updates, nil
}
