package validation

import (
	"strings"

	"gorm.io/datatypes"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
)

// RoomCreate sanitizes and validates a room creation request. The duplicate
// room-number pre-check stays with the caller, which owns storage access.
func RoomCreate(req *dto.RoomCreate) (*models.Room, *apperrors.APIError) {
	if isEmpty(req.RoomNumber) {
		return nil, apperrors.BadRequest("MISSING_ROOM_NUMBER", "Room number is required")
	}
	if isEmpty(req.Type) {
		return nil, apperrors.BadRequest("MISSING_ROOM_TYPE", "Room type is required")
	}
	if req.Price == nil {
		return nil, apperrors.BadRequest("MISSING_PRICE", "Price is required")
	}
	if req.Occupancy == nil {
		return nil, apperrors.BadRequest("MISSING_OCCUPANCY", "Occupancy is required")
	}

	roomType := strings.ToUpper(strings.TrimSpace(*req.Type))
	if !models.IsValidRoomType(roomType) {
		return nil, apperrors.BadRequest("INVALID_ROOM_TYPE",
			"Invalid room type. Must be one of: "+strings.Join(models.ValidRoomTypes, ", "))
	}

	status := models.RoomStatusAvailable
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = strings.ToUpper(strings.TrimSpace(*req.Status))
		if !models.IsValidRoomStatus(status) {
			return nil, apperrors.BadRequest("INVALID_STATUS",
				"Invalid status. Must be one of: "+strings.Join(models.ValidRoomStatuses, ", "))
		}
	}

	if *req.Price <= 0 {
		return nil, apperrors.BadRequest("INVALID_PRICE", "Price must be a positive number")
	}
	if *req.Occupancy <= 0 {
		return nil, apperrors.BadRequest("INVALID_OCCUPANCY", "Occupancy must be a positive integer")
	}

	room := &models.Room{
		RoomNumber: strings.TrimSpace(*req.RoomNumber),
		Type:       roomType,
		Price:      *req.Price,
		Status:     status,
		Occupancy:  *req.Occupancy,
	}
	if req.Description.Valid {
		if d := strings.TrimSpace(req.Description.Value); d != "" {
			room.Description = &d
		}
	}
	if amenities := rawJSONValue(req.Amenities); amenities != nil {
		room.Amenities = amenities
	}
	if req.Image.Valid {
		if img := strings.TrimSpace(req.Image.Value); img != "" {
			room.Image = &img
		}
	}
	return room, nil
}

// RoomUpdate validates a partial update and returns the column map to apply.
// Absent fields stay untouched.
func RoomUpdate(req *dto.RoomUpdate) (map[string]interface{}, *apperrors.APIError) {
	updates := map[string]interface{}{}

	if req.RoomNumber.Present {
		num := strings.TrimSpace(req.RoomNumber.Value)
		if !req.RoomNumber.Valid || num == "" {
			return nil, apperrors.BadRequest("INVALID_ROOM_NUMBER", "Room number cannot be empty")
		}
		updates["room_number"] = num
	}
	if req.Type != nil {
		roomType := strings.ToUpper(strings.TrimSpace(*req.Type))
		if !models.IsValidRoomType(roomType) {
			return nil, apperrors.BadRequest("INVALID_ROOM_TYPE",
				"Invalid room type. Must be one of: "+strings.Join(models.ValidRoomTypes, ", "))
		}
		updates["type"] = roomType
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, apperrors.BadRequest("INVALID_PRICE", "Price must be a positive number")
		}
		updates["price"] = *req.Price
	}
	if req.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*req.Status))
		if !models.IsValidRoomStatus(status) {
			return nil, apperrors.BadRequest("INVALID_STATUS",
				"Invalid status. Must be one of: "+strings.Join(models.ValidRoomStatuses, ", "))
		}
		updates["status"] = status
	}
	if req.Occupancy != nil {
		if *req.Occupancy <= 0 {
			return nil, apperrors.BadRequest("INVALID_OCCUPANCY", "Occupancy must be a positive integer")
		}
		updates["occupancy"] = *req.Occupancy
	}
	if req.Description.Present {
		if d := strings.TrimSpace(req.Description.Value); req.Description.Valid && d != "" {
			updates["description"] = d
		} else {
			updates["description"] = nil
		}
	}
	if req.Amenities != nil {
		if amenities := rawJSONValue(req.Amenities); amenities != nil {
			updates["amenities"] = amenities
		} else {
			updates["amenities"] = nil
		}
	}
	if req.Image.Present {
		if img := strings.TrimSpace(req.Image.Value); req.Image.Valid && img != "" {
			updates["image"] = img
		} else {
			updates["image"] = nil
		}
	}
	return updates, nil
}

func rawJSONValue(raw []byte) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return datatypes.JSON(raw)
}
