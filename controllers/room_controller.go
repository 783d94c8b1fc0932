package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/utils"
	"hotel-management/validation"
)

type RoomStore interface {
	GetRoom(id uint) (*models.Room, error)
	GetRoomByNumber(roomNumber string) (*models.Room, error)
	ListRooms(f dto.RoomFilter) ([]models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(id uint) error
}

type RoomController struct {
	store RoomStore
}

func NewRoomController(store RoomStore) *RoomController {
	return &RoomController{store: store}
}

func roomNotFound() *apperrors.APIError {
	return apperrors.NotFound("ROOM_NOT_FOUND", "Room not found")
}

// GetRooms serves both the single fetch (?id=) and the filtered list.
func (rc *RoomController) GetRooms(c *gin.Context) {
	if id, present, ok := utils.ParseID(c, "id"); present {
		if !ok {
			utils.Fail(c, apperrors.InvalidID())
			return
		}
		room, err := rc.store.GetRoom(id)
		if err != nil {
			failLookup(c, "fetch room", err, roomNotFound())
			return
		}
		c.JSON(http.StatusOK, room)
		return
	}

	f := dto.RoomFilter{Search: c.Query("search")}
	f.Limit, f.Offset = utils.ParsePage(c)
	// unknown type/status filter values just match nothing useful, so they
	// are dropped rather than rejected
	if t := strings.ToUpper(strings.TrimSpace(c.Query("type"))); models.IsValidRoomType(t) {
		f.Type = t
	}
	if s := strings.ToUpper(strings.TrimSpace(c.Query("status"))); models.IsValidRoomStatus(s) {
		f.Status = s
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MaxPrice = &v
		}
	}

	rooms, err := rc.store.ListRooms(f)
	if err != nil {
		utils.FailInternal(c, "list rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomCreate
	if !bindJSON(c, &req) {
		return
	}
	room, apiErr := validation.RoomCreate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	existing, err := rc.store.GetRoomByNumber(room.RoomNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.FailInternal(c, "check room number", err)
		return
	}
	if existing != nil {
		utils.Fail(c, apperrors.BadRequest("DUPLICATE_ROOM_NUMBER", "Room number already exists"))
		return
	}

	if err := rc.store.CreateRoom(room); err != nil {
		utils.FailInternal(c, "create room", err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	if _, err := rc.store.GetRoom(id); err != nil {
		failLookup(c, "fetch room", err, roomNotFound())
		return
	}

	var req dto.RoomUpdate
	if !bindJSON(c, &req) {
		return
	}
	updates, apiErr := validation.RoomUpdate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	if num, changed := updates["room_number"].(string); changed {
		existing, err := rc.store.GetRoomByNumber(num)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.FailInternal(c, "check room number", err)
			return
		}
		if existing != nil && existing.ID != id {
			utils.Fail(c, apperrors.BadRequest("DUPLICATE_ROOM_NUMBER", "Room number already exists"))
			return
		}
	}

	room, err := rc.store.UpdateRoom(id, updates)
	if err != nil {
		utils.FailInternal(c, "update room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	room, err := rc.store.GetRoom(id)
	if err != nil {
		failLookup(c, "fetch room", err, roomNotFound())
		return
	}
	if err := rc.store.DeleteRoom(id); err != nil {
		utils.FailInternal(c, "delete room", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully", "room": room})
}
