package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/utils"
	"hotel-management/validation"
)

type BookingStore interface {
	GetBooking(id uint) (*models.Booking, error)
	ListBookings(f dto.BookingFilter) ([]models.Booking, error)
	CreateBooking(booking *models.Booking) error
	UpdateBooking(id uint, updates map[string]interface{}) (*models.Booking, error)
	DeleteBooking(id uint) error
}

// RoomGetter is the slice of room storage the quote endpoint needs.
type RoomGetter interface {
	GetRoom(id uint) (*models.Room, error)
}

type BookingController struct {
	store BookingStore
	rooms RoomGetter
}

func NewBookingController(store BookingStore, rooms RoomGetter) *BookingController {
	return &BookingController{store: store, rooms: rooms}
}

func bookingNotFound() *apperrors.APIError {
	return apperrors.NotFound("NOT_FOUND", "Booking not found")
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	if id, present, ok := utils.ParseID(c, "id"); present {
		if !ok {
			utils.Fail(c, apperrors.InvalidID())
			return
		}
		booking, err := bc.store.GetBooking(id)
		if err != nil {
			failLookup(c, "fetch booking", err, bookingNotFound())
			return
		}
		c.JSON(http.StatusOK, booking)
		return
	}

	f := dto.BookingFilter{Search: c.Query("search")}
	f.Limit, f.Offset = utils.ParsePage(c)
	if status := c.Query("status"); status != "" {
		if !models.IsValidBookingStatus(status) {
			utils.Fail(c, apperrors.BadRequest("INVALID_STATUS", "Invalid status value"))
			return
		}
		f.Status = strings.ToUpper(strings.TrimSpace(status))
	}
	if userID, present, ok := utils.ParseID(c, "userId"); present {
		if !ok {
			utils.Fail(c, apperrors.BadRequest("INVALID_USER_ID", "Valid userId is required"))
			return
		}
		f.UserID = &userID
	}
	if roomID, present, ok := utils.ParseID(c, "roomId"); present {
		if !ok {
			utils.Fail(c, apperrors.BadRequest("INVALID_ROOM_ID", "Valid roomId is required"))
			return
		}
		f.RoomID = &roomID
	}
	if raw := c.Query("fromDate"); raw != "" {
		if t, ok := utils.ParseDate(raw); ok {
			f.FromDate = &t
		}
	}
	if raw := c.Query("toDate"); raw != "" {
		if t, ok := utils.ParseDate(raw); ok {
			f.ToDate = &t
		}
	}

	bookings, err := bc.store.ListBookings(f)
	if err != nil {
		utils.FailInternal(c, "list bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking inserts a booking with a freshly generated reference. There
// is no availability check here: two bookings for the same room and nights
// both succeed, and room status is the caller's follow-up write.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req dto.BookingCreate
	if !bindJSON(c, &req) {
		return
	}
	booking, apiErr := validation.BookingCreate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	booking.BookingID = utils.NewBookingID()
	if err := bc.store.CreateBooking(booking); err != nil {
		utils.FailInternal(c, "create booking", err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	if _, err := bc.store.GetBooking(id); err != nil {
		failLookup(c, "fetch booking", err, bookingNotFound())
		return
	}

	var req dto.BookingUpdate
	if !bindJSON(c, &req) {
		return
	}
	updates, apiErr := validation.BookingUpdate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	booking, err := bc.store.UpdateBooking(id, updates)
	if err != nil {
		utils.FailInternal(c, "update booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	booking, err := bc.store.GetBooking(id)
	if err != nil {
		failLookup(c, "fetch booking", err, bookingNotFound())
		return
	}
	if err := bc.store.DeleteBooking(id); err != nil {
		utils.FailInternal(c, "delete booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully", "booking": booking})
}

// QuoteBooking prices a prospective stay from the room's nightly rate. It is
// advisory: booking creation still takes totalAmount from the client.
func (bc *BookingController) QuoteBooking(c *gin.Context) {
	roomID, present, ok := utils.ParseID(c, "roomId")
	if !present || !ok {
		utils.Fail(c, apperrors.BadRequest("INVALID_ROOM_ID", "Valid roomId is required"))
		return
	}
	checkIn, okIn := utils.ParseDate(c.Query("checkIn"))
	checkOut, okOut := utils.ParseDate(c.Query("checkOut"))
	if !okIn || !okOut || !checkOut.After(checkIn) {
		utils.Fail(c, apperrors.BadRequest("INVALID_DATE_RANGE", "Check-out date must be after check-in date"))
		return
	}

	room, err := bc.rooms.GetRoom(roomID)
	if err != nil {
		failLookup(c, "fetch room", err, roomNotFound())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomId":        room.ID,
		"roomNumber":    room.RoomNumber,
		"pricePerNight": room.Price,
		"nights":        utils.Nights(checkIn, checkOut),
		"totalAmount":   utils.StayTotal(checkIn, checkOut, room.Price),
		"checkIn":       checkIn,
		"checkOut":      checkOut,
	})
}
