package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"
)

const recentBookingCount = 10

type DashboardStore interface {
	AllRooms() ([]models.Room, error)
	AllBookings() ([]models.Booking, error)
	AllPayments() ([]models.Payment, error)
	CountCustomers() (int64, error)
	RecentBookings(n int) ([]models.Booking, error)
}

type DashboardController struct {
	store DashboardStore
}

func NewDashboardController(store DashboardStore) *DashboardController {
	return &DashboardController{store: store}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	rooms, err := dc.store.AllRooms()
	if err != nil {
		utils.FailInternal(c, "load rooms for stats", err)
		return
	}
	bookings, err := dc.store.AllBookings()
	if err != nil {
		utils.FailInternal(c, "load bookings for stats", err)
		return
	}
	payments, err := dc.store.AllPayments()
	if err != nil {
		utils.FailInternal(c, "load payments for stats", err)
		return
	}
	customers, err := dc.store.CountCustomers()
	if err != nil {
		utils.FailInternal(c, "count customers", err)
		return
	}
	recent, err := dc.store.RecentBookings(recentBookingCount)
	if err != nil {
		utils.FailInternal(c, "load recent bookings", err)
		return
	}

	c.JSON(http.StatusOK, services.ComputeStats(rooms, bookings, payments, customers, recent))
}
