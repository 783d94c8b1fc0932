package services

import (
	"gorm.io/gorm"

	"hotel-management/models"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) AllRooms() ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.db.Find(&rooms).Error
	return rooms, err
}

func (s *DashboardService) AllBookings() ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.db.Find(&bookings).Error
	return bookings, err
}

func (s *DashboardService) AllPayments() ([]models.Payment, error) {
	payments := []models.Payment{}
	err := s.db.Find(&payments).Error
	return payments, err
}

func (s *DashboardService) CountCustomers() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&count).Error
	return count, err
}

func (s *DashboardService) RecentBookings(n int) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.db.Order("created_at DESC").Limit(n).Find(&bookings).Error
	return bookings, err
}

type RoomStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Booked      int `json:"booked"`
	Maintenance int `json:"maintenance"`
}

type BookingStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	CheckedIn int `json:"checkedIn"`
	Pending   int `json:"pending"`
}

type Stats struct {
	Rooms          RoomStats        `json:"rooms"`
	Bookings       BookingStats     `json:"bookings"`
	TotalGuests    int64            `json:"totalGuests"`
	TotalRevenue   float64          `json:"totalRevenue"`
	RecentBookings []models.Booking `json:"recentBookings"`
}

// ComputeStats aggregates the dashboard counters from full table snapshots.
func ComputeStats(rooms []models.Room, bookings []models.Booking, payments []models.Payment, totalGuests int64, recent []models.Booking) Stats {
	stats := Stats{TotalGuests: totalGuests, RecentBookings: recent}

	stats.Rooms.Total = len(rooms)
	for _, room := range rooms {
		switch room.Status {
		case models.RoomStatusAvailable:
			stats.Rooms.Available++
		case models.RoomStatusBooked:
			stats.Rooms.Booked++
		case models.RoomStatusMaintenance:
			stats.Rooms.Maintenance++
		}
	}

	stats.Bookings.Total = len(bookings)
	for _, booking := range bookings {
		switch booking.Status {
		case models.BookingStatusConfirmed:
			stats.Bookings.Confirmed++
		case models.BookingStatusCheckedIn:
			stats.Bookings.CheckedIn++
		case models.BookingStatusPending:
			stats.Bookings.Pending++
		}
	}

	for _, payment := range payments {
		stats.TotalRevenue += payment.Amount
	}

	if stats.RecentBookings == nil {
		stats.RecentBookings = []models.Booking{}
	}
	return stats
}
