package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-management/dto"
	"hotel-management/models"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) ListBookings(f dto.BookingFilter) ([]models.Booking, error) {
	q := s.db.Model(&models.Booking{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("booking_id LIKE ? OR guest_name LIKE ? OR guest_email LIKE ?", like, like, like)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.RoomID != nil {
		q = q.Where("room_id = ?", *f.RoomID)
	}
	if f.FromDate != nil {
		q = q.Where("check_in >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("check_in <= ?", *f.ToDate)
	}

	bookings := []models.Booking{}
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) CreateBooking(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

func (s *BookingService) UpdateBooking(id uint, updates map[string]interface{}) (*models.Booking, error) {
	if len(updates) == 0 {
		updates = map[string]interface{}{"updated_at": time.Now()}
	}
	if err := s.db.Model(&models.Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetBooking(id)
}

func (s *BookingService) DeleteBooking(id uint) error {
	return s.db.Delete(&models.Booking{}, id).Error
}
