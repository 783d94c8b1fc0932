package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hotel-management/dto"
	"hotel-management/models"
)

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

func (s *PaymentService) GetPayment(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) ListPayments(f dto.PaymentFilter) ([]models.Payment, error) {
	q := s.db.Model(&models.Payment{})
	if f.Method != "" {
		q = q.Where("method = ?", f.Method)
	}
	if f.BookingID != nil {
		q = q.Where("booking_id = ?", *f.BookingID)
	}
	if f.FromDate != nil {
		q = q.Where("payment_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("payment_date <= ?", *f.ToDate)
	}

	payments := []models.Payment{}
	err := q.Order("payment_date DESC").Limit(f.Limit).Offset(f.Offset).Find(&payments).Error
	return payments, err
}

// BookingExists backs the payment→booking reference pre-check.
func (s *PaymentService) BookingExists(bookingID uint) (bool, error) {
	var booking models.Booking
	err := s.db.Select("id").First(&booking, bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PaymentService) CreatePayment(payment *models.Payment) error {
	return s.db.Create(payment).Error
}

func (s *PaymentService) UpdatePayment(id uint, updates map[string]interface{}) (*models.Payment, error) {
	if len(updates) == 0 {
		updates = map[string]interface{}{"updated_at": time.Now()}
	}
	if err := s.db.Model(&models.Payment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetPayment(id)
}

func (s *PaymentService) DeletePayment(id uint) error {
	return s.db.Delete(&models.Payment{}, id).Error
}
