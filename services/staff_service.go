package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-management/dto"
	"hotel-management/models"
)

type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

func (s *StaffService) GetStaff(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *StaffService) ListStaff(f dto.StaffFilter) ([]models.Staff, error) {
	q := s.db.Model(&models.Staff{})
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}

	staff := []models.Staff{}
	err := q.Limit(f.Limit).Offset(f.Offset).Find(&staff).Error
	return staff, err
}

func (s *StaffService) CreateStaff(staff *models.Staff) error {
	return s.db.Create(staff).Error
}

func (s *StaffService) UpdateStaff(id uint, updates map[string]interface{}) (*models.Staff, error) {
	if len(updates) == 0 {
		updates = map[string]interface{}{"updated_at": time.Now()}
	}
	if err := s.db.Model(&models.Staff{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetStaff(id)
}

func (s *StaffService) DeleteStaff(id uint) error {
	return s.db.Delete(&models.Staff{}, id).Error
}
