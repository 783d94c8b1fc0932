package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-management/models"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) GetSetting(id uint) (*models.HotelSetting, error) {
	var setting models.HotelSetting
	if err := s.db.First(&setting, id).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *SettingsService) ListSettings() ([]models.HotelSetting, error) {
	settings := []models.HotelSetting{}
	err := s.db.Order("created_at DESC").Find(&settings).Error
	return settings, err
}

func (s *SettingsService) CreateSetting(setting *models.HotelSetting) error {
	return s.db.Create(setting).Error
}

func (s *SettingsService) UpdateSetting(id uint, updates map[string]interface{}) (*models.HotelSetting, error) {
	if len(updates) == 0 {
		updates = map[string]interface{}{"updated_at": time.Now()}
	}
	if err := s.db.Model(&models.HotelSetting{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetSetting(id)
}

func (s *SettingsService) DeleteSetting(id uint) error {
	return s.db.Delete(&models.HotelSetting{}, id).Error
}
