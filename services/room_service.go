package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-management/dto"
	"hotel-management/models"
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) GetRoomByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room
	if err := s.db.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) ListRooms(f dto.RoomFilter) ([]models.Room, error) {
	q := s.db.Model(&models.Room{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("room_number LIKE ? OR description LIKE ?", like, like)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	rooms := []models.Room{}
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) CreateRoom(room *models.Room) error {
	return s.db.Create(room).Error
}

func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	if len(updates) == 0 {
		// an empty body still touches updated_at
		updates = map[string]interface{}{"updated_at": time.Now()}
	}
	if err := s.db.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetRoom(id)
}

func (s *RoomService) DeleteRoom(id uint) error {
	return s.db.Delete(&models.Room{}, id).Error
}
