package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-management/dto"
	"hotel-management/models"
)

type staffStoreStub struct {
	staff      map[uint]*models.Staff
	nextID     uint
	lastFilter dto.StaffFilter
}

func newStaffStoreStub() *staffStoreStub {
	return &staffStoreStub{staff: map[uint]*models.Staff{}, nextID: 1}
}

func (s *staffStoreStub) GetStaff(id uint) (*models.Staff, error) {
	staff, ok := s.staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *staff
	return &cp, nil
}

func (s *staffStoreStub) ListStaff(f dto.StaffFilter) ([]models.Staff, error) {
	s.lastFilter = f
	out := []models.Staff{}
	for _, staff := range s.staff {
		if f.Department != "" && staff.Department != f.Department {
			continue
		}
		out = append(out, *staff)
	}
	return out, nil
}

func (s *staffStoreStub) CreateStaff(staff *models.Staff) error {
	staff.ID = s.nextID
	s.nextID++
	cp := *staff
	s.staff[staff.ID] = &cp
	return nil
}

func (s *staffStoreStub) UpdateStaff(id uint, updates map[string]interface{}) (*models.Staff, error) {
	staff, ok := s.staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for col, v := range updates {
		switch col {
		case "department":
			staff.Department = v.(string)
		case "joining_date":
			staff.JoiningDate = v.(time.Time)
		case "salary":
			if v == nil {
				staff.Salary = nil
			} else {
				salary := v.(float64)
				staff.Salary = &salary
			}
		case "user_id":
			if v == nil {
				staff.UserID = nil
			} else {
				userID := v.(uint)
				staff.UserID = &userID
			}
		}
	}
	cp := *staff
	return &cp, nil
}

func (s *staffStoreStub) DeleteStaff(id uint) error {
	delete(s.staff, id)
	return nil
}

func staffRouter(store StaffStore) *gin.Engine {
	sc := NewStaffController(store)
	r := gin.New()
	r.GET("/api/staff", sc.GetStaff)
	r.POST("/api/staff", sc.CreateStaff)
	r.PUT("/api/staff", sc.UpdateStaff)
	r.DELETE("/api/staff", sc.DeleteStaff)
	return r
}

func TestCreateStaff(t *testing.T) {
	r := staffRouter(newStaffStoreStub())
	w := perform(r, http.MethodPost, "/api/staff", gin.H{
		"department": "RECEPTION", "joiningDate": "2024-02-01", "salary": 32000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "RECEPTION", body["department"])
	assert.Equal(t, 32000.0, body["salary"])
}

func TestCreateStaffInvalidDepartment(t *testing.T) {
	r := staffRouter(newStaffStoreStub())
	w := perform(r, http.MethodPost, "/api/staff", gin.H{
		"department": "SECURITY", "joiningDate": "2024-02-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DEPARTMENT", errCode(t, w))
}

func TestListStaffInvalidDepartmentFilter(t *testing.T) {
	r := staffRouter(newStaffStoreStub())
	w := perform(r, http.MethodGet, "/api/staff?department=SECURITY", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DEPARTMENT", errCode(t, w))
}

func TestListStaffInvalidUserIDFilter(t *testing.T) {
	r := staffRouter(newStaffStoreStub())
	w := perform(r, http.MethodGet, "/api/staff?userId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_USER_ID", errCode(t, w))
}

func TestUpdateStaffClearsSalary(t *testing.T) {
	store := newStaffStoreStub()
	salary := 32000.0
	store.CreateStaff(&models.Staff{Department: "RECEPTION", Salary: &salary})
	r := staffRouter(store)

	w := perform(r, http.MethodPut, "/api/staff?id=1", gin.H{"salary": nil})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["salary"])
}

func TestUpdateStaffNotFound(t *testing.T) {
	r := staffRouter(newStaffStoreStub())
	w := perform(r, http.MethodPut, "/api/staff?id=8", gin.H{"department": "RECEPTION"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "STAFF_NOT_FOUND", errCode(t, w))
}

func TestDeleteStaff(t *testing.T) {
	store := newStaffStoreStub()
	store.CreateStaff(&models.Staff{Department: "RECEPTION"})
	r := staffRouter(store)

	w := perform(r, http.MethodDelete, "/api/staff?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Staff member deleted successfully", decode(t, w)["message"])
}
