package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/utils"
	"hotel-management/validation"
)

type StaffStore interface {
	GetStaff(id uint) (*models.Staff, error)
	ListStaff(f dto.StaffFilter) ([]models.Staff, error)
	CreateStaff(staff *models.Staff) error
	UpdateStaff(id uint, updates map[string]interface{}) (*models.Staff, error)
	DeleteStaff(id uint) error
}

type StaffController struct {
	store StaffStore
}

func NewStaffController(store StaffStore) *StaffController {
	return &StaffController{store: store}
}

func staffNotFound() *apperrors.APIError {
	return apperrors.NotFound("STAFF_NOT_FOUND", "Staff member not found")
}

func (sc *StaffController) GetStaff(c *gin.Context) {
	if id, present, ok := utils.ParseID(c, "id"); present {
		if !ok {
			utils.Fail(c, apperrors.InvalidID())
			return
		}
		staff, err := sc.store.GetStaff(id)
		if err != nil {
			failLookup(c, "fetch staff", err, staffNotFound())
			return
		}
		c.JSON(http.StatusOK, staff)
		return
	}

	f := dto.StaffFilter{}
	f.Limit, f.Offset = utils.ParsePage(c)
	if department := c.Query("department"); department != "" {
		if !models.IsValidDepartment(department) {
			utils.Fail(c, apperrors.BadRequest("INVALID_DEPARTMENT", "Invalid department"))
			return
		}
		f.Department = department
	}
	if userID, present, ok := utils.ParseID(c, "userId"); present {
		if !ok {
			utils.Fail(c, apperrors.BadRequest("INVALID_USER_ID", "Valid userId is required"))
			return
		}
		f.UserID = &userID
	}

	staff, err := sc.store.ListStaff(f)
	if err != nil {
		utils.FailInternal(c, "list staff", err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req dto.StaffCreate
	if !bindJSON(c, &req) {
		return
	}
	staff, apiErr := validation.StaffCreate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}
	if err := sc.store.CreateStaff(staff); err != nil {
		utils.FailInternal(c, "create staff", err)
		return
	}
	c.JSON(http.StatusCreated, staff)
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	if _, err := sc.store.GetStaff(id); err != nil {
		failLookup(c, "fetch staff", err, staffNotFound())
		return
	}

	var req dto.StaffUpdate
	if !bindJSON(c, &req) {
		return
	}
	updates, apiErr := validation.StaffUpdate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	staff, err := sc.store.UpdateStaff(id, updates)
	if err != nil {
		utils.FailInternal(c, "update staff", err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	staff, err := sc.store.GetStaff(id)
	if err != nil {
		failLookup(c, "fetch staff", err, staffNotFound())
		return
	}
	if err := sc.store.DeleteStaff(id); err != nil {
		utils.FailInternal(c, "delete staff", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully", "staff": staff})
}
