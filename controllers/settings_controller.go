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

type SettingStore interface {
	GetSetting(id uint) (*models.HotelSetting, error)
	ListSettings() ([]models.HotelSetting, error)
	CreateSetting(setting *models.HotelSetting) error
	UpdateSetting(id uint, updates map[string]interface{}) (*models.HotelSetting, error)
	DeleteSetting(id uint) error
}

type SettingsController struct {
	store SettingStore
}

func NewSettingsController(store SettingStore) *SettingsController {
	return &SettingsController{store: store}
}

func settingNotFound() *apperrors.APIError {
	return apperrors.NotFound("SETTING_NOT_FOUND", "Setting not found")
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	if id, present, ok := utils.ParseID(c, "id"); present {
		if !ok {
			utils.Fail(c, apperrors.InvalidID())
			return
		}
		setting, err := sc.store.GetSetting(id)
		if err != nil {
			failLookup(c, "fetch setting", err, settingNotFound())
			return
		}
		c.JSON(http.StatusOK, setting)
		return
	}

	settings, err := sc.store.ListSettings()
	if err != nil {
		utils.FailInternal(c, "list settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (sc *SettingsController) CreateSetting(c *gin.Context) {
	var req dto.HotelSettingCreate
	if !bindJSON(c, &req) {
		return
	}
	setting, apiErr := validation.SettingCreate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}
	if err := sc.store.CreateSetting(setting); err != nil {
		utils.FailInternal(c, "create setting", err)
		return
	}
	c.JSON(http.StatusCreated, setting)
}

func (sc *SettingsController) UpdateSetting(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	if _, err := sc.store.GetSetting(id); err != nil {
		failLookup(c, "fetch setting", err, settingNotFound())
		return
	}

	var req dto.HotelSettingUpdate
	if !bindJSON(c, &req) {
		return
	}
	updates, apiErr := validation.SettingUpdate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	setting, err := sc.store.UpdateSetting(id, updates)
	if err != nil {
		utils.FailInternal(c, "update setting", err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (sc *SettingsController) DeleteSetting(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	setting, err := sc.store.GetSetting(id)
	if err != nil {
		failLookup(c, "fetch setting", err, settingNotFound())
		return
	}
	if err := sc.store.DeleteSetting(id); err != nil {
		utils.FailInternal(c, "delete setting", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Setting deleted successfully", "setting": setting})
}
