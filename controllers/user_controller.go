package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/utils"
	"hotel-management/validation"
)

type UserStore interface {
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers(f dto.UserFilter) ([]models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
}

type UserController struct {
	store UserStore
}

func NewUserController(store UserStore) *UserController {
	return &UserController{store: store}
}

func userNotFound() *apperrors.APIError {
	return apperrors.NotFound("USER_NOT_FOUND", "User not found")
}

func (uc *UserController) GetUsers(c *gin.Context) {
	if id, present, ok := utils.ParseID(c, "id"); present {
		if !ok {
			utils.Fail(c, apperrors.InvalidID())
			return
		}
		user, err := uc.store.GetUser(id)
		if err != nil {
			failLookup(c, "fetch user", err, userNotFound())
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	f := dto.UserFilter{Search: c.Query("search")}
	f.Limit, f.Offset = utils.ParsePage(c)
	if role := c.Query("role"); models.IsValidRole(role) {
		f.Role = role
	}

	users, err := uc.store.ListUsers(f)
	if err != nil {
		utils.FailInternal(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req dto.UserCreate
	if !bindJSON(c, &req) {
		return
	}
	user, password, apiErr := validation.UserCreate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	existing, err := uc.store.GetUserByEmail(user.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.FailInternal(c, "check email", err)
		return
	}
	if existing != nil {
		utils.Fail(c, apperrors.BadRequest("EMAIL_ALREADY_EXISTS", "Email already exists"))
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		utils.FailInternal(c, "hash password", err)
		return
	}
	user.Password = hash

	if err := uc.store.CreateUser(user); err != nil {
		utils.FailInternal(c, "create user", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	if _, err := uc.store.GetUser(id); err != nil {
		failLookup(c, "fetch user", err, userNotFound())
		return
	}

	var req dto.UserUpdate
	if !bindJSON(c, &req) {
		return
	}
	updates, password, apiErr := validation.UserUpdate(&req)
	if apiErr != nil {
		utils.Fail(c, apiErr)
		return
	}

	if email, changed := updates["email"].(string); changed {
		existing, err := uc.store.GetUserByEmail(email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.FailInternal(c, "check email", err)
			return
		}
		if existing != nil && existing.ID != id {
			utils.Fail(c, apperrors.BadRequest("EMAIL_ALREADY_EXISTS", "Email already exists"))
			return
		}
	}

	if password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			utils.FailInternal(c, "hash password", err)
			return
		}
		updates["password"] = hash
	}

	user, err := uc.store.UpdateUser(id, updates)
	if err != nil {
		utils.FailInternal(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, present, ok := utils.ParseID(c, "id")
	if !present || !ok {
		utils.Fail(c, apperrors.InvalidID())
		return
	}
	user, err := uc.store.GetUser(id)
	if err != nil {
		failLookup(c, "fetch user", err, userNotFound())
		return
	}
	if err := uc.store.DeleteUser(id); err != nil {
		utils.FailInternal(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully", "user": user})
}
